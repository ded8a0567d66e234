package genomes

import (
	"fmt"
	"net/http"
	"time"

	"genobrowse/api/contexts"
	"genobrowse/api/models/dtos"
	"genobrowse/api/models/dtos/errors"
	"genobrowse/api/models/records"
	"genobrowse/api/repositories/ucsc"

	"github.com/labstack/echo"
	"golang.org/x/sync/errgroup"
)

func GetGenomes(c echo.Context) error {
	fmt.Printf("[%s] - GetGenomes hit!\n", time.Now())
	cfg := c.(*contexts.GenoContext).Config

	groups, catalogErr := ucsc.GetGenomeList(cfg)
	if catalogErr != nil {
		fmt.Printf("Failed to retrieve the genome catalog : %v\n", catalogErr)
		return c.JSON(http.StatusInternalServerError,
			errors.CreateSimpleInternalServerError("Failed to retrieve the genome catalog from UCSC!"))
	}

	return c.JSON(http.StatusOK, dtos.GenomesResponseDTO{
		Status:    200,
		Message:   "Success",
		Organisms: groups,
	})
}

func GetGenomesOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetGenomesOverview hit!\n", time.Now())
	cfg := c.(*contexts.GenoContext).Config

	groups, catalogErr := ucsc.GetGenomeList(cfg)
	if catalogErr != nil {
		fmt.Printf("Failed to retrieve the genome catalog : %v\n", catalogErr)
		return c.JSON(http.StatusInternalServerError,
			errors.CreateSimpleInternalServerError("Failed to retrieve the genome catalog from UCSC!"))
	}

	// aggregate assembly counts by organism
	organismsMap := map[string]interface{}{}
	for _, group := range groups {
		activeCount := 0
		for _, assembly := range group.Assemblies {
			if assembly.Active {
				activeCount++
			}
		}

		organismsMap[group.Organism] = map[string]interface{}{
			"numberOfAssemblies":       len(group.Assemblies),
			"numberOfActiveAssemblies": activeCount,
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"organisms": organismsMap,
	})
}

func GetChromosomes(c echo.Context) error {
	fmt.Printf("[%s] - GetChromosomes hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	chromosomes, chromosomesErr := ucsc.GetChromosomes(gc.Config, gc.GenomeId)
	if chromosomesErr != nil {
		fmt.Printf("Failed to retrieve chromosomes for %s : %v\n", gc.GenomeId, chromosomesErr)
		return c.JSON(http.StatusInternalServerError,
			errors.CreateSimpleInternalServerError(fmt.Sprintf("Failed to retrieve chromosomes for genome %s!", gc.GenomeId)))
	}

	return c.JSON(http.StatusOK, dtos.ChromosomesResponseDTO{
		Status:      200,
		Message:     "Success",
		Genome:      gc.GenomeId,
		Chromosomes: chromosomes,
	})
}

func GetGenomeSummary(c echo.Context) error {
	fmt.Printf("[%s] - GetGenomeSummary hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	// the catalog entry and the chromosome inventory come from
	// independent upstream endpoints; fetch them concurrently
	var (
		groups      []records.OrganismGroup
		chromosomes []records.Chromosome
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		groups, err = ucsc.GetGenomeList(gc.Config)
		return err
	})
	g.Go(func() error {
		var err error
		chromosomes, err = ucsc.GetChromosomes(gc.Config, gc.GenomeId)
		return err
	})

	if waitErr := g.Wait(); waitErr != nil {
		fmt.Printf("Failed to summarize genome %s : %v\n", gc.GenomeId, waitErr)
		return c.JSON(http.StatusInternalServerError,
			errors.CreateSimpleInternalServerError(fmt.Sprintf("Failed to summarize genome %s!", gc.GenomeId)))
	}

	// locate this genome's catalog entry
	var (
		assembly *records.GenomeAssembly
		organism string
	)
	for _, group := range groups {
		for i := range group.Assemblies {
			if group.Assemblies[i].Id == gc.GenomeId {
				assembly = &group.Assemblies[i]
				organism = group.Organism
			}
		}
	}

	if assembly == nil {
		return c.JSON(http.StatusNotFound,
			errors.CreateSimpleNotFound(fmt.Sprintf("Genome %s is not in the UCSC catalog!", gc.GenomeId)))
	}

	return c.JSON(http.StatusOK, dtos.GenomeSummaryResponseDTO{
		Status:      200,
		Message:     "Success",
		Organism:    organism,
		Genome:      *assembly,
		Chromosomes: chromosomes,
	})
}
