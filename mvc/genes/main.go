package genes

import (
	"fmt"
	"net/http"
	"time"

	"genobrowse/api/contexts"
	"genobrowse/api/models/dtos"
	"genobrowse/api/models/dtos/errors"
	"genobrowse/api/repositories/ncbi"
	"genobrowse/api/repositories/ucsc"

	"github.com/labstack/echo"
)

func GenesSearch(c echo.Context) error {
	fmt.Printf("[%s] - GenesSearch hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	// Name search term
	term := c.QueryParam("query")
	if len(term) == 0 {
		return c.JSON(http.StatusBadRequest,
			errors.CreateSimpleBadRequest("Missing 'query' query parameter for searching!"))
	}

	fmt.Printf("Executing gene search for term %s (genome %s)\n", term, gc.GenomeId)

	results, searchErr := ncbi.SearchGenes(gc.Config, term, gc.GenomeId)
	if searchErr != nil {
		fmt.Printf("Gene search failed for %s : %v\n", term, searchErr)
		return c.JSON(http.StatusInternalServerError,
			errors.CreateSimpleInternalServerError("Gene search failed... Please try again later!"))
	}

	return c.JSON(http.StatusOK, dtos.GenesResponseDTO{
		Status:  200,
		Message: "Success",
		Term:    term,
		Count:   len(results),
		Results: results,
	})
}

func GetGeneDetails(c echo.Context) error {
	fmt.Printf("[%s] - GetGeneDetails hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	geneIdQP := c.QueryParam("geneId")
	if len(geneIdQP) == 0 {
		return c.JSON(http.StatusBadRequest,
			errors.CreateSimpleBadRequest("Missing 'geneId' query parameter for querying!"))
	}

	// failures are absorbed upstream; a nil triple renders as three
	// nulls, which the viewer treats as a plain "not found"
	details, bounds, initialRange := ncbi.GetGeneDetails(gc.Config, geneIdQP)

	message := "Success"
	if details == nil {
		message = fmt.Sprintf("No details found for gene %s", geneIdQP)
	}

	return c.JSON(http.StatusOK, dtos.GeneDetailsResponseDTO{
		Status:       200,
		Message:      message,
		GeneDetails:  details,
		GeneBounds:   bounds,
		InitialRange: initialRange,
	})
}

func GetSequence(c echo.Context) error {
	fmt.Printf("[%s] - GetSequence hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	result := ucsc.GetSequence(gc.Config, gc.Chromosome, gc.Start, gc.End, gc.GenomeId)

	message := "Success"
	if len(result.Error) > 0 {
		message = "Sequence unavailable"
	}

	return c.JSON(http.StatusOK, dtos.SequenceResponseDTO{
		Status:  200,
		Message: message,
		Result:  result,
	})
}
