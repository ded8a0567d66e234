package api

import (
	"fmt"
	"net/url"
	"testing"

	"genobrowse/api/models/constants/chromosome"
	"genobrowse/api/models/dtos"
	"genobrowse/api/models/records"
	common "genobrowse/api/tests/common"
	"genobrowse/api/utils"

	"github.com/stretchr/testify/assert"

	. "github.com/ahmetb/go-linq"
)

/*
	Build-time tests: these run against a running GenoBrowse instance
	(see tests/common/test.config.yml) and exercise the live UCSC and
	NCBI upstreams end to end.
*/

func TestGenomesCatalog(t *testing.T) {
	cfg := common.InitConfig()

	t.Run("Catalog Is Grouped And Contains Human", func(t *testing.T) {
		catalogUrl := fmt.Sprintf(common.GenomesPath, cfg.Api.Url)

		catalogDto, err := utils.GetRequestReturnStuff[dtos.GenomesResponseDTO](catalogUrl)
		assert.NoError(t, err)
		assert.Equal(t, 200, catalogDto.Status)
		assert.True(t, len(catalogDto.Organisms) > 0)

		humanGroup := From(catalogDto.Organisms).FirstWithT(func(group records.OrganismGroup) bool {
			return group.Organism == "Human"
		})
		assert.NotNil(t, humanGroup)

		// every group carries at least one assembly with an id
		From(catalogDto.Organisms).ForEachT(func(group records.OrganismGroup) {
			assert.True(t, len(group.Assemblies) > 0)
			From(group.Assemblies).ForEachT(func(assembly records.GenomeAssembly) {
				assert.NotEmpty(t, assembly.Id)
				assert.NotEmpty(t, assembly.Name)
			})
		})
	})
}

func TestChromosomesListing(t *testing.T) {
	cfg := common.InitConfig()

	t.Run("Hg38 Chromosomes Are Primary And Naturally Ordered", func(t *testing.T) {
		queryString := "?genome=hg38"
		chromosomesUrl := fmt.Sprintf(common.ChromosomesPathWithQueryString, cfg.Api.Url, queryString)

		chromosomesDto, err := utils.GetRequestReturnStuff[dtos.ChromosomesResponseDTO](chromosomesUrl)
		assert.NoError(t, err)
		assert.Equal(t, "hg38", chromosomesDto.Genome)

		// no scaffolds in the output
		From(chromosomesDto.Chromosomes).ForEachT(func(chrom records.Chromosome) {
			assert.False(t, chromosome.IsAlternateScaffold(chrom.Name))
			assert.True(t, chrom.Size > 0)
		})

		// consecutive entries respect the natural comparator
		for i := 1; i < len(chromosomesDto.Chromosomes); i++ {
			previous := chromosomesDto.Chromosomes[i-1].Name
			current := chromosomesDto.Chromosomes[i].Name
			assert.False(t, chromosome.CompareNames(current, previous),
				fmt.Sprintf("%s should not precede %s", current, previous))
		}
	})
}

func TestGeneLookupFlow(t *testing.T) {
	cfg := common.InitConfig()

	t.Run("Search Then Details Then Sequence", func(t *testing.T) {
		// - search
		queryString := fmt.Sprintf("?genome=hg38&query=%s", url.QueryEscape("BRCA1"))
		searchUrl := fmt.Sprintf(common.GenesSearchPathWithQueryString, cfg.Api.Url, queryString)

		searchDto, searchErr := utils.GetRequestReturnStuff[dtos.GenesResponseDTO](searchUrl)
		assert.NoError(t, searchErr)
		assert.True(t, searchDto.Count > 0)
		assert.True(t, searchDto.Count <= 10)

		brca1 := From(searchDto.Results).FirstWithT(func(result records.GeneSearchResult) bool {
			return result.Symbol == "BRCA1"
		})
		assert.NotNil(t, brca1)
		geneId := brca1.(records.GeneSearchResult).GeneId
		assert.NotEmpty(t, geneId)

		// - details
		detailsUrl := fmt.Sprintf(common.GeneDetailsPathWithQueryString, cfg.Api.Url,
			fmt.Sprintf("?geneId=%s", geneId))

		detailsDto, detailsErr := utils.GetRequestReturnStuff[dtos.GeneDetailsResponseDTO](detailsUrl)
		assert.NoError(t, detailsErr)
		assert.NotNil(t, detailsDto.GeneBounds)
		assert.NotNil(t, detailsDto.InitialRange)
		assert.True(t, detailsDto.GeneBounds.Min <= detailsDto.GeneBounds.Max)
		assert.True(t, detailsDto.InitialRange.End-detailsDto.InitialRange.Start <= 10000)

		// - sequence over a small window of the gene
		sequenceUrl := fmt.Sprintf(common.SequencePathWithQueryString, cfg.Api.Url,
			fmt.Sprintf("?genome=hg38&chromosome=%s&start=%d&end=%d",
				brca1.(records.GeneSearchResult).Chrom,
				detailsDto.InitialRange.Start,
				detailsDto.InitialRange.Start+99))

		sequenceDto, sequenceErr := utils.GetRequestReturnStuff[dtos.SequenceResponseDTO](sequenceUrl)
		assert.NoError(t, sequenceErr)
		assert.Empty(t, sequenceDto.Result.Error)
		assert.Equal(t, 100, len(sequenceDto.Result.Sequence))
	})
}

func TestVariantsSearch(t *testing.T) {
	cfg := common.InitConfig()

	t.Run("BRCA1 Region Returns Typed Variants", func(t *testing.T) {
		queryString := "?genome=hg38&chromosome=chr17&lowerBound=43044295&upperBound=43125364"
		variantsUrl := fmt.Sprintf(common.VariantsSearchPathWithQueryString, cfg.Api.Url, queryString)

		variantsDto, err := utils.GetRequestReturnStuff[dtos.VariantsResponseDTO](variantsUrl)
		assert.NoError(t, err)
		assert.Equal(t, 200, variantsDto.Status)
		assert.True(t, variantsDto.Count <= 20)

		From(variantsDto.Results).ForEachT(func(variant records.ClinvarVariant) {
			assert.NotEmpty(t, variant.ClinvarId)
			assert.NotEmpty(t, variant.VariationType)
			assert.NotEmpty(t, variant.Classification)
			assert.Equal(t, "17", variant.Chromosome)
		})
	})
}
