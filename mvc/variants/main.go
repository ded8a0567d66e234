package variants

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"genobrowse/api/contexts"
	"genobrowse/api/models/dtos"
	"genobrowse/api/models/dtos/errors"
	"genobrowse/api/mvc"
	"genobrowse/api/repositories/ncbi"

	"github.com/google/uuid"
	"github.com/labstack/echo"
)

func VariantsSearch(c echo.Context) error {
	fmt.Printf("[%s] - VariantsSearch hit!\n", time.Now())
	cfg, genome, chrom, lowerBound, upperBound := mvc.RetrieveCommonElements(c)

	variants, searchErr := ncbi.SearchClinvarVariants(cfg, chrom, lowerBound, upperBound, genome)
	if searchErr != nil {
		fmt.Printf("Clinvar search failed for %s:%d-%d : %v\n", chrom, lowerBound, upperBound, searchErr)
		return c.JSON(http.StatusInternalServerError,
			errors.CreateSimpleInternalServerError("Clinical variant search failed... Please try again later!"))
	}

	return c.JSON(http.StatusOK, dtos.VariantsResponseDTO{
		QueryId: uuid.New(),
		Status:  200,
		Message: "Success",
		Count:   len(variants),
		Results: variants,
	})
}

func VariantsAnalyze(c echo.Context) error {
	fmt.Printf("[%s] - VariantsAnalyze hit!\n", time.Now())
	gc := c.(*contexts.GenoContext)

	decoder := json.NewDecoder(c.Request().Body)
	var request dtos.AnalyzeVariantRequestDto
	if decodeErr := decoder.Decode(&request); decodeErr != nil {
		return c.JSON(http.StatusBadRequest,
			errors.CreateSimpleBadRequest("Malformed analysis request body!"))
	}

	// TODO: improve verification
	if request.Position <= 0 {
		return c.JSON(http.StatusBadRequest,
			errors.CreateSimpleBadRequest("'position' must be a positive 1-based coordinate"))
	} else if request.Alternative == "" {
		return c.JSON(http.StatusBadRequest,
			errors.CreateSimpleBadRequest("'alternative' cannot be empty"))
	} else if request.Genome == "" {
		return c.JSON(http.StatusBadRequest,
			errors.CreateSimpleBadRequest("'genome' cannot be empty"))
	} else if request.Chromosome == "" {
		return c.JSON(http.StatusBadRequest,
			errors.CreateSimpleBadRequest("'chromosome' cannot be empty"))
	}

	result, analysisErr := gc.AnalysisService.AnalyzeVariant(
		request.Position, request.Alternative, request.Genome, request.Chromosome)
	if analysisErr != nil {
		fmt.Printf("Variant analysis failed : %v\n", analysisErr)
		return c.JSON(http.StatusInternalServerError,
			errors.CreateSimpleInternalServerError(fmt.Sprintf("Variant analysis failed : %v", analysisErr)))
	}

	// pass the scoring service's response through verbatim
	return c.JSON(http.StatusOK, result)
}
