package contexts

import (
	"genobrowse/api/models"
	"genobrowse/api/services/analysis"
	"genobrowse/api/services/status"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the configuration, service singletons and the query
	//  state validated by middleware
	GenoContext struct {
		echo.Context
		Config          *models.Config
		AnalysisService *analysis.AnalysisService
		StatusService   *status.StatusService

		// set by middleware
		GenomeId   string
		Chromosome string
		LowerBound int
		UpperBound int
		Start      int
		End        int
	}
)
