package mvc

import (
	"genobrowse/api/contexts"
	"genobrowse/api/models"

	"github.com/labstack/echo"
)

// RetrieveCommonElements unpacks the middleware-validated query state
// shared by the coordinate-windowed routes.
func RetrieveCommonElements(c echo.Context) (*models.Config, string, string, int, int) {
	gc := c.(*contexts.GenoContext)

	return gc.Config, gc.GenomeId, gc.Chromosome, gc.LowerBound, gc.UpperBound
}
