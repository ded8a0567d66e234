package middleware

import (
	"net/http"

	"genobrowse/api/contexts"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a `genome` HTTP query parameter was provided.
Any identifier present in the UCSC catalog is fair game, so only
presence is checked here.
*/
func MandateGenomeIdAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.GenoContext)

		// check for genome query parameter
		genome := c.QueryParam("genome")
		if len(genome) == 0 {
			// if no id was provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'genome' query parameter for querying!")
		}

		gc.GenomeId = genome
		return next(c)
	}
}
