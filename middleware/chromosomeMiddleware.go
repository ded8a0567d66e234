package middleware

import (
	"net/http"
	"strings"

	"genobrowse/api/contexts"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a valid `chromosome` HTTP query parameter was
provided. Both bare ("17", "X") and prefixed ("chr17") names are
accepted; downstream operations apply their own prefix convention.
*/
func MandateChromosomeAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.GenoContext)

		// check for chromosome query parameter
		chromQP := c.QueryParam("chromosome")
		if len(chromQP) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'chromosome' query parameter for querying!")
		}

		if strings.ContainsAny(chromQP, " \t,") {
			// if invalid chromosome
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'chromosome' query parameter! Check your input")
		}

		gc.Chromosome = chromQP
		return next(c)
	}
}
