package middleware

import (
	"net/http"
	"strconv"

	"genobrowse/api/contexts"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure calibrated `lowerBound` and `upperBound` HTTP
query parameters were provided. Reversed bounds are swapped into
lowerBound <= upperBound rather than rejected, since the viewer is free
to send a selection in either direction.
*/
func MandateCalibratedBounds(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.GenoContext)

		lowerBoundQP := c.QueryParam("lowerBound")
		upperBoundQP := c.QueryParam("upperBound")
		if len(lowerBoundQP) == 0 || len(upperBoundQP) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'lowerBound' and/or 'upperBound' query parameters!")
		}

		lowerBound, lbConversionErr := strconv.Atoi(lowerBoundQP)
		upperBound, ubConversionErr := strconv.Atoi(upperBoundQP)
		if lbConversionErr != nil || ubConversionErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid lower and upper bounds!")
		}

		if upperBound < lowerBound {
			lowerBound, upperBound = upperBound, lowerBound
		}

		gc.LowerBound = lowerBound
		gc.UpperBound = upperBound
		return next(c)
	}
}
