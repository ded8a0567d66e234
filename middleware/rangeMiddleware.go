package middleware

import (
	"net/http"
	"strconv"

	"genobrowse/api/contexts"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure valid `start` and `end` HTTP query parameters
were provided. The public contract is 1-based and inclusive on both
ends; translation to the upstream half-open convention happens inside
the sequence operation, not here.
*/
func MandateSequenceRange(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.GenoContext)

		startQP := c.QueryParam("start")
		endQP := c.QueryParam("end")
		if len(startQP) == 0 || len(endQP) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'start' and/or 'end' query parameters!")
		}

		start, startConversionErr := strconv.Atoi(startQP)
		end, endConversionErr := strconv.Atoi(endQP)
		if startConversionErr != nil || endConversionErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Error converting 'start'/'end' query parameters! Check your input")
		}

		if start < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Please provide a 'start' of at least 1!")
		}
		if end < start {
			return echo.NewHTTPError(http.StatusBadRequest, "'end' must not precede 'start'!")
		}

		gc.Start = start
		gc.End = end
		return next(c)
	}
}
