package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"genobrowse/api/contexts"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func setUpEcho(path string) (*contexts.GenoContext, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	gc := &contexts.GenoContext{
		Context: c,
	}
	return gc, rec
}

func noopHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestMandateCalibratedBounds(t *testing.T) {
	t.Run("passes balanced bounds through", func(t *testing.T) {
		gc, _ := setUpEcho("/variants/search?lowerBound=100&upperBound=200")

		err := MandateCalibratedBounds(noopHandler)(gc)
		assert.NoError(t, err)

		assert.Equal(t, 100, gc.LowerBound)
		assert.Equal(t, 200, gc.UpperBound)
	})

	t.Run("swaps reversed bounds instead of rejecting", func(t *testing.T) {
		gc, _ := setUpEcho("/variants/search?lowerBound=200&upperBound=100")

		err := MandateCalibratedBounds(noopHandler)(gc)
		assert.NoError(t, err)

		assert.Equal(t, 100, gc.LowerBound)
		assert.Equal(t, 200, gc.UpperBound)
	})

	t.Run("rejects missing bounds", func(t *testing.T) {
		gc, _ := setUpEcho("/variants/search?lowerBound=100")

		err := MandateCalibratedBounds(noopHandler)(gc)
		assert.Error(t, err)
	})

	t.Run("rejects non-numeric bounds", func(t *testing.T) {
		gc, _ := setUpEcho("/variants/search?lowerBound=abc&upperBound=200")

		err := MandateCalibratedBounds(noopHandler)(gc)
		assert.Error(t, err)
	})
}

func TestMandateSequenceRange(t *testing.T) {
	t.Run("passes a valid 1-based range through", func(t *testing.T) {
		gc, _ := setUpEcho("/genes/sequence?start=1000&end=2000")

		err := MandateSequenceRange(noopHandler)(gc)
		assert.NoError(t, err)

		assert.Equal(t, 1000, gc.Start)
		assert.Equal(t, 2000, gc.End)
	})

	t.Run("rejects a zero start", func(t *testing.T) {
		gc, _ := setUpEcho("/genes/sequence?start=0&end=2000")

		err := MandateSequenceRange(noopHandler)(gc)
		assert.Error(t, err)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		gc, _ := setUpEcho("/genes/sequence?start=2000&end=1000")

		err := MandateSequenceRange(noopHandler)(gc)
		assert.Error(t, err)
	})
}

func TestMandateGenomeIdAttribute(t *testing.T) {
	t.Run("captures the genome id", func(t *testing.T) {
		gc, _ := setUpEcho("/genomes/chromosomes?genome=hg38")

		err := MandateGenomeIdAttribute(noopHandler)(gc)
		assert.NoError(t, err)
		assert.Equal(t, "hg38", gc.GenomeId)
	})

	t.Run("rejects a missing genome id", func(t *testing.T) {
		gc, _ := setUpEcho("/genomes/chromosomes")

		err := MandateGenomeIdAttribute(noopHandler)(gc)
		assert.Error(t, err)
	})
}

func TestMandateChromosomeAttribute(t *testing.T) {
	t.Run("accepts prefixed and bare names", func(t *testing.T) {
		gc, _ := setUpEcho("/genes/sequence?chromosome=chr17")

		err := MandateChromosomeAttribute(noopHandler)(gc)
		assert.NoError(t, err)
		assert.Equal(t, "chr17", gc.Chromosome)

		gc, _ = setUpEcho("/genes/sequence?chromosome=X")
		err = MandateChromosomeAttribute(noopHandler)(gc)
		assert.NoError(t, err)
		assert.Equal(t, "X", gc.Chromosome)
	})

	t.Run("rejects a missing chromosome", func(t *testing.T) {
		gc, _ := setUpEcho("/genes/sequence")

		err := MandateChromosomeAttribute(noopHandler)(gc)
		assert.Error(t, err)
	})
}
