package genomeId

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClinvarPositionField(t *testing.T) {
	assert.Equal(t, "chrpos37", ClinvarPositionField("hg19"))
	assert.Equal(t, "chrpos37", ClinvarPositionField("HG19"))

	assert.Equal(t, "chrpos38", ClinvarPositionField("hg38"))
	assert.Equal(t, "chrpos38", ClinvarPositionField("mm39"))
	assert.Equal(t, "chrpos38", ClinvarPositionField(""))
}
