package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureChrPrefix(t *testing.T) {
	assert.Equal(t, "chr1", EnsureChrPrefix("1"))
	assert.Equal(t, "chrX", EnsureChrPrefix("X"))
	assert.Equal(t, "chr17", EnsureChrPrefix("chr17"))
}

func TestStripChrPrefix(t *testing.T) {
	assert.Equal(t, "17", StripChrPrefix("chr17"))
	assert.Equal(t, "17", StripChrPrefix("CHR17"))
	assert.Equal(t, "X", StripChrPrefix("ChrX"))
	assert.Equal(t, "17", StripChrPrefix("17"))
	assert.Equal(t, "", StripChrPrefix("chr"))
}

func TestTitleCaseWords(t *testing.T) {
	assert.Equal(t, "Single Nucleotide Variant", TitleCaseWords("single nucleotide variant"))
	assert.Equal(t, "Deletion", TitleCaseWords("DELETION"))
	assert.Equal(t, "Copy Number Gain", TitleCaseWords("copy number GAIN"))
	assert.Equal(t, "", TitleCaseWords(""))

	// idempotent on its own output
	assert.Equal(t, "Single Nucleotide Variant", TitleCaseWords(TitleCaseWords("single nucleotide variant")))
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", FormatThousands(0))
	assert.Equal(t, "999", FormatThousands(999))
	assert.Equal(t, "1,000", FormatThousands(1000))
	assert.Equal(t, "43,044,295", FormatThousands(43044295))
	assert.Equal(t, "-1,234", FormatThousands(-1234))
}

func TestStringInSlice(t *testing.T) {
	assert.True(t, StringInSlice("hg38", []string{"hg19", "hg38"}))
	assert.False(t, StringInSlice("mm39", []string{"hg19", "hg38"}))
}
