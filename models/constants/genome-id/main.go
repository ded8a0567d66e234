package genomeId

import (
	"genobrowse/api/models/constants"
	"strings"
)

const (
	Hg19 constants.GenomeId = "hg19"
	Hg38 constants.GenomeId = "hg38"
)

/*
ClinvarPositionField returns the ClinVar esummary position field
to search against for a given genome build. Only hg19 still uses
the GRCh37 coordinate field; everything else is assumed GRCh38.
*/
func ClinvarPositionField(genome string) string {
	if strings.EqualFold(genome, string(Hg19)) {
		return "chrpos37"
	}
	return "chrpos38"
}
