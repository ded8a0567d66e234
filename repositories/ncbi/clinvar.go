package ncbi

import (
	"fmt"
	neturl "net/url"
	"strconv"
	"strings"

	"genobrowse/api/models"
	genomeId "genobrowse/api/models/constants/genome-id"
	"genobrowse/api/models/records"
	"genobrowse/api/utils"

	"github.com/Jeffail/gabs"
	"github.com/mitchellh/mapstructure"
)

const (
	clinvarSearchEndpoint  = "%s/esearch.fcgi?db=clinvar&term=%s&retmode=json&retmax=%d"
	clinvarSummaryEndpoint = "%s/esummary.fcgi?db=clinvar&id=%s&retmode=json"

	clinvarResultCap = 20
)

// BuildClinvarSearchTerm builds the boolean esearch term for clinical
// variants on a chromosome within a position window. The ClinVar index
// keys chromosomes without the 'chr' prefix, and the position field
// depends on the genome build.
func BuildClinvarSearchTerm(chrom string, lowerBound int, upperBound int, genome string) string {
	chromName := utils.StripChrPrefix(chrom)

	minBound, maxBound := lowerBound, upperBound
	if minBound > maxBound {
		minBound, maxBound = maxBound, minBound
	}

	positionField := genomeId.ClinvarPositionField(genome)

	return fmt.Sprintf("%s[chromosome] AND %d:%d[%s]", chromName, minBound, maxBound, positionField)
}

// SearchClinvarVariants runs the two-stage ClinVar pipeline: an esearch
// for matching variant ids followed by an esummary for exactly those
// ids. Transport failures on either stage propagate; malformed
// individual summaries are skipped. An empty id list is a normal empty
// result, not an error.
func SearchClinvarVariants(cfg *models.Config, chrom string, lowerBound int, upperBound int, genome string) ([]records.ClinvarVariant, error) {
	term := BuildClinvarSearchTerm(chrom, lowerBound, upperBound, genome)

	searchUrl := fmt.Sprintf(clinvarSearchEndpoint, cfg.Ncbi.EUtilsUrl, neturl.QueryEscape(term), clinvarResultCap)
	searchBody, searchErr := utils.GetJsonBytes(searchUrl)
	if searchErr != nil {
		return nil, searchErr
	}

	searchParsed, parseErr := gabs.ParseJSON(searchBody)
	if parseErr != nil {
		return nil, fmt.Errorf("clinvar search response is unparsable: %v", parseErr)
	}

	idList, _ := searchParsed.Path("esearchresult.idlist").Data().([]interface{})
	if len(idList) == 0 {
		fmt.Printf("No clinvar variants found for %s\n", term)
		return []records.ClinvarVariant{}, nil
	}

	ids := make([]string, 0, len(idList))
	for _, id := range idList {
		ids = append(ids, fmt.Sprint(id))
	}

	summaryUrl := fmt.Sprintf(clinvarSummaryEndpoint, cfg.Ncbi.EUtilsUrl, strings.Join(ids, ","))
	summaryBody, summaryErr := utils.GetJsonBytes(summaryUrl)
	if summaryErr != nil {
		return nil, summaryErr
	}

	return NormalizeClinvarSummaries(summaryBody, utils.StripChrPrefix(chrom))
}

// clinvarSummaryRecord is the optional-field slice of the esummary
// record shape this layer cares about; everything else is ignored.
type clinvarSummaryRecord struct {
	Title                  string `mapstructure:"title"`
	ObjType                string `mapstructure:"obj_type"`
	GeneSort               string `mapstructure:"gene_sort"`
	LocationSort           string `mapstructure:"location_sort"`
	GermlineClassification struct {
		Description string `mapstructure:"description"`
	} `mapstructure:"germline_classification"`
}

// NormalizeClinvarSummaries converts an esummary result set into typed
// variants, iterating the uids array for a stable order. The result
// object carries that same 'uids' array as a sibling of the per-id
// records, so only entries that are plain keyed objects are accepted.
func NormalizeClinvarSummaries(body []byte, chrom string) ([]records.ClinvarVariant, error) {
	parsed, parseErr := gabs.ParseJSON(body)
	if parseErr != nil {
		return nil, fmt.Errorf("clinvar summary response is unparsable: %v", parseErr)
	}

	result := parsed.Path("result")
	if result == nil {
		return nil, fmt.Errorf("clinvar summary response is missing 'result'")
	}

	uids, _ := result.Path("uids").Data().([]interface{})

	variants := make([]records.ClinvarVariant, 0, len(uids))
	for _, rawUid := range uids {
		uid := fmt.Sprint(rawUid)

		raw, ok := result.Search(uid).Data().(map[string]interface{})
		if !ok {
			// per-record soft failure
			continue
		}

		variants = append(variants, normalizeClinvarSummary(uid, raw, chrom))
	}

	return variants, nil
}

func normalizeClinvarSummary(uid string, raw map[string]interface{}, chrom string) records.ClinvarVariant {
	var summary clinvarSummaryRecord
	// decode errors on individual optional fields are tolerated;
	// the defaults below cover whatever did not decode
	mapstructure.Decode(raw, &summary)

	classification := summary.GermlineClassification.Description
	if len(classification) == 0 {
		classification = "Unknown"
	}

	location := "Unknown"
	if position, convErr := strconv.Atoi(strings.TrimSpace(summary.LocationSort)); convErr == nil {
		location = utils.FormatThousands(position)
	}

	return records.ClinvarVariant{
		ClinvarId:      uid,
		Title:          summary.Title,
		VariationType:  utils.TitleCaseWords(summary.ObjType),
		Classification: classification,
		GeneSort:       summary.GeneSort,
		Chromosome:     chrom,
		Location:       location,
	}
}
