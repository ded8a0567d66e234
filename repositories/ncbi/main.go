package ncbi

import (
	"encoding/json"
	"fmt"
	neturl "net/url"

	"genobrowse/api/models"
	"genobrowse/api/models/records"
	"genobrowse/api/utils"

	"github.com/Jeffail/gabs"
	"github.com/mitchellh/mapstructure"
)

const (
	geneSearchDisplayFields = "chromosome,Symbol,description,map_location"
	geneSearchExtraFields   = "GeneID"
	geneSearchResultCap     = 10

	geneSummaryEndpoint = "%s/esummary.fcgi?db=gene&id=%s&retmode=json"

	defaultWindowSize = 10000
)

// BuildGeneSearchQuery assembles the clinical-tables query string for a
// free-text gene search, requesting the comma-joined display and extra
// field names the normalizer expects.
func BuildGeneSearchQuery(query string) string {
	params := neturl.Values{}
	params.Set("terms", query)
	params.Set("df", geneSearchDisplayFields)
	params.Set("ef", geneSearchExtraFields)
	return params.Encode()
}

// SearchGenes runs a free-text gene search. The genome id is accepted
// for symmetry with the other operations but is not forwarded upstream;
// the clinical-tables service is NCBI-wide, not genome-scoped.
func SearchGenes(cfg *models.Config, query string, genome string) ([]records.GeneSearchResult, error) {
	_ = genome

	url := fmt.Sprintf("%s?%s", cfg.Ncbi.SearchUrl, BuildGeneSearchQuery(query))

	body, err := utils.GetJsonBytes(url)
	if err != nil {
		return nil, err
	}

	return NormalizeGeneSearchResponse(body)
}

// NormalizeGeneSearchResponse defuses the positional 4-element payload
// [count, ids, fieldMap, rows]. Only the first min(10, count) rows are
// considered; each is validated independently and skipped on shape
// problems, so one malformed row never aborts the batch.
func NormalizeGeneSearchResponse(body []byte) ([]records.GeneSearchResult, error) {
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected gene search response shape: %v", err)
	}
	if len(envelope) < 4 {
		return nil, fmt.Errorf("unexpected gene search response shape: got %d elements, want 4", len(envelope))
	}

	var count int
	if err := json.Unmarshal(envelope[0], &count); err != nil {
		return nil, fmt.Errorf("unexpected gene search count: %v", err)
	}

	// the extra-field map carries per-row gene ids
	var geneIds []interface{}
	if fieldMap, parseErr := gabs.ParseJSON(envelope[2]); parseErr == nil {
		if ids, ok := fieldMap.Path("GeneID").Data().([]interface{}); ok {
			geneIds = ids
		}
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(envelope[3], &rows); err != nil {
		return nil, fmt.Errorf("unexpected gene search row list: %v", err)
	}

	limit := count
	if limit > geneSearchResultCap {
		limit = geneSearchResultCap
	}
	if limit > len(rows) {
		limit = len(rows)
	}

	results := make([]records.GeneSearchResult, 0, limit)
	for i := 0; i < limit; i++ {
		result, ok := normalizeGeneSearchRow(rows[i])
		if !ok {
			// per-row soft failure
			continue
		}

		if i < len(geneIds) && geneIds[i] != nil {
			result.GeneId = fmt.Sprint(geneIds[i])
		}

		results = append(results, result)
	}

	return results, nil
}

// normalizeGeneSearchRow validates one positional display row:
// [chromosome, _, symbol, description, ...] with at least 4 entries.
func normalizeGeneSearchRow(raw json.RawMessage) (records.GeneSearchResult, bool) {
	var row []interface{}
	if err := json.Unmarshal(raw, &row); err != nil {
		return records.GeneSearchResult{}, false
	}
	if len(row) < 4 {
		return records.GeneSearchResult{}, false
	}

	chrom, chromOk := row[0].(string)
	symbol, symbolOk := row[2].(string)
	name, nameOk := row[3].(string)
	if !chromOk || !symbolOk || !nameOk {
		return records.GeneSearchResult{}, false
	}

	return records.GeneSearchResult{
		Symbol:      symbol,
		Name:        name,
		Chrom:       utils.EnsureChrPrefix(chrom),
		Description: name,
	}, true
}

// GetGeneDetails fetches a gene's esummary record and derives its
// coordinate bounds plus a default viewing window. Every failure -
// transport, missing record, missing coordinates - is absorbed into a
// uniform nil triple: a gene without details is a normal browsing
// outcome, not an error.
func GetGeneDetails(cfg *models.Config, geneId string) (*records.GeneDetails, *records.GeneBounds, *records.ViewRange) {
	url := fmt.Sprintf(geneSummaryEndpoint, cfg.Ncbi.EUtilsUrl, neturl.QueryEscape(geneId))

	body, err := utils.GetJsonBytes(url)
	if err != nil {
		fmt.Printf("Gene details lookup absorbed for %s : %v\n", geneId, err)
		return nil, nil, nil
	}

	parsed, parseErr := gabs.ParseJSON(body)
	if parseErr != nil {
		fmt.Printf("Gene details lookup absorbed for %s : %v\n", geneId, parseErr)
		return nil, nil, nil
	}

	rawRecord, ok := parsed.Search("result", geneId).Data().(map[string]interface{})
	if !ok {
		fmt.Printf("Gene details lookup absorbed for %s : no summary record\n", geneId)
		return nil, nil, nil
	}

	first, ok := firstGenomicInfo(rawRecord)
	if !ok {
		fmt.Printf("Gene details lookup absorbed for %s : no genomic coordinates\n", geneId)
		return nil, nil, nil
	}

	var details records.GeneDetails
	if decodeErr := mapstructure.Decode(rawRecord, &details); decodeErr != nil {
		fmt.Printf("Gene details lookup absorbed for %s : %v\n", geneId, decodeErr)
		return nil, nil, nil
	}

	bounds := DeriveGeneBounds(first.ChrStart, first.ChrStop)
	window := DeriveDefaultRange(bounds)

	return &details, &bounds, &window
}

// firstGenomicInfo pulls the authoritative first genomicinfo entry,
// requiring numeric chrstart/chrstop.
func firstGenomicInfo(raw map[string]interface{}) (records.GenomicInfo, bool) {
	list, ok := raw["genomicinfo"].([]interface{})
	if !ok || len(list) == 0 {
		return records.GenomicInfo{}, false
	}

	entry, ok := list[0].(map[string]interface{})
	if !ok {
		return records.GenomicInfo{}, false
	}

	start, startOk := entry["chrstart"].(float64)
	stop, stopOk := entry["chrstop"].(float64)
	if !startOk || !stopOk {
		return records.GenomicInfo{}, false
	}

	info := records.GenomicInfo{ChrStart: int(start), ChrStop: int(stop)}
	if strand, ok := entry["strand"].(string); ok {
		info.Strand = strand
	}

	return info, true
}

// DeriveGeneBounds normalizes a start/stop pair into min/max bounds;
// minus-strand genes report chrstart > chrstop.
func DeriveGeneBounds(chrStart int, chrStop int) records.GeneBounds {
	if chrStart > chrStop {
		return records.GeneBounds{Min: chrStop, Max: chrStart}
	}
	return records.GeneBounds{Min: chrStart, Max: chrStop}
}

// DeriveDefaultRange windows a gene to its first 10kb from the lower
// bound; genes spanning 10kb or less get their full span.
func DeriveDefaultRange(bounds records.GeneBounds) records.ViewRange {
	geneSize := bounds.Max - bounds.Min
	if geneSize > defaultWindowSize {
		return records.ViewRange{Start: bounds.Min, End: bounds.Min + defaultWindowSize}
	}
	return records.ViewRange{Start: bounds.Min, End: bounds.Max}
}
