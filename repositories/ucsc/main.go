package ucsc

import (
	"bytes"
	"encoding/json"
	"fmt"
	neturl "net/url"
	"sort"
	"strings"

	"genobrowse/api/models"
	"genobrowse/api/models/constants/chromosome"
	"genobrowse/api/models/records"
	"genobrowse/api/utils"
)

const (
	genomeListEndpoint  = "%s/list/ucscGenomes"
	chromosomesEndpoint = "%s/list/chromosomes?genome=%s"

	// the sequence endpoint takes a half-open [start, end) window
	sequenceEndpoint = "%s/getData/sequence?genome=%s&chrom=%s&start=%d&end=%d"
)

// GetGenomeList fetches the full UCSC genome catalog and groups it by
// organism, preserving the catalog's own ordering: organisms appear in
// first-seen order and assemblies keep their source order within each
// group. There is no partial-result tolerance here; any transport or
// shape problem is an error.
func GetGenomeList(cfg *models.Config) ([]records.OrganismGroup, error) {
	url := fmt.Sprintf(genomeListEndpoint, cfg.Ucsc.Url)

	body, err := utils.GetJsonBytes(url)
	if err != nil {
		return nil, err
	}

	// the catalog is a JSON object keyed by genome id; a plain map
	// decode would scramble the key order the grouping depends on,
	// so walk the object token-wise instead
	decoder := json.NewDecoder(bytes.NewReader(body))

	openTok, tokErr := decoder.Token()
	if tokErr != nil || openTok != json.Delim('{') {
		return nil, fmt.Errorf("ucsc genome list response is not a JSON object")
	}

	var (
		groups       []records.OrganismGroup
		groupIndex   = map[string]int{}
		foundCatalog = false
	)

	for decoder.More() {
		keyTok, keyErr := decoder.Token()
		if keyErr != nil {
			return nil, keyErr
		}
		key, _ := keyTok.(string)

		if key != "ucscGenomes" {
			var skipped json.RawMessage
			if err := decoder.Decode(&skipped); err != nil {
				return nil, err
			}
			continue
		}

		foundCatalog = true

		catalogTok, catalogErr := decoder.Token()
		if catalogErr != nil {
			return nil, catalogErr
		}
		if catalogTok != json.Delim('{') {
			return nil, fmt.Errorf("ucsc genome catalog is not a JSON object")
		}

		for decoder.More() {
			idTok, idErr := decoder.Token()
			if idErr != nil {
				return nil, idErr
			}
			genomeId, _ := idTok.(string)

			var info map[string]interface{}
			if err := decoder.Decode(&info); err != nil {
				return nil, err
			}

			organism := "Other"
			if o, ok := info["organism"].(string); ok && len(o) > 0 {
				organism = o
			}

			gi, seen := groupIndex[organism]
			if !seen {
				groups = append(groups, records.OrganismGroup{Organism: organism})
				gi = len(groups) - 1
				groupIndex[organism] = gi
			}
			groups[gi].Assemblies = append(groups[gi].Assemblies, NormalizeAssembly(genomeId, info))
		}

		// consume the catalog's closing brace
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
	}

	if !foundCatalog {
		return nil, fmt.Errorf("ucsc genome list response is missing 'ucscGenomes'")
	}

	return groups, nil
}

// NormalizeAssembly converts one raw catalog entry into a
// GenomeAssembly, falling back to the genome id for absent display
// fields.
func NormalizeAssembly(genomeId string, info map[string]interface{}) records.GenomeAssembly {
	assembly := records.GenomeAssembly{
		Id:         genomeId,
		Name:       genomeId,
		SourceName: genomeId,
	}

	if description, ok := info["description"].(string); ok && len(description) > 0 {
		assembly.Name = description
	}
	if sourceName, ok := info["sourceName"].(string); ok && len(sourceName) > 0 {
		assembly.SourceName = sourceName
	}
	if active, ok := info["active"].(float64); ok {
		assembly.Active = active == 1
	}

	return assembly
}

// GetChromosomes fetches the chromosome-size map for one genome and
// returns the primary chromosomes in natural display order.
func GetChromosomes(cfg *models.Config, genome string) ([]records.Chromosome, error) {
	url := fmt.Sprintf(chromosomesEndpoint, cfg.Ucsc.Url, neturl.QueryEscape(genome))

	body, err := utils.GetJsonBytes(url)
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	rawChromosomes, ok := payload["chromosomes"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("ucsc chromosome list for %s is missing 'chromosomes'", genome)
	}

	return NormalizeChromosomes(rawChromosomes), nil
}

// NormalizeChromosomes drops alternate scaffolds and entries without a
// numeric size, then orders what remains naturally
// (chr1 ... chr22, chrX, chrY, chrM).
func NormalizeChromosomes(raw map[string]interface{}) []records.Chromosome {
	chromosomes := make([]records.Chromosome, 0, len(raw))

	for name, size := range raw {
		if chromosome.IsAlternateScaffold(name) {
			continue
		}
		sizeNum, ok := size.(float64)
		if !ok {
			continue
		}
		chromosomes = append(chromosomes, records.Chromosome{Name: name, Size: int(sizeNum)})
	}

	sort.SliceStable(chromosomes, func(i, j int) bool {
		return chromosome.CompareNames(chromosomes[i].Name, chromosomes[j].Name)
	})

	return chromosomes
}

// GetSequence fetches the nucleotide sequence for a 1-based inclusive
// [start, end] window. The upstream service speaks half-open ranges, so
// the request goes out as [start-1, end). Failures of any kind are
// absorbed: the caller always gets back its requested range, with an
// empty sequence and an error message when something went wrong.
func GetSequence(cfg *models.Config, chrom string, start int, end int, genome string) records.SequenceResult {
	requested := records.ViewRange{Start: start, End: end}

	chromName := utils.EnsureChrPrefix(chrom)
	url := fmt.Sprintf(sequenceEndpoint, cfg.Ucsc.Url, genome, chromName, start-1, end)

	body, err := utils.GetJsonBytes(url)
	if err != nil {
		return records.SequenceResult{Sequence: "", ActualRange: requested, Error: err.Error()}
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return records.SequenceResult{Sequence: "", ActualRange: requested, Error: err.Error()}
	}

	if upstreamErr, ok := payload["error"].(string); ok && len(upstreamErr) > 0 {
		return records.SequenceResult{Sequence: "", ActualRange: requested, Error: upstreamErr}
	}

	dna, ok := payload["dna"].(string)
	if !ok {
		return records.SequenceResult{
			Sequence:    "",
			ActualRange: requested,
			Error:       fmt.Sprintf("no sequence returned for %s:%d-%d", chromName, start, end),
		}
	}

	return records.SequenceResult{Sequence: strings.ToUpper(dna), ActualRange: requested}
}
