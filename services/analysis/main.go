package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"genobrowse/api/models"
)

type (
	AnalysisService struct {
		Config *models.Config
	}
)

func NewAnalysisService(cfg *models.Config) *AnalysisService {
	as := &AnalysisService{
		Config: cfg,
	}

	return as
}

type VariantAnalysisRequest struct {
	VariantPosition int    `json:"variant_position"`
	Alternative     string `json:"alternative"`
	Genome          string `json:"genome"`
	Chromosome      string `json:"chromosome"`
}

// AnalyzeVariant posts one variant to the configured scoring endpoint
// and hands the response body back verbatim; the scientific fields
// (delta_score, prediction, ...) are opaque to this service.
func (as *AnalysisService) AnalyzeVariant(position int, alternative string, genome string, chrom string) (map[string]interface{}, error) {
	if len(as.Config.Analysis.Url) == 0 {
		return nil, fmt.Errorf("no variant analysis endpoint configured")
	}

	requestBody, marshalErr := json.Marshal(VariantAnalysisRequest{
		VariantPosition: position,
		Alternative:     alternative,
		Genome:          genome,
		Chromosome:      chrom,
	})
	if marshalErr != nil {
		return nil, marshalErr
	}

	response, responseErr := http.Post(as.Config.Analysis.Url, "application/json", bytes.NewReader(requestBody))
	if responseErr != nil {
		return nil, responseErr
	}
	defer response.Body.Close()

	responseBody, bodyErr := ioutil.ReadAll(response.Body)
	if bodyErr != nil {
		return nil, bodyErr
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("variant analysis failed: %s", strings.TrimSpace(string(responseBody)))
	}

	var result map[string]interface{}
	if jsonErr := json.Unmarshal(responseBody, &result); jsonErr != nil {
		return nil, fmt.Errorf("variant analysis returned an unparsable response: %v", jsonErr)
	}

	return result, nil
}
