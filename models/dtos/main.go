package dtos

import (
	"time"

	"genobrowse/api/models/records"

	"github.com/google/uuid"
)

type GenomesResponseDTO struct {
	Status    int                     `json:"status"`
	Message   string                  `json:"message"`
	Organisms []records.OrganismGroup `json:"organisms"`
}

type GenomeSummaryResponseDTO struct {
	Status      int                    `json:"status"`
	Message     string                 `json:"message"`
	Organism    string                 `json:"organism"`
	Genome      records.GenomeAssembly `json:"genome"`
	Chromosomes []records.Chromosome   `json:"chromosomes"`
}

type ChromosomesResponseDTO struct {
	Status      int                  `json:"status"`
	Message     string               `json:"message"`
	Genome      string               `json:"genome"`
	Chromosomes []records.Chromosome `json:"chromosomes"`
}

type GenesResponseDTO struct {
	Status  int                        `json:"status"`
	Message string                     `json:"message"`
	Term    string                     `json:"term"`
	Count   int                        `json:"count"`
	Results []records.GeneSearchResult `json:"results"`
}

// GeneDetailsResponseDTO renders all three fields as null when the
// upstream lookup was absorbed as "not found".
type GeneDetailsResponseDTO struct {
	Status       int                  `json:"status"`
	Message      string               `json:"message"`
	GeneDetails  *records.GeneDetails `json:"geneDetails"`
	GeneBounds   *records.GeneBounds  `json:"geneBounds"`
	InitialRange *records.ViewRange   `json:"initialRange"`
}

type SequenceResponseDTO struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Result  records.SequenceResult `json:"result"`
}

type VariantsResponseDTO struct {
	QueryId uuid.UUID                `json:"queryId"`
	Status  int                      `json:"status"`
	Message string                   `json:"message"`
	Count   int                      `json:"count"`
	Results []records.ClinvarVariant `json:"results"`
}

type AnalyzeVariantRequestDto struct {
	Position    int    `json:"position"`
	Alternative string `json:"alternative"`
	Genome      string `json:"genome"`
	Chromosome  string `json:"chromosome"`
}

// -- general errors

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
