package records

/*
	Internal record shapes produced by the upstream repositories.
	Every record is created whole by the operation returning it and
	never mutated afterwards.
*/

type GenomeAssembly struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	SourceName string `json:"sourceName"`
	Active     bool   `json:"active"`
}

// OrganismGroup preserves the catalog's first-seen organism order and,
// within a group, the catalog's source order.
type OrganismGroup struct {
	Organism   string           `json:"organism"`
	Assemblies []GenomeAssembly `json:"assemblies"`
}

type Chromosome struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type GeneSearchResult struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Chrom       string `json:"chrom"`
	Description string `json:"description"`
	GeneId      string `json:"gene_id,omitempty"`
}

// GenomicInfo mirrors one entry of the NCBI gene summary's genomicinfo
// list; only the first entry is authoritative.
type GenomicInfo struct {
	ChrStart int    `json:"chrstart" mapstructure:"chrstart"`
	ChrStop  int    `json:"chrstop" mapstructure:"chrstop"`
	Strand   string `json:"strand,omitempty" mapstructure:"strand"`
}

type GeneOrganism struct {
	ScientificName string `json:"scientificname" mapstructure:"scientificname"`
	CommonName     string `json:"commonname" mapstructure:"commonname"`
}

type GeneDetails struct {
	GenomicInfo []GenomicInfo `json:"genomicinfo" mapstructure:"genomicinfo"`
	Summary     string        `json:"summary,omitempty" mapstructure:"summary"`
	Organism    *GeneOrganism `json:"organism,omitempty" mapstructure:"organism"`
}

// GeneBounds is the inclusive min/max genomic span of a gene;
// Min <= Max always holds.
type GeneBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ViewRange is a 1-based inclusive viewing window.
type ViewRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SequenceResult carries an uppercase nucleotide string, or an empty
// sequence plus an error message. ActualRange always echoes the range
// the caller asked for.
type SequenceResult struct {
	Sequence    string    `json:"sequence"`
	ActualRange ViewRange `json:"actualRange"`
	Error       string    `json:"error,omitempty"`
}

type ClinvarVariant struct {
	ClinvarId      string `json:"clinvar_id"`
	Title          string `json:"title"`
	VariationType  string `json:"variation_type"`
	Classification string `json:"classification"`
	GeneSort       string `json:"gene_sort"`
	Chromosome     string `json:"chromosome"`
	Location       string `json:"location"`
}
