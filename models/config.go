package models

type Config struct {
	Debug bool `yaml:"debug" envconfig:"GENOBROWSE_DEBUG"`

	Api struct {
		Url  string `yaml:"url" envconfig:"GENOBROWSE_API_URL"`
		Port string `yaml:"port" envconfig:"GENOBROWSE_API_INTERNAL_PORT"`
	} `yaml:"api"`

	Ucsc struct {
		Url string `yaml:"url" envconfig:"GENOBROWSE_UCSC_API_URL"`
	} `yaml:"ucsc"`

	Ncbi struct {
		SearchUrl string `yaml:"searchUrl" envconfig:"GENOBROWSE_NCBI_SEARCH_URL"`
		EUtilsUrl string `yaml:"eutilsUrl" envconfig:"GENOBROWSE_NCBI_EUTILS_URL"`
	} `yaml:"ncbi"`

	Analysis struct {
		Url string `yaml:"url" envconfig:"GENOBROWSE_ANALYSIS_URL"`
	} `yaml:"analysis"`

	Status struct {
		ProbeEnabled bool `yaml:"probeEnabled" envconfig:"GENOBROWSE_STATUS_PROBE_ENABLED"`
	} `yaml:"status"`
}
