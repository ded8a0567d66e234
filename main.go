package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"time"

	"genobrowse/api/contexts"
	gbm "genobrowse/api/middleware"
	"genobrowse/api/models"
	serviceInfo "genobrowse/api/models/constants/service-info"
	"genobrowse/api/mvc/genes"
	"genobrowse/api/mvc/genomes"
	"genobrowse/api/mvc/variants"
	"genobrowse/api/services/analysis"
	"genobrowse/api/services/status"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	if dotenvErr := godotenv.Load(); dotenvErr != nil {
		fmt.Println("No .env file found, using the process environment")
	}

	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	// fallbacks for anything the environment left unset
	if len(cfg.Api.Port) == 0 {
		cfg.Api.Port = "5000"
	}
	if len(cfg.Ucsc.Url) == 0 {
		cfg.Ucsc.Url = "https://api.genome.ucsc.edu"
	}
	if len(cfg.Ncbi.SearchUrl) == 0 {
		cfg.Ncbi.SearchUrl = "https://clinicaltables.nlm.nih.gov/api/ncbi_genes/v3/search"
	}
	if len(cfg.Ncbi.EUtilsUrl) == 0 {
		cfg.Ncbi.EUtilsUrl = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tUCSC API Url : %s \n"+
		"\tNCBI Gene Search Url : %s \n"+
		"\tNCBI E-utilities Url : %s \n"+
		"\tVariant Analysis Url : %s \n"+
		"\tUpstream Probe Enabled : %t \n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Ucsc.Url,
		cfg.Ncbi.SearchUrl,
		cfg.Ncbi.EUtilsUrl,
		cfg.Analysis.Url,
		cfg.Status.ProbeEnabled,
		cfg.Api.Port)
	// --

	if cfg.Debug {
		http.DefaultTransport.(*http.Transport).TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	// Instantiate Server
	e := echo.New()

	// Service Singletons
	as := analysis.NewAnalysisService(&cfg)
	ss := status.NewStatusService(&cfg)

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with "custom GenoBrowse" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			gc := &contexts.GenoContext{
				Context:         c,
				Config:          &cfg,
				AnalysisService: as,
				StatusService:   ss,
			}
			return h(gc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", func(c echo.Context) error {
		// Spec: https://github.com/ga4gh-discovery/ga4gh-service-info
		return c.JSON(http.StatusOK, map[string]interface{}{
			"id":          serviceInfo.SERVICE_ID,
			"name":        serviceInfo.SERVICE_NAME,
			"type":        serviceInfo.SERVICE_TYPE,
			"description": serviceInfo.SERVICE_DESCRIPTION,
			"contactUrl":  serviceInfo.SERVICE_CONTACT,
			"version":     serviceInfo.SERVICE_VERSION,
			"upstreams":   c.(*contexts.GenoContext).StatusService.Snapshot(),
		})
	})

	// -- Genomes
	e.GET("/genomes", genomes.GetGenomes)
	e.GET("/genomes/overview", genomes.GetGenomesOverview)
	e.GET("/genomes/summary", genomes.GetGenomeSummary,
		// middleware
		gbm.MandateGenomeIdAttribute)
	e.GET("/genomes/chromosomes", genomes.GetChromosomes,
		// middleware
		gbm.MandateGenomeIdAttribute)

	// -- Genes
	e.GET("/genes/search", genes.GenesSearch,
		// middleware
		gbm.MandateGenomeIdAttribute)
	e.GET("/genes/details", genes.GetGeneDetails)
	e.GET("/genes/sequence", genes.GetSequence,
		// middleware
		gbm.MandateGenomeIdAttribute,
		gbm.MandateChromosomeAttribute,
		gbm.MandateSequenceRange)

	// -- Variants
	e.GET("/variants/search", variants.VariantsSearch,
		// middleware
		gbm.MandateGenomeIdAttribute,
		gbm.MandateChromosomeAttribute,
		gbm.MandateCalibratedBounds)
	e.POST("/variants/analyze", variants.VariantsAnalyze)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
