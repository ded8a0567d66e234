package status

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"genobrowse/api/models"

	"github.com/go-co-op/gocron"
)

type (
	StatusService struct {
		Initialized bool
		Config      *models.Config

		lastChecked time.Time
		reachable   map[string]bool
		mux         sync.RWMutex
	}
)

func NewStatusService(cfg *models.Config) *StatusService {
	ss := &StatusService{
		Initialized: false,
		Config:      cfg,
		reachable:   map[string]bool{},
	}

	ss.Init()

	return ss
}

func (ss *StatusService) Init() {
	// initialization if necessary
	if !ss.Initialized {
		if ss.Config.Status.ProbeEnabled {
			// - spin up a go routine that periodically pings each
			//   upstream so /service-info can report reachability
			//   without issuing requests of its own
			go func() {
				// setup cron job
				s := gocron.NewScheduler(time.UTC)

				s.Every(30).Minutes().Do(func() {
					fmt.Printf("[%s] - Probing upstream services..\n", time.Now())
					ss.ProbeUpstreams()
				})

				s.StartBlocking()
			}()
		}

		ss.Initialized = true
	}
}

// ProbeUpstreams issues one cheap request per upstream and records the
// outcome in memory. Nothing is persisted and nothing is retried.
func (ss *StatusService) ProbeUpstreams() {
	checks := map[string]string{
		"ucsc":        fmt.Sprintf("%s/list/ucscGenomes", ss.Config.Ucsc.Url),
		"ncbi-eutils": fmt.Sprintf("%s/einfo.fcgi?retmode=json", ss.Config.Ncbi.EUtilsUrl),
	}

	results := map[string]bool{}
	for name, checkUrl := range checks {
		response, responseErr := http.Get(checkUrl)

		ok := responseErr == nil && response.StatusCode == http.StatusOK
		if response != nil {
			response.Body.Close()
		}

		results[name] = ok
		if !ok {
			fmt.Printf("[%s] - Upstream %s is unreachable..\n", time.Now(), name)
		}
	}

	ss.mux.Lock()
	ss.reachable = results
	ss.lastChecked = time.Now()
	ss.mux.Unlock()
}

// Snapshot returns the most recent probe outcome for /service-info.
func (ss *StatusService) Snapshot() map[string]interface{} {
	ss.mux.RLock()
	defer ss.mux.RUnlock()

	upstreams := map[string]bool{}
	for name, ok := range ss.reachable {
		upstreams[name] = ok
	}

	return map[string]interface{}{
		"probeEnabled": ss.Config.Status.ProbeEnabled,
		"lastChecked":  ss.lastChecked,
		"upstreams":    upstreams,
	}
}
