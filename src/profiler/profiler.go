package profiler

import (
	"net/http"
	_ "net/http/pprof"

	log "github.com/sirupsen/logrus"
)

func StartProfilerServer(addr string) {
	go func() {
		log.WithFields(log.Fields{
			"ADDRESS": addr,
		}).Debug("PROFILER: LISTENING")
		log.Error(http.ListenAndServe(addr, nil))
	}()
}
