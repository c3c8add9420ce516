package main

import (
	"flag"

	"github.com/LucaChot/koopman/src/aggregate"
	"github.com/LucaChot/koopman/src/profiler"

	log "github.com/sirupsen/logrus"
)

var (
	listen    = flag.String("listen", ":50052", "address for the merge service")
	lag       = flag.Int("lag", 1, "lag time in steps for accumulated statistics")
	pprofAddr = flag.String("pprof", "", "optional pprof listen address")
)

func init() {
	flag.Parse()

	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})
}

func main() {
	if *pprofAddr != "" {
		profiler.StartProfilerServer(*pprofAddr)
	}

	agg, err := aggregate.New(*lag)
	if err != nil {
		log.Fatal(err)
	}

	agg.StartServer(*listen)
	select {}
}
