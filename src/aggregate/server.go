package aggregate

import (
	"net"

	pb "github.com/LucaChot/koopman/src/message"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// StartServer listens on addr and serves merge requests in the background.
func (agg *Aggregator) StartServer(addr string) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Fatalf("failed to start aggregate server")
	}

	s := grpc.NewServer()
	pb.RegisterAggregateMergeServer(s, agg)

	log.WithFields(log.Fields{
		"ADDRESS": lis.Addr(),
	}).Debug("STARTED AGGREGATE SERVER")

	go func() {
		if err := s.Serve(lis); err != nil {
			log.WithFields(log.Fields{
				"ERR": err,
			}).Fatalf("FAILED TO SERVE")
		}
	}()
}
