package covariance

import (
	"context"

	pb "github.com/LucaChot/koopman/src/message"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// AggregatorClient pushes partial accumulations to a remote aggregator and
// receives the merged global sums back.
type AggregatorClient struct {
	stub pb.AggregateMergeClient
}

// DialAggregator connects to an aggregator at addr.
func DialAggregator(addr string) (*AggregatorClient, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"for":   "aggregation",
		}).Error("Could not connect to aggregator")
		return nil, err
	}

	return &AggregatorClient{stub: pb.NewAggregateMergeClient(conn)}, nil
}

// PushMerge submits this accumulator's sums and returns an accumulator
// holding the aggregator's merged global state.
func (c *AggregatorClient) PushMerge(ctx context.Context, a *Accumulator) (*Accumulator, error) {
	log.Debug("COVARIANCE: REQUESTING AGGREGATION")

	out, err := c.stub.RequestMerge(ctx, a.ToProto())
	if err != nil {
		log.WithFields(log.Fields{
			"ERROR": err,
		}).Error("FAILED AGGREGATION")
		return nil, err
	}

	log.Debug("COVARIANCE: COMPLETED AGGREGATION")

	return AccumulatorFromProto(out)
}
