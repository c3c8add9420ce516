// Package aggregate merges partial covariance accumulations from
// distributed collectors into one global accumulator.
//
// Core Components:
// - a single mutex-guarded global accumulator
// - gRPC threads merging incoming partial sums into it
//
// Merging raw moment sums is exact, so the global statistics equal a single
// pass over the union of all collectors' pairs regardless of arrival order.
// The latest merged snapshot is published through an atomic pointer so
// readers never contend with in-flight merges.
package aggregate

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/LucaChot/koopman/src/covariance"
	pb "github.com/LucaChot/koopman/src/message"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Aggregator implements the AggregateMerge service over a single global
// covariance accumulator.
type Aggregator struct {
	pb.UnimplementedAggregateMergeServer

	mu       sync.Mutex
	acc      *covariance.Accumulator
	snapshot atomic.Pointer[covariance.Statistics]
}

// New creates an aggregator collecting statistics at the given lag time.
func New(lag int) (*Aggregator, error) {
	acc, err := covariance.NewAccumulator(lag)
	if err != nil {
		return nil, err
	}
	return &Aggregator{acc: acc}, nil
}

// RequestMerge folds a collector's partial sums into the global accumulator
// and returns the merged global state.
func (agg *Aggregator) RequestMerge(ctx context.Context, in *pb.Statistics) (*pb.Statistics, error) {
	partial, err := covariance.AccumulatorFromProto(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	log.WithFields(log.Fields{
		"PAIRS":    partial.Pairs(),
		"FEATURES": partial.Features(),
	}).Debug("AGGREGATE: RECEIVED MERGE REQUEST")

	agg.mu.Lock()
	if err := agg.acc.Merge(partial); err != nil {
		agg.mu.Unlock()
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	out := agg.acc.ToProto()
	stats, err := agg.acc.Statistics()
	agg.mu.Unlock()

	if err == nil {
		agg.snapshot.Store(stats)
	}

	return out, nil
}

// Statistics returns the most recently merged global snapshot, or nil
// before the first non-empty merge.
func (agg *Aggregator) Statistics() *covariance.Statistics {
	return agg.snapshot.Load()
}
