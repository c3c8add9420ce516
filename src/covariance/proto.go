package covariance

import (
	"fmt"

	pb "github.com/LucaChot/koopman/src/message"
	"gonum.org/v1/gonum/mat"
)

// ToProto serializes the accumulator's raw sums for wire transfer or
// persistence. The raw moments, not derived covariances, go over the wire so
// that the receiver can merge exactly.
func (a *Accumulator) ToProto() *pb.Statistics {
	msg := &pb.Statistics{
		Lag:      int64(a.lag),
		Features: int64(a.features),
		Pairs:    int64(a.pairs),
	}
	if a.features == 0 {
		return msg
	}

	f := a.features
	msg.InstantSum = append([]float64(nil), a.sum0...)
	msg.LaggedSum = append([]float64(nil), a.sumT...)
	msg.InstantMoments = append([]float64(nil), a.m00.RawMatrix().Data[:f*f]...)
	msg.CrossMoments = append([]float64(nil), a.m0t.RawMatrix().Data[:f*f]...)
	msg.LaggedMoments = append([]float64(nil), a.mtt.RawMatrix().Data[:f*f]...)
	return msg
}

// AccumulatorFromProto rebuilds an accumulator from its wire form.
func AccumulatorFromProto(msg *pb.Statistics) (*Accumulator, error) {
	a, err := NewAccumulator(int(msg.GetLag()))
	if err != nil {
		return nil, err
	}

	f := int(msg.GetFeatures())
	if f == 0 {
		return a, nil
	}
	if len(msg.GetInstantSum()) != f || len(msg.GetLaggedSum()) != f ||
		len(msg.GetInstantMoments()) != f*f || len(msg.GetCrossMoments()) != f*f ||
		len(msg.GetLaggedMoments()) != f*f {
		return nil, fmt.Errorf("%w: message arrays do not match %d features", ErrDimensionMismatch, f)
	}

	a.features = f
	a.pairs = int(msg.GetPairs())
	a.sum0 = append([]float64(nil), msg.GetInstantSum()...)
	a.sumT = append([]float64(nil), msg.GetLaggedSum()...)
	a.m00 = mat.NewDense(f, f, append([]float64(nil), msg.GetInstantMoments()...))
	a.m0t = mat.NewDense(f, f, append([]float64(nil), msg.GetCrossMoments()...))
	a.mtt = mat.NewDense(f, f, append([]float64(nil), msg.GetLaggedMoments()...))
	return a, nil
}
