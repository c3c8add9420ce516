package covariance

import "gonum.org/v1/gonum/mat"

// Symmetrize produces the reversible statistic pair from raw statistics:
// both series share the symmetric mean, the instantaneous covariance becomes
// (C00 + Ctt)/2 and the cross-covariance (C0t + C0t^T)/2, all re-centered so
// the result equals a single symmetrized pass over the data. Whether the
// exchangeability assumption holds for the underlying process is the
// caller's responsibility; it is not checked here.
//
// The input is unchanged; already-symmetrized statistics pass through.
func Symmetrize(s *Statistics) *Statistics {
	if s.symmetrized {
		return s
	}

	f := s.features
	mean := make([]float64, f)
	for i := 0; i < f; i++ {
		mean[i] = 0.5 * (s.mean0[i] + s.meanT[i])
	}

	// Re-centering works on the raw second moments, recovered from the
	// covariances by adding back the outer products of the raw means.
	c00 := mat.NewSymDense(f, nil)
	c0t := mat.NewDense(f, f, nil)
	for i := 0; i < f; i++ {
		for j := 0; j < f; j++ {
			cross := 0.5*(s.c0t.At(i, j)+s.mean0[i]*s.meanT[j]+
				s.c0t.At(j, i)+s.meanT[i]*s.mean0[j]) - mean[i]*mean[j]
			c0t.Set(i, j, cross)
			if j >= i {
				inst := 0.5*(s.c00.At(i, j)+s.mean0[i]*s.mean0[j]+
					s.ctt.At(i, j)+s.meanT[i]*s.meanT[j]) - mean[i]*mean[j]
				c00.SetSym(i, j, inst)
			}
		}
	}

	return &Statistics{
		features:    f,
		lag:         s.lag,
		pairs:       s.pairs,
		mean0:       mean,
		meanT:       mean,
		c00:         c00,
		c0t:         c0t,
		ctt:         c00,
		symmetrized: true,
		constant:    s.constant,
	}
}
