// Package kll exposes Apache DataSketches KLL quantile sketches to Go
// through the native KLL shim.
//
// A KLL sketch consumes a stream of numeric values under bounded memory and
// answers approximate quantile and rank queries with strong accuracy
// guarantees. The resolution parameter k fixes the accuracy/space trade-off
// at construction: larger k retains more samples internally for tighter
// error bounds.
//
// Two element widths are provided, DoubleSketch (float64) and FloatSketch
// (float32), identical except for element width. Each value owns exactly one
// native sketch and must be released with Close exactly once:
//
//	s, err := kll.NewDoubleSketch()
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//	for _, v := range values {
//		s.Update(v)
//	}
//	median := s.Quantile(0.5)
//
// Query methods are safe for concurrent use across goroutines. Mutations
// (Update, Merge, UnmarshalJSON, Close) require exclusive access; the
// package performs no internal locking.
package kll
