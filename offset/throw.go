package offset

import "github.com/pkg/errors"

// Invariant violations deep in the annotator or tracer indicate a bug in the
// Voronoi producer or a degeneracy the caller was supposed to prevent.
// Threading error returns through every propagation step would add a ton of
// complexity for conditions that should never occur, so we panic instead and
// let the public API recover and convert to an error.

type OffsetError error

// Panic with an OffsetError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleOffsetPanicRecover(r interface{}) error {
	if r != nil {
		if offsetError, ok := r.(OffsetError); ok {
			return offsetError
		}
		panic(r)
	}
	return nil
}
