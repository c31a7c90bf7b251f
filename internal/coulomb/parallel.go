package coulomb

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/particle"
)

// Below this many particles the serial path wins; goroutine overhead
// dominates the O(N²) pass.
const parallelThreshold = 64

// forcesParallel splits the outer pair loop across workers. Each worker
// accumulates into a private force slice and the slices are summed at the
// end, so every particle's final force is the exact pair sum; only the
// floating-point addition order differs from the serial path.
func (s *Solver) forcesParallel(particles []*particle.Particle) []r3.Vec {
	n := len(particles)
	workers := s.Workers
	if workers > n {
		workers = n
	}

	local := make([][]r3.Vec, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			acc := make([]r3.Vec, n)
			// Strided rows balance the triangular pair loop better
			// than contiguous blocks.
			for i := w; i < n; i += workers {
				for j := i + 1; j < n; j++ {
					f, ok := pairForce(particles[i], particles[j])
					if !ok {
						continue
					}
					acc[i] = r3.Add(acc[i], f)
					acc[j] = r3.Sub(acc[j], f)
				}
			}
			local[w] = acc
		}(w)
	}
	wg.Wait()

	forces := make([]r3.Vec, n)
	for _, acc := range local {
		for i := range forces {
			forces[i] = r3.Add(forces[i], acc[i])
		}
	}
	return forces
}
