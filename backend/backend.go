package backend

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")

	lock     = sync.RWMutex{}
	impl     = implementation(blas{})
	backends = map[string]implementation{
		naive{}.Name(): naive{},
		blas{}.Name():  blas{},
	}
)

// Name returns the name of the backend in use.
func Name() string {
	lock.RLock()
	defer lock.RUnlock()
	return impl.Name()
}

// Available returns the sorted names of every backend that can be selected.
func Available() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Use selects the backend with the given name for every following call.
func Use(name string) error {
	selected, found := backends[name]
	if !found {
		return errors.Wrapf(ErrUnknownBackend, "'%s', available: %v", name, Available())
	}

	lock.Lock()
	defer lock.Unlock()
	impl = selected
	return nil
}

// Transform applies the n×n row-major matrix a to count packed vectors of src,
// writing the results to dst. The caller guarantees that a holds n*n elements
// and that src and dst hold at least count*n elements.
func Transform(n int, a []float32, count int, src, dst []float32) {
	if count == 0 {
		return
	}

	lock.RLock()
	current := impl
	lock.RUnlock()

	current.Transform(n, a, count, src, dst)
}
