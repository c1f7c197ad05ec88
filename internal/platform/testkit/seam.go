package testkit

import (
	"sync"
	"testing"
)

var locks sync.Map // key -> *sync.Mutex

// Swap replaces a package-level seam for the duration of the test
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a lock until the test ends. Tests naming the same key never overlap;
// with no key they share one global lock
func Serial(t *testing.T, key ...string) {
	t.Helper()
	k := ""
	if len(key) > 0 {
		k = key[0]
	}
	v, _ := locks.LoadOrStore(k, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	t.Cleanup(mu.Unlock)
}

// Sequence returns a seam that yields ids in order, then repeats the last one.
// It is meant for swapping id generators such as uuid.NewString
func Sequence(ids ...string) func() string {
	var (
		mu sync.Mutex
		i  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		if len(ids) == 0 {
			return ""
		}
		id := ids[min(i, len(ids)-1)]
		i++
		return id
	}
}
