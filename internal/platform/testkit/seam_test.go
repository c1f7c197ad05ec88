package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	newID    = func() string { return "random" }
	maxLines = 5
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &newID, func() string { return "fixed" })
		Swap(t, &maxLines, 2)
		if newID() != "fixed" || maxLines != 2 {
			t.Fatalf("swap did not take effect: %q %d", newID(), maxLines)
		}
	})
	if newID() != "random" || maxLines != 5 {
		t.Fatalf("swap not restored: %q %d", newID(), maxLines)
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	next := Sequence("a", "b")
	for _, want := range []string{"a", "b", "b"} {
		if got := next(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
	if got := Sequence()(); got != "" {
		t.Fatalf("empty sequence = %q", got)
	}
}

// serialRun runs two parallel subtests under the given keys and reports whether they overlapped
func serialRun(t *testing.T, keyA, keyB string) bool {
	var (
		mu      sync.Mutex
		running int
		overlap bool
	)
	enter := func() {
		mu.Lock()
		running++
		if running > 1 {
			overlap = true
		}
		mu.Unlock()
	}
	leave := func() {
		mu.Lock()
		running--
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, k := range []string{keyA, keyB} {
			t.Run(k, func(t *testing.T) {
				t.Parallel()
				Serial(t, k)
				enter()
				time.Sleep(30 * time.Millisecond)
				leave()
			})
		}
	})
	return overlap
}

func TestSerial_SameKeyNeverOverlaps(t *testing.T) {
	if serialRun(t, "registry", "registry") {
		t.Fatal("tests sharing a key ran concurrently")
	}
}

func TestSerial_DefaultKey(t *testing.T) {
	var order []string
	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				order = append(order, name+"-start")
				time.Sleep(10 * time.Millisecond)
				order = append(order, name+"-end")
			})
		}
	})
	if len(order) != 4 || order[0][0] != order[1][0] || order[2][0] != order[3][0] {
		t.Fatalf("interleaved: %v", order)
	}
}
