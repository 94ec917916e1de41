package objectstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex(t *testing.T) {
	k := newKeyedMutex()

	unlock := k.Lock("assets")

	acquired := make(chan struct{})
	go func() {
		release := k.Lock("assets")
		close(acquired)
		release()
	}()

	// Other keys are independent.
	k.Lock("other")()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first is held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired")
	}

	assert.Eventually(t, func() bool {
		k.mu.Lock()
		defer k.mu.Unlock()
		return len(k.locks) == 0
	}, time.Second, 10*time.Millisecond)
}
