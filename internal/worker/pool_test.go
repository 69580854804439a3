package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolPost(t *testing.T) {
	pool := New(2, 8, nil)
	defer pool.Close()

	var ran atomic.Bool
	done := pool.Post(func() { ran.Store(true) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not complete")
	}

	assert.True(t, ran.Load())
}

func TestPoolPostAndReplyOrder(t *testing.T) {
	pool := New(1, 4, nil)
	defer pool.Close()

	var order []string
	var mu sync.Mutex
	record := func(s string) {
		mu.Lock()
		order = append(order, s)
		mu.Unlock()
	}

	pool.PostAndReply(
		func() { record("task") },
		func() { record("reply") },
	)

	assert.Equal(t, []string{"task", "reply"}, order)
}

func TestPoolReplyRunsExactlyOnce(t *testing.T) {
	pool := New(4, 16, nil)
	defer pool.Close()

	var replies atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.PostAndReply(func() {}, func() { replies.Add(1) })
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(50), replies.Load())
}

func TestPoolClampsWorkerCount(t *testing.T) {
	pool := New(0, -1, nil)
	defer pool.Close()

	done := pool.Post(func() {})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("clamped pool never ran the task")
	}
}

func TestPoolCloseWaitsForInflight(t *testing.T) {
	pool := New(1, 1, nil)

	started := make(chan struct{})
	finished := atomic.Bool{}
	pool.Post(func() {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	pool.Close()
	assert.True(t, finished.Load())
}
