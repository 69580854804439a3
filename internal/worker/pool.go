package worker

import "sync"

// Observer receives pool lifecycle notifications. Implemented by the
// monitoring metrics collector; a nil observer disables reporting.
type Observer interface {
	IncWorkerTasks()
	SetWorkerQueueDepth(n int)
	WorkerStarted()
	WorkerFinished()
}

// Pool runs blocking work on a fixed set of worker goroutines so callers
// never perform disk IO on their own goroutine.
type Pool struct {
	tasks    chan func()
	observer Observer

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a pool with the given worker count and queue capacity.
// Counts below one are clamped to one.
func New(workers, queue int, observer Observer) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queue < 0 {
		queue = 0
	}

	p := &Pool{
		tasks:    make(chan func(), queue),
		observer: observer,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for task := range p.tasks {
		if p.observer != nil {
			p.observer.WorkerStarted()
			p.observer.SetWorkerQueueDepth(len(p.tasks))
		}
		task()
		if p.observer != nil {
			p.observer.WorkerFinished()
			p.observer.IncWorkerTasks()
		}
	}
}

// Post schedules fn on the pool and returns a channel that is closed once
// fn has run. Posting to a closed pool panics, matching channel semantics.
func (p *Pool) Post(fn func()) <-chan struct{} {
	done := make(chan struct{})
	p.tasks <- func() {
		defer close(done)
		fn()
	}
	if p.observer != nil {
		p.observer.SetWorkerQueueDepth(len(p.tasks))
	}
	return done
}

// PostAndReply runs task on the pool, blocks the calling goroutine until it
// completes, then invokes reply on the calling goroutine. Reply runs exactly
// once regardless of what task did.
func (p *Pool) PostAndReply(task, reply func()) {
	<-p.Post(task)
	reply()
}

// Close stops accepting work and waits for in-flight tasks to finish.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
