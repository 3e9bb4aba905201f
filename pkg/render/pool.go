package render

import (
	"runtime"
	"sync"
)

// Pool is a fixed set of worker goroutines shared by every frame of a run.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup

	size int
}

// NewPool starts workers goroutines, or one per CPU if workers <= 0.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		jobs: make(chan func(), workers),
		size: workers,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}

	return p
}

// Size is the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Go queues job for a worker. It blocks while every worker is busy and the
// queue is full.
func (p *Pool) Go(job func()) {
	p.jobs <- job
}

// Close stops the workers after the queued jobs finish. The Pool must not
// be used afterwards.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
