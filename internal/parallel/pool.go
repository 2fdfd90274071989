package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs band jobs on a fixed set of goroutines.
//
// Each worker has its own queue and takes work from the other queues when
// its own is empty, so one slow band does not leave the remaining workers
// idle. Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// A non-positive count means GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), max(workers*4, 8))
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func (p *Pool) drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := range p.queues {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run calls fn once per band on the pool workers and waits for all of
// them. After Close, bands run on the calling goroutine.
func (p *Pool) Run(bands []Band, fn func(Band)) {
	if len(bands) == 0 {
		return
	}
	if !p.running.Load() {
		for _, b := range bands {
			fn(b)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for i, b := range bands {
		job := func() {
			defer wg.Done()
			fn(b)
		}
		select {
		case p.queues[i%p.workers] <- job:
		case <-p.done:
			job()
		}
	}
	wg.Wait()
}

// Close stops the workers after the queued jobs have run.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int { return p.workers }
