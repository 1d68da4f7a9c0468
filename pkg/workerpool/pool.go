// Package workerpool bounds the goroutines spent on fire-and-forget side
// work, such as outbound notification mail. When every worker is busy and
// the queue is full, Submit fails fast with ErrPoolFull and the caller
// decides whether the task is worth keeping.
package workerpool

import (
	"errors"
	"sync"
)

// ErrPoolFull is returned by Submit when the task queue is at capacity.
var ErrPoolFull = errors.New("workerpool: pool is full")

// ErrPoolClosed is returned by Submit after Shutdown.
var ErrPoolClosed = errors.New("workerpool: pool is closed")

// Pool runs submitted tasks on a fixed set of workers.
type Pool struct {
	tasks   chan func()
	wg      sync.WaitGroup
	once    sync.Once
	closeCh chan struct{}
}

// New starts a pool with size workers. The queue absorbs a burst of up to
// twice the worker count.
func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{
		tasks:   make(chan func(), size*2),
		closeCh: make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

// Submit enqueues task without blocking. It returns ErrPoolFull when the
// queue is at capacity and ErrPoolClosed after Shutdown.
func (p *Pool) Submit(task func()) error {
	select {
	case <-p.closeCh:
		return ErrPoolClosed
	default:
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrPoolFull
	}
}

// Shutdown stops accepting tasks and waits for in-flight ones to finish.
// Safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.closeCh)
		close(p.tasks)
		p.wg.Wait()
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		run(task)
	}
}

// run contains a panicking task so it cannot take a worker down.
func run(task func()) {
	defer func() { _ = recover() }()
	task()
}
