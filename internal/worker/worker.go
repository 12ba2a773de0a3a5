package worker

import (
	"errors"
	"sync"

	"github.com/labstack/gommon/log"
)

// ErrStopped is returned when submitting to a pool that has been stopped.
var ErrStopped = errors.New("worker pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	// Submit blocks until a worker accepts t.
	Submit(Task) error
	// TrySubmit hands t to an idle worker and reports false if every worker is busy.
	TrySubmit(Task) bool
	// Stop waits for running tasks to finish. Safe to call more than once.
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				run(job)
			}
		}()
	}
	return p
}

// run 執行單一 task，panic 只記錄不讓 worker 結束
func run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("worker task panic: %v", r)
		}
	}()
	job()
}

type pool struct {
	mu     sync.RWMutex
	closed bool
	jobs   chan Task
	wg     sync.WaitGroup
}

func (p *pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrStopped
	}
	p.jobs <- t
	return nil
}

func (p *pool) TrySubmit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
