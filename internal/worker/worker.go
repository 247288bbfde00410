package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Job is a unit of work that produces a value, dispatched as a future.
type Job func() (any, error)

// Result carries the outcome of a dispatched Job.
type Result struct {
	Value any
	Err   error
}

// Pool defines a bounded worker pool. Submit is fire-and-forget;
// Dispatch returns a one-shot channel that receives the Job's result.
// A caller that stops waiting does not stop the running Job.
type Pool interface {
	Submit(Task)
	Dispatch(Job) <-chan Result
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
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Dispatch(j Job) <-chan Result {
	// buffered so the worker never blocks on an abandoned caller
	ch := make(chan Result, 1)
	p.jobs <- func() {
		v, err := j()
		ch <- Result{Value: v, Err: err}
	}
	return ch
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
