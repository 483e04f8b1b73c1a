// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for per-frame plane
// work. A Pool is created once per conversion and reused for every frame, so
// running the U and V kernels side by side or splitting a frame into row bands
// costs no goroutine spawns.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for frame := range frames {
//	    pool.Run(
//	        func() { kernel(width, height, frame.U, outU, cs) },
//	        func() { kernel(width, height, frame.V, outV, cs) },
//	    )
//	    pool.ParallelFor(frame.Height, func(start, end int) {
//	        packRows(start, end)
//	    })
//	}
//
// Every callback passed in one call must touch memory disjoint from the
// others; the pool adds no synchronization beyond waiting for completion.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close more
// than once is safe; a closed pool runs all later work on the caller's
// goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run executes every task and blocks until all have returned. With a single
// worker, a single task or a closed pool the tasks run in order on the
// calling goroutine.
func (p *Pool) Run(tasks ...func()) {
	p.ParallelForAtomic(len(tasks), func(i int) {
		tasks[i]()
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. Blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForStep(n, 1, fn)
}

// ParallelForStep is ParallelFor with every range boundary a multiple of
// step, for work that must stay grouped (for example the two rows of a
// field pair).
func (p *Pool) ParallelForStep(n, step int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if step <= 0 {
		step = 1
	}

	units := (n + step - 1) / step
	workers := min(p.numWorkers, units)
	if p.closed.Load() || workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (units + workers - 1) / workers * step

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time so uneven items balance across workers.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers <= 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
