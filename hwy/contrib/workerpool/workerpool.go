// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs independent kernel calls on a fixed set of
// goroutines.
//
// Each conditional kernel is single-threaded. Throughput over a batch of
// frames comes from running one call per frame on a persistent pool, which
// avoids spawning goroutines per batch:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	sums := workerpool.Collect(pool, len(frames), func(i int) uint64 {
//		return conditional.SumImage(frames[i], masks[i], 128, conditional.CompareGreater)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. It is safe for concurrent use, but
// a single batch call blocks until every item of that batch is done.
type Pool struct {
	numWorkers int
	jobs       chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. numWorkers <= 0 means
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan job, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers. Batches submitted after Close run on the
// calling goroutine. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn once per range.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.jobs <- job{run: func() { fn(start, end) }, done: &wg}
	}
	wg.Wait()
}

// Each calls fn(i) for every i in [0, n). Items are handed out one at a
// time, so frames of uneven cost balance across workers.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.jobs <- job{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}

// Collect calls fn(i) for every i in [0, n) on the pool and returns the
// results in index order.
func Collect[T any](p *Pool, n int, fn func(i int) T) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	p.Each(n, func(i int) {
		out[i] = fn(i)
	})
	return out
}
