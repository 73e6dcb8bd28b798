package driver

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// PoolStats provides statistics about pool performance
type PoolStats struct {
	TotalJobs     int64
	ActiveJobs    int32
	CompletedJobs int64
	FailedJobs    int64 // unreadable files and files with diagnostics
	AverageTime   time.Duration
	TotalTime     time.Duration
	WorkerCount   int
}

// parseJob is one file handed to a worker. index is its slot in the
// caller's path list.
type parseJob struct {
	index int
	path  string
}

// Pool parses files on a fixed number of worker goroutines.
type Pool struct {
	numWorkers int
	parser     ParserConfig

	activeJobs int32 // atomic

	stats      PoolStats
	statsMutex sync.RWMutex
}

// NewPool creates a pool sized and configured from cfg.
func NewPool(cfg *Config) *Pool {
	return &Pool{
		numWorkers: cfg.PoolSize(),
		parser:     cfg.Parser,
		stats:      PoolStats{WorkerCount: cfg.PoolSize()},
	}
}

// Run parses every path and returns the results in the order of paths.
// When ctx is cancelled the files not yet started get Err set to ctx.Err().
func (p *Pool) Run(ctx context.Context, paths []string) []*Result {
	results := make([]*Result, len(paths))
	if len(paths) == 0 {
		return results
	}

	workers := p.numWorkers
	if workers > len(paths) {
		workers = len(paths)
	}

	jobQueue := make(chan parseJob)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.worker(ctx, i+1, jobQueue, results, &wg)
	}

feed:
	for i, path := range paths {
		select {
		case jobQueue <- parseJob{index: i, path: path}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobQueue)
	wg.Wait()

	for i, r := range results {
		if r == nil {
			results[i] = &Result{Path: paths[i], Err: ctx.Err()}
		}
	}
	return results
}

// worker is the main loop for a worker goroutine. Each result is written
// to its own slot, so no locking is needed on results.
func (p *Pool) worker(ctx context.Context, id int, jobs <-chan parseJob, results []*Result, wg *sync.WaitGroup) {
	defer wg.Done()
	slog.Debug("parse worker started", "worker", id)
	defer slog.Debug("parse worker stopped", "worker", id)

	for {
		select {
		case job, ok := <-jobs:
			if !ok {
				return
			}
			results[job.index] = p.processJob(ctx, id, job)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Pool) processJob(ctx context.Context, id int, job parseJob) *Result {
	atomic.AddInt32(&p.activeJobs, 1)
	defer atomic.AddInt32(&p.activeJobs, -1)

	startTime := time.Now()
	var result *Result
	if err := ctx.Err(); err != nil {
		result = &Result{Path: job.path, Err: err}
	} else if r, err := ParseFile(job.path, p.parser); err != nil {
		result = &Result{Path: job.path, Err: err}
	} else {
		result = r
	}
	result.WorkerID = id
	if result.Duration == 0 {
		result.Duration = time.Since(startTime)
	}

	p.updateStats(result)
	return result
}

func (p *Pool) updateStats(result *Result) {
	p.statsMutex.Lock()
	defer p.statsMutex.Unlock()

	p.stats.TotalJobs++
	if result.Failed() {
		p.stats.FailedJobs++
	} else {
		p.stats.CompletedJobs++
	}
	p.stats.TotalTime += result.Duration
	p.stats.AverageTime = p.stats.TotalTime / time.Duration(p.stats.TotalJobs)
}

// Stats returns a snapshot of the pool statistics.
func (p *Pool) Stats() PoolStats {
	p.statsMutex.RLock()
	defer p.statsMutex.RUnlock()

	stats := p.stats
	stats.ActiveJobs = atomic.LoadInt32(&p.activeJobs)
	return stats
}

// ParseAll parses paths on a pool built from cfg and returns the results
// in input order.
func ParseAll(ctx context.Context, paths []string, cfg *Config) []*Result {
	pool := NewPool(cfg)
	results := pool.Run(ctx, paths)
	stats := pool.Stats()
	slog.Info("parsed files",
		"files", stats.TotalJobs,
		"failed", stats.FailedJobs,
		"workers", stats.WorkerCount,
		"total", stats.TotalTime,
		"average", stats.AverageTime)
	return results
}
