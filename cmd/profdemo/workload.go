package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Lolitron-0/profiler"
)

// runWorkload fans cfg.Tasks out over cfg.Workers goroutines, each task
// wrapped in its own profiler scope so the trace shows one lane per worker
// goroutine.
func runWorkload(ctx context.Context, p *profiler.Profiler, cfg workloadConfig) error {
	scope := p.StartScope("workload")
	defer scope.Stop()

	if err := p.Timed("plan", func() {
		// Stand-in for real setup work.
		time.Sleep(cfg.MinTask.Duration)
	}); err != nil {
		return err
	}

	tasks := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for id := range tasks {
				if err := runTask(p, id, cfg); err != nil {
					return err
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(tasks)
		for id := 0; id < cfg.Tasks; id++ {
			select {
			case tasks <- id:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return scope.Stop()
}

func runTask(p *profiler.Profiler, id int, cfg workloadConfig) error {
	scope := p.StartScope(fmt.Sprintf("task-%03d", id))
	defer scope.Stop()

	busy := cfg.MinTask.Duration
	if spread := cfg.MaxTask.Duration - cfg.MinTask.Duration; spread > 0 {
		busy += time.Duration(rand.Int63n(int64(spread)))
	}
	time.Sleep(busy)

	return scope.Stop()
}
