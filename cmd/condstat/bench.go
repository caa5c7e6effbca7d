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

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-hwy/condstat/hwy/contrib/conditional"
	"github.com/go-hwy/condstat/hwy/contrib/image"
	"github.com/go-hwy/condstat/hwy/contrib/workerpool"
)

type benchResult struct {
	kernel  string
	best    time.Duration
	mean    time.Duration
	checked uint64
}

func newBenchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the selected kernels over a batch of frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			compare, err := opts.compareType()
			if err != nil {
				return err
			}
			ks, err := opts.selectedKernels()
			if err != nil {
				return err
			}
			if err := opts.validate(ks); err != nil {
				return err
			}
			if opts.frames <= 0 || opts.iterations <= 0 {
				return fmt.Errorf("%w: --frames and --iterations must be positive", errInvalidOption)
			}

			pool := workerpool.New(opts.workers)
			defer pool.Close()

			rng := rand.New(rand.NewSource(opts.seed))
			srcs := make([]*image.Image[uint8], opts.frames)
			masks := make([]*image.Image[uint8], opts.frames)
			for i := range opts.frames {
				srcs[i] = opts.newFrame(rng)
				masks[i] = opts.newFrame(rng)
			}

			results := lo.Map(ks, func(k kernel, _ int) benchResult {
				return benchKernel(pool, k, srcs, masks, uint8(opts.threshold), compare, opts.iterations)
			})

			conditional.Logger().Debug("condstat: bench done",
				"frames", opts.frames, "workers", pool.NumWorkers(), "iterations", opts.iterations)

			pixels := float64(opts.width*opts.height) * float64(opts.frames)
			t := newTable(cmd)
			t.SetTitle(fmt.Sprintf("%s, %d frames of %dx%d, %d workers",
				conditional.Target(), opts.frames, opts.width, opts.height, pool.NumWorkers()))
			t.AppendHeader(table.Row{"Kernel", "Best", "Mean", "Mpixel/s", "Checksum"})
			for _, r := range results {
				t.AppendRow(table.Row{r.kernel, r.best, r.mean,
					fmt.Sprintf("%.1f", pixels/r.best.Seconds()/1e6), r.checked})
			}
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignRight},
				{Number: 3, Align: text.AlignRight},
				{Number: 4, Align: text.AlignRight},
			})
			t.Render()
			return nil
		},
	}
	opts.bindFrame(cmd)
	opts.bindBatch(cmd)
	return cmd
}

// benchKernel runs k over every frame once per iteration, one frame per
// pool item. The checksum of the last batch guards against dead-code
// elimination and lets runs be compared.
func benchKernel(pool *workerpool.Pool, k kernel, srcs, masks []*image.Image[uint8],
	value uint8, compare conditional.CompareType, iterations int) benchResult {
	res := benchResult{kernel: k.name, best: time.Duration(1<<63 - 1)}
	var total time.Duration
	for range iterations {
		start := time.Now()
		sums := workerpool.Collect(pool, len(srcs), func(i int) uint64 {
			return k.run(srcs[i], masks[i], value, compare)
		})
		elapsed := max(time.Since(start), time.Nanosecond)
		total += elapsed
		res.best = min(res.best, elapsed)
		res.checked = lo.Sum(sums)
	}
	res.mean = total / time.Duration(iterations)
	return res
}
