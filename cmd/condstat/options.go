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
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-hwy/condstat/hwy/contrib/conditional"
	"github.com/go-hwy/condstat/hwy/contrib/image"
)

var errInvalidOption = errors.New("invalid option")

// options holds the flags shared by the subcommands.
type options struct {
	width      int
	height     int
	stride     int
	threshold  int
	compare    string
	kernel     string
	seed       int64
	pattern    string
	frames     int
	workers    int
	iterations int
	verbose    bool
}

func defaultOptions() *options {
	return &options{
		width:      640,
		height:     480,
		threshold:  128,
		compare:    "ge",
		kernel:     "all",
		seed:       1,
		pattern:    "random",
		frames:     16,
		iterations: 5,
	}
}

func (o *options) bindGlobal(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log dispatch decisions to stderr")
}

func (o *options) bindFrame(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&o.width, "width", o.width, "Frame width in pixels")
	f.IntVar(&o.height, "height", o.height, "Frame height in pixels")
	f.IntVar(&o.stride, "stride", o.stride, "Row stride in bytes (0 for aligned rows)")
	f.IntVar(&o.threshold, "threshold", o.threshold, "Mask threshold in [0, 255]")
	f.StringVar(&o.compare, "compare", o.compare, "Comparison: eq ne gt ge lt le, or an operator")
	f.StringVar(&o.kernel, "kernel", o.kernel, "Kernel: "+strings.Join(kernelNames(), " ")+" or all")
	f.Int64Var(&o.seed, "seed", o.seed, "Random seed for frame contents")
	f.StringVar(&o.pattern, "pattern", o.pattern, "Frame pattern: "+strings.Join(patterns, " "))
}

func (o *options) bindBatch(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&o.frames, "frames", o.frames, "Number of frames per batch")
	f.IntVar(&o.workers, "workers", o.workers, "Worker goroutines (0 for GOMAXPROCS)")
	f.IntVar(&o.iterations, "iterations", o.iterations, "Timed batches")
}

// validate checks the frame flags against the kernels they select, so the
// kernels never see a shape they would panic on.
func (o *options) validate(kernels []kernel) error {
	if o.threshold < 0 || o.threshold > 255 {
		return fmt.Errorf("%w: --threshold %d outside [0, 255]", errInvalidOption, o.threshold)
	}
	if o.height < 0 {
		return fmt.Errorf("%w: --height %d is negative", errInvalidOption, o.height)
	}
	if o.stride != 0 && o.stride < o.width {
		return fmt.Errorf("%w: --stride %d smaller than --width %d", errInvalidOption, o.stride, o.width)
	}
	if !lo.Contains(patterns, o.pattern) {
		return fmt.Errorf("%w: unknown --pattern %q", errInvalidOption, o.pattern)
	}
	for _, k := range kernels {
		if o.width < k.minWidth() || o.height < k.minHeight() {
			return fmt.Errorf("%w: %s needs at least %dx%d, got %dx%d",
				errInvalidOption, k.name, k.minWidth(), k.minHeight(), o.width, o.height)
		}
		if k.maxWidth != nil && o.width > k.maxWidth() {
			return fmt.Errorf("%w: %s accepts at most --width %d, got %d",
				errInvalidOption, k.name, k.maxWidth(), o.width)
		}
	}
	return nil
}

func (o *options) compareType() (conditional.CompareType, error) {
	c, err := conditional.ParseCompareType(o.compare)
	if err != nil {
		return 0, fmt.Errorf("--compare: %w", err)
	}
	return c, nil
}

func (o *options) selectedKernels() ([]kernel, error) {
	if o.kernel == "all" {
		return kernels, nil
	}
	k, ok := lo.Find(kernels, func(k kernel) bool { return strings.EqualFold(k.name, o.kernel) })
	if !ok {
		return nil, fmt.Errorf("%w: unknown --kernel %q", errInvalidOption, o.kernel)
	}
	return []kernel{k}, nil
}

var patterns = []string{"random", "ramp", "flat", "checker"}

// newFrame builds one synthetic frame. A zero stride gives an aligned
// image, any other stride wraps a plain buffer.
func (o *options) newFrame(rng *rand.Rand) *image.Image[uint8] {
	var img *image.Image[uint8]
	if o.stride == 0 {
		img = image.NewImage[uint8](o.width, o.height)
	} else {
		buf := make([]byte, o.stride*o.height)
		img = image.FromBuffer(buf, o.width, o.height, o.stride)
	}

	for y := range o.height {
		row := img.RowSlice(y)
		for x := range row {
			switch o.pattern {
			case "ramp":
				row[x] = uint8(x + y)
			case "flat":
				row[x] = uint8(o.threshold)
			case "checker":
				row[x] = uint8(lo.Ternary((x/8+y/8)%2 == 0, 32, 224))
			default:
				row[x] = uint8(rng.Intn(256))
			}
		}
	}
	return img
}
