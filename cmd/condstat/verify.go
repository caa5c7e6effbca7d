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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-hwy/condstat/hwy/contrib/conditional"
)

var errMismatch = errors.New("dispatched and per-pixel results differ")

func newVerifyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the dispatched kernels against the per-pixel kernels",
		Long: "verify runs every selected kernel for every comparison kind on the " +
			"thresholds 0, --threshold and 255, and fails if any dispatched result " +
			"differs from the per-pixel one.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := opts.selectedKernels()
			if err != nil {
				return err
			}
			if err := opts.validate(ks); err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(opts.seed))
			src := opts.newFrame(rng)
			mask := opts.newFrame(rng)
			values := lo.Uniq([]uint8{0, uint8(opts.threshold), 255})

			t := newTable(cmd)
			t.AppendHeader(table.Row{"Kernel", "Compare", "Threshold", "Dispatched", "Per-pixel", "Status"})
			var failed []string
			for _, k := range ks {
				for _, c := range conditional.CompareTypes() {
					for _, v := range values {
						got, want := k.run(src, mask, v, c), k.scalar(src, mask, v, c)
						status := lo.Ternary(got == want, "ok", "MISMATCH")
						if got != want {
							failed = append(failed, fmt.Sprintf("%s %s %d", k.name, c.Symbol(), v))
						}
						t.AppendRow(table.Row{k.name, c, v, got, want, status})
					}
				}
			}
			t.Render()

			if len(failed) > 0 {
				return fmt.Errorf("%w: %d cases (first: %s)", errMismatch, len(failed), failed[0])
			}
			return nil
		},
	}
	opts.bindFrame(cmd)
	return cmd
}
