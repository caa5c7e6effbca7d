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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the selected statistics on one synthetic frame",
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

			rng := rand.New(rand.NewSource(opts.seed))
			src := opts.newFrame(rng)
			mask := opts.newFrame(rng)
			value := uint8(opts.threshold)

			t := newTable(cmd)
			t.AppendHeader(table.Row{"Kernel", "Mask", "Result"})
			for _, k := range ks {
				t.AppendRow(table.Row{k.name, fmt.Sprintf("mask %s %d", compare.Symbol(), opts.threshold), k.run(src, mask, value, compare)})
			}
			t.Render()
			return nil
		},
	}
	opts.bindFrame(cmd)
	return cmd
}
