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
	"runtime"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/go-hwy/condstat/hwy"
	"github.com/go-hwy/condstat/hwy/contrib/conditional"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the dispatch target and size limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTable(cmd)
			t.AppendHeader(table.Row{"Property", "Value"})
			t.AppendRows([]table.Row{
				{"GOARCH", runtime.GOARCH},
				{"Level", hwy.CurrentLevel()},
				{"Target", conditional.Target()},
				{"Vector bytes", hwy.CurrentWidth()},
				{"HWY_NO_SIMD", hwy.NoSimdEnv()},
				{"Min width", conditional.MinWidth()},
				{"Min gradient size", conditional.MinGradientSize()},
			})
			t.Render()
			return nil
		},
	}
}

func newTable(cmd *cobra.Command) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	return t
}
