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

// Command condstat computes masked image statistics on synthetic frames.
//
// Usage:
//
//	condstat info
//	condstat run --width 1920 --height 1080 --compare ge --threshold 128
//	condstat verify --pattern checker
//	condstat bench --frames 64 --workers 8 --iterations 10
//
// Set HWY_NO_SIMD=1 to force the per-pixel kernels.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-hwy/condstat/hwy/contrib/conditional"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()
	root := &cobra.Command{
		Use:           "condstat",
		Short:         "Masked statistics over 8-bit images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				conditional.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return nil
		},
	}
	opts.bindGlobal(root)

	root.AddCommand(
		newInfoCmd(),
		newRunCmd(opts),
		newVerifyCmd(opts),
		newBenchCmd(opts),
	)
	return root
}
