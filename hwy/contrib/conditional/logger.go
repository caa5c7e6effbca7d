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

package conditional

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/go-hwy/condstat/hwy"
)

// nopHandler discards every record. Enabled returns false so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by conditional. By default the
// package is silent. Pass nil to restore that.
//
// On installation the logger receives a Debug record naming the bound
// target, and a Warn record when the per-pixel kernels are bound (HWY_NO_SIMD
// at startup, or no vector target).
// The kernels themselves never log.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)

	l.Debug("conditional: dispatch target",
		slog.String("target", Target()),
		slog.Int("lanes", hwy.ScalableByteTag().Lanes()),
		slog.String("level", hwy.CurrentLevel().String()))
	if scalarTarget {
		l.Warn("conditional: using per-pixel kernels",
			slog.Bool("HWY_NO_SIMD", hwy.NoSimdEnv()))
	}
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
