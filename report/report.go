/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"dirpx.dev/scanx/apis"
)

// New constructs a Reporter. Without options it logs through a quiet logrus
// logger and only accumulates.
func New(opts ...Option) *Reporter {
	r := &Reporter{log: discardLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option configures a Reporter during construction.
type Option func(*Reporter)

// WithLogger routes warnings and errors through the given logrus logger.
func WithLogger(log *logrus.Logger) Option {
	return func(r *Reporter) {
		if log != nil {
			r.log = log
		}
	}
}

// WithEscalation promotes warnings to errors, so Err() reflects them too.
// This is the strict policy knob for callers that will not tolerate skipped
// filters or unreadable locations.
func WithEscalation() Option {
	return func(r *Reporter) { r.escalate = true }
}

// Reporter is the default warning/error channel: structured logging for
// humans, a go-multierror aggregate for callers. It is safe for concurrent
// use, though bootstrap normally reports from a single goroutine.
type Reporter struct {
	log      *logrus.Logger
	escalate bool

	mu       sync.Mutex
	warnings int
	agg      *multierror.Error
}

// Ensure Reporter implements apis.Reporter.
var _ apis.Reporter = (*Reporter)(nil)

// Warning records a recoverable problem.
func (r *Reporter) Warning(msg string, loc apis.Location, cause error) {
	r.fields(loc, cause).Warn(msg)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings++
	if r.escalate {
		r.agg = multierror.Append(r.agg, wrap(msg, loc, cause))
	}
}

// Error records a problem that stopped part of the configuration.
func (r *Reporter) Error(msg string, loc apis.Location, cause error) {
	r.fields(loc, cause).Error(msg)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.agg = multierror.Append(r.agg, wrap(msg, loc, cause))
}

// Err returns the aggregate of reported errors, or nil after a clean run.
func (r *Reporter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.agg.ErrorOrNil()
}

// Warnings returns how many warnings were reported.
func (r *Reporter) Warnings() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.warnings
}

// fields builds the structured log entry for one report.
func (r *Reporter) fields(loc apis.Location, cause error) *logrus.Entry {
	entry := logrus.NewEntry(r.log)
	if s := loc.String(); s != "" {
		entry = entry.WithField("source", s)
	}
	if cause != nil {
		entry = entry.WithError(cause)
	}
	return entry
}

// wrap folds message, location and cause into one error value, keeping the
// cause unwrappable for errors.Is checks in tests and callers.
func wrap(msg string, loc apis.Location, cause error) error {
	if s := loc.String(); s != "" {
		msg = msg + " (" + s + ")"
	}
	if cause == nil {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("%s: %w", msg, cause)
}

// discardLogger keeps the zero-option Reporter silent.
func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
