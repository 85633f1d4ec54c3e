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

package scanx

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/scanx/apis"
	"dirpx.dev/scanx/builder"
	"dirpx.dev/scanx/config"
	"dirpx.dev/scanx/registry"
	"dirpx.dev/scanx/report"
	"dirpx.dev/scanx/strategy"
	"dirpx.dev/scanx/utils/names"
)

// init initializes the global scanx state.
func init() {
	// Initialize state with default deps and bld.
	s := &state{
		deps: apis.Deps{
			Registry:    registry.New(),
			Reporter:    report.New(),
			Strategies:  strategy.NewRegistry(),
			Environment: config.SystemEnvironment(),
		},
		bld: builder.New(),
	}
	// Store the initial state atomically.
	st.Store(s)
}

// Apply executes one component-scan element against the global collaborators.
// Base packages are placeholder-resolved and tokenized, a scanner is built and
// run, and the result is handed to a registrar for composite registration.
//
// Apply never fails as a whole. Configuration errors abort the element and are
// routed to the global reporter; per-package and per-candidate problems are
// reported from inside the scan and the rest of the element proceeds. Callers
// wanting a verdict inspect the reporter afterwards.
func Apply(spec apis.ScanSpec) {
	s := st.Load()
	ApplyWith(spec, s.deps, s.bld)
}

// ApplyWith is Apply against explicit collaborators, bypassing global state.
func ApplyWith(spec apis.ScanSpec, deps apis.Deps, bld apis.Builder) {
	bases := spec.BasePackages
	if deps.Environment != nil {
		bases = deps.Environment.ResolvePlaceholders(bases)
	}

	sc, err := bld.BuildScanner(spec, deps)
	if err != nil {
		deps.Reporter.Error("configuring scan element", spec.Source, err)
		return
	}

	discovered := sc.Scan(names.Tokenize(bases))
	bld.BuildRegistrar(spec, deps).Register(discovered, spec.AnnotationConfigEnabled())
}

// ApplyYAML decodes one YAML scan element and applies it.
// Decoding errors are reported, not returned.
func ApplyYAML(data []byte) {
	spec, err := config.FromYAML(data)
	if err != nil {
		st.Load().deps.Reporter.Error("decoding scan element", apis.Location{}, err)
		return
	}
	Apply(spec)
}

// RegisterStrategy adds a named strategy factory to the global scanx strategies.
// This is a convenience wrapper around the global state.
func RegisterStrategy(name string, f apis.Factory) error {
	return st.Load().deps.Strategies.Register(name, f)
}

// Deps returns the global scanx collaborators.
func Deps() apis.Deps {
	return st.Load().deps
}

// SetDeps explicitly sets the global scanx collaborators.
//
// Nil fields fall back to the previous state's value, so callers can swap a
// single collaborator without reassembling the rest.
//
// This is a convenience wrapper around the global state.
func SetDeps(deps apis.Deps) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	ndeps := deps
	if ndeps.Source == nil {
		ndeps.Source = old.deps.Source
	}
	if ndeps.Catalog == nil {
		ndeps.Catalog = old.deps.Catalog
	}
	if ndeps.Registry == nil {
		ndeps.Registry = old.deps.Registry
	}
	if ndeps.Sink == nil {
		ndeps.Sink = old.deps.Sink
	}
	if ndeps.Reporter == nil {
		ndeps.Reporter = old.deps.Reporter
	}
	if ndeps.Strategies == nil {
		ndeps.Strategies = old.deps.Strategies
	}
	if ndeps.Environment == nil {
		ndeps.Environment = old.deps.Environment
	}
	if ndeps.Condition == nil {
		ndeps.Condition = old.deps.Condition
	}

	// Store the new state atomically.
	st.Store(
		&state{
			deps: ndeps,
			bld:  old.bld,
		},
	)
}

// SetSource sets the global scanx metadata source.
// This is a convenience wrapper around the global state.
func SetSource(src apis.Source) {
	if src == nil {
		return
	}
	SetDeps(apis.Deps{Source: src})
}

// Registry returns the global scanx definition registry.
func Registry() apis.Registry {
	return st.Load().deps.Registry
}

// Reporter returns the global scanx reporter.
func Reporter() apis.Reporter {
	return st.Load().deps.Reporter
}

// Builder returns the global scanx builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global scanx builder to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			deps: old.deps,
			bld:  b,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global scanx state.
var st atomic.Pointer[state]

// state is the global scanx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// deps holds the global scanx collaborators.
	deps apis.Deps
	// bld is the global scanx builder.
	bld apis.Builder
}
