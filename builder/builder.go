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

package builder

import (
	"errors"
	"fmt"

	"dirpx.dev/scanx/apis"
	"dirpx.dev/scanx/config"
	"dirpx.dev/scanx/filter"
	"dirpx.dev/scanx/registrar"
	"dirpx.dev/scanx/scanner"
	"dirpx.dev/scanx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// Ensure builder implements apis.Builder.
var _ apis.Builder = (*builder)(nil)

// BuildScanner configures a Scanner for one scan element. Configuration
// conflicts, invalid scoped-proxy tokens and strategy loading failures are
// returned and abort the element before any scanning; individual filter
// construction problems are routed to the reporting channel instead.
func (b *builder) BuildScanner(spec apis.ScanSpec, deps apis.Deps) (apis.Scanner, error) {
	if err := config.Validate(spec); err != nil {
		return nil, err
	}
	mode, err := config.ParseProxyMode(spec.ScopedProxy)
	if err != nil {
		return nil, err
	}

	opts := []scanner.Option{
		scanner.WithDefaultFilters(spec.DefaultFiltersEnabled()),
	}
	if spec.ResourcePattern != "" {
		opts = append(opts, scanner.WithResourcePattern(spec.ResourcePattern))
	}
	if mode != apis.ProxyDefault {
		opts = append(opts, scanner.WithScopedProxyMode(mode))
	}
	if deps.Condition != nil {
		opts = append(opts, scanner.WithCondition(deps.Condition))
	}

	if spec.NameGenerator != "" {
		inst, err := instantiate(deps.Strategies, spec.NameGenerator, apis.CapNameGenerator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scanner.WithNameGenerator(inst.(apis.NameGenerator)))
	}
	if spec.ScopeResolver != "" {
		inst, err := instantiate(deps.Strategies, spec.ScopeResolver, apis.CapScopeResolver)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scanner.WithScopeResolver(inst.(apis.ScopeResolver)))
	}

	if includes := b.buildFilters(spec.IncludeFilters, spec, deps); len(includes) > 0 {
		opts = append(opts, scanner.WithIncludeFilters(includes...))
	}
	if excludes := b.buildFilters(spec.ExcludeFilters, spec, deps); len(excludes) > 0 {
		opts = append(opts, scanner.WithExcludeFilters(excludes...))
	}

	return scanner.New(deps.Source, deps.Registry, deps.Reporter, opts...), nil
}

// BuildRegistrar configures the Registrar emitting for spec's element.
func (b *builder) BuildRegistrar(spec apis.ScanSpec, deps apis.Deps) apis.Registrar {
	return registrar.New(deps.Registry, deps.Sink, deps.Reporter,
		registrar.WithElement(spec.Element, spec.Source))
}

// buildFilters constructs the declared filters in order. An expression
// referencing an unknown construct is warned about and skipped; every other
// construction failure is reported as an error and likewise skipped, leaving
// escalation to the reporter's policy.
func (b *builder) buildFilters(specs []apis.FilterSpec, spec apis.ScanSpec, deps apis.Deps) []apis.TypeFilter {
	var out []apis.TypeFilter
	for _, fs := range specs {
		expr := fs.Expression
		if deps.Environment != nil {
			expr = deps.Environment.ResolvePlaceholders(expr)
		}
		f, err := filter.Build(fs.Kind, expr, deps.Catalog, deps.Strategies)
		if err != nil {
			if errors.Is(err, filter.ErrUnknownType) {
				deps.Reporter.Warning("ignoring non-present type filter", spec.Source, err)
				continue
			}
			deps.Reporter.Error("building "+fs.Kind+" type filter", spec.Source, err)
			continue
		}
		out = append(out, f)
	}
	return out
}

// instantiate resolves a user-declared strategy, treating a missing registry
// the same as an unknown strategy name.
func instantiate(strategies apis.Strategies, name string, capability apis.Capability) (any, error) {
	if strategies == nil {
		return nil, fmt.Errorf("%w: %q for capability %s (no strategy registry configured)",
			strategy.ErrUnknownStrategy, name, capability)
	}
	return strategies.Instantiate(name, capability)
}
