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

package scanner

import (
	"dirpx.dev/scanx/apis"
	"dirpx.dev/scanx/config"
	"dirpx.dev/scanx/filter"
	"dirpx.dev/scanx/strategy"
	"dirpx.dev/scanx/utils/names"
)

// New constructs a Scanner over the given collaborators. Defaults: built-in
// include filters enabled, annotation-driven naming and scoping, no scoped
// proxying, every sub-path pattern.
func New(source apis.Source, registry apis.Registry, reporter apis.Reporter, opts ...Option) *Scanner {
	s := &Scanner{
		source:         source,
		registry:       registry,
		reporter:       reporter,
		pattern:        config.DefaultResourcePattern,
		defaultFilters: true,
		namer:          strategy.NewAnnotationNameGenerator(),
		scopes:         strategy.NewAnnotationScopeResolver(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.includes = filter.NewChain()
	if s.defaultFilters {
		s.includes = s.includes.Append(filter.Default()...)
	}
	s.includes = s.includes.Append(s.userIncludes...)
	s.excludes = filter.NewChain(s.userExcludes...)
	return s
}

// Option configures a Scanner during construction.
type Option func(*Scanner)

// WithResourcePattern overrides the sub-path pattern passed to the source.
func WithResourcePattern(pattern string) Option {
	return func(s *Scanner) {
		if pattern != "" {
			s.pattern = pattern
		}
	}
}

// WithDefaultFilters toggles seeding the built-in include filters.
func WithDefaultFilters(enabled bool) Option {
	return func(s *Scanner) { s.defaultFilters = enabled }
}

// WithIncludeFilters appends include filters after the defaults.
func WithIncludeFilters(filters ...apis.TypeFilter) Option {
	return func(s *Scanner) { s.userIncludes = append(s.userIncludes, filters...) }
}

// WithExcludeFilters appends exclude filters, evaluated before any include.
func WithExcludeFilters(filters ...apis.TypeFilter) Option {
	return func(s *Scanner) { s.userExcludes = append(s.userExcludes, filters...) }
}

// WithNameGenerator replaces the default name generator.
func WithNameGenerator(g apis.NameGenerator) Option {
	return func(s *Scanner) {
		if g != nil {
			s.namer = g
		}
	}
}

// WithScopeResolver replaces the default scope resolver.
func WithScopeResolver(r apis.ScopeResolver) Option {
	return func(s *Scanner) {
		if r != nil {
			s.scopes = r
		}
	}
}

// WithScopedProxyMode installs the element-level scoped-proxy default. It
// reaches only candidates whose scope directive leaves the proxy choice open:
// an explicit proxy parameter on the directive wins, and a candidate without
// a scope directive is never proxied.
func WithScopedProxyMode(mode apis.ProxyMode) Option {
	return func(s *Scanner) {
		if mode != apis.ProxyDefault {
			s.scopes = strategy.NewScopedProxyResolver(mode)
		}
	}
}

// WithCondition installs the conditional-inclusion guard.
func WithCondition(c apis.Condition) Option {
	return func(s *Scanner) { s.condition = c }
}

// Scanner applies default + include + exclude filters over enumerated
// candidates and resolves name and scope metadata for each match. One Scanner
// serves one scan configuration element; it is not meant for concurrent Scan
// calls.
type Scanner struct {
	source   apis.Source
	registry apis.Registry
	reporter apis.Reporter

	pattern        string
	defaultFilters bool
	userIncludes   []apis.TypeFilter
	userExcludes   []apis.TypeFilter
	includes       filter.Chain
	excludes       filter.Chain
	namer          apis.NameGenerator
	scopes         apis.ScopeResolver
	condition      apis.Condition
}

// Ensure Scanner implements apis.Scanner.
var _ apis.Scanner = (*Scanner)(nil)

// Scan enumerates candidates under each base location and returns one
// definition per distinct included candidate. Per-location and per-candidate
// problems go through the reporting channel; the scan itself always runs to
// completion. An empty base list yields an empty result.
func (s *Scanner) Scan(basePackages []string) []*apis.Definition {
	seen := make(map[string]struct{})
	var out []*apis.Definition

	for _, base := range basePackages {
		mds, err := s.source.Enumerate(base, s.pattern)
		if err != nil {
			s.reporter.Warning("scanning base location "+base+" failed", apis.Location{}, err)
			continue
		}
		for _, md := range mds {
			match, err := s.evaluate(md)
			if err != nil {
				s.reporter.Error("evaluating filters for "+md.QualifiedName(), md.Location(), err)
				continue
			}
			if !match {
				continue
			}
			if s.condition != nil && !s.condition.Eligible(md) {
				continue
			}
			// Overlapping base locations may surface the same type twice;
			// collapse to one definition.
			if _, dup := seen[md.QualifiedName()]; dup {
				continue
			}
			seen[md.QualifiedName()] = struct{}{}

			if def, ok := s.define(md); ok {
				out = append(out, def)
			}
		}
	}
	return out
}

// evaluate runs exclude filters first (any match rejects, short-circuit),
// then requires at least one include match.
func (s *Scanner) evaluate(md apis.Metadata) (bool, error) {
	excluded, err := s.excludes.MatchAny(md)
	if err != nil {
		return false, err
	}
	if excluded {
		return false, nil
	}
	return s.includes.MatchAny(md)
}

// define resolves name and scope for an included candidate, applies scoped
// proxying, and records the outcome in the registry. It returns the
// definition entering the result set, or false when the candidate collapsed
// into an existing registration or clashed with one.
func (s *Scanner) define(md apis.Metadata) (*apis.Definition, bool) {
	name := s.namer.GenerateName(md)
	scope := s.scopes.ResolveScope(md)

	def := &apis.Definition{
		QualifiedName: md.QualifiedName(),
		Name:          name,
		Scope:         scope.Name,
		Role:          apis.RoleApplication,
		Metadata:      md,
	}

	// The resolver owns the proxy decision; ProxyDefault and ProxyNo both
	// leave the candidate unwrapped.
	mode := scope.Proxy

	var target *apis.Definition
	if mode == apis.ProxyInterfaces || mode == apis.ProxyTargetClass {
		// The original definition moves behind the proxy under a synthesized
		// name; the proxy takes its place in the result set, keeping a
		// back-reference for introspection.
		target = &apis.Definition{
			QualifiedName: def.QualifiedName,
			Name:          names.ScopedTarget(name),
			Scope:         def.Scope,
			Role:          def.Role,
			Metadata:      md,
		}
		def = &apis.Definition{
			QualifiedName: md.QualifiedName(),
			Name:          name,
			Scope:         scope.Name,
			Role:          apis.RoleApplication,
			Proxied:       true,
			Target:        target,
			Metadata:      md,
		}
	}

	if existing, ok := s.registry.Lookup(name); ok {
		if existing.QualifiedName == def.QualifiedName {
			return nil, false // re-discovery of an already-registered type
		}
		s.reporter.Error("component name "+name+" already registered for "+existing.QualifiedName,
			md.Location(), nil)
		return nil, false
	}
	// Both names are checked before either registration so a clash cannot
	// leave a half-registered proxy pair behind.
	if target != nil {
		if existing, ok := s.registry.Lookup(target.Name); ok && existing.QualifiedName != target.QualifiedName {
			s.reporter.Error("scoped-proxy target name "+target.Name+" already registered for "+existing.QualifiedName,
				md.Location(), nil)
			return nil, false
		}
	}

	if err := s.registry.Register(def.Name, def); err != nil {
		s.reporter.Error("registering component "+name, md.Location(), err)
		return nil, false
	}
	if target != nil {
		if err := s.registry.Register(target.Name, target); err != nil {
			s.reporter.Error("registering scoped-proxy target for "+name, md.Location(), err)
			return nil, false
		}
	}
	return def, true
}
