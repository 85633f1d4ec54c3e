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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/scanx/apis"
)

const (
	// DefaultElement is the tag name assumed for scan configuration elements
	// that do not declare one.
	DefaultElement = "component-scan"
	// DefaultResourcePattern matches every sub-path under a base package.
	DefaultResourcePattern = "..."
)

var (
	// ErrScopeConflict is returned when a scan element declares both a
	// scope-resolver strategy and a scoped-proxy mode. The two are alternative
	// ways of controlling scope handling.
	ErrScopeConflict = errors.New("scanx(config): cannot define both scope-resolver and scoped-proxy on one scan element")
	// ErrInvalidProxyMode is returned for a scoped-proxy token outside
	// no / interfaces / targetClass.
	ErrInvalidProxyMode = errors.New("scanx(config): scoped-proxy only supports 'no', 'interfaces' and 'targetClass'")
)

// ParseProxyMode maps a declarative scoped-proxy token to its mode. The empty
// token means "not declared" and maps to ProxyDefault.
func ParseProxyMode(token string) (apis.ProxyMode, error) {
	switch token {
	case "":
		return apis.ProxyDefault, nil
	case "no":
		return apis.ProxyNo, nil
	case "interfaces":
		return apis.ProxyInterfaces, nil
	case "targetClass":
		return apis.ProxyTargetClass, nil
	default:
		return apis.ProxyDefault, fmt.Errorf("%w: got %q", ErrInvalidProxyMode, token)
	}
}

// Validate applies the element-level consistency rules that must hold before
// any scanning occurs.
func Validate(spec apis.ScanSpec) error {
	if spec.ScopeResolver != "" && spec.ScopedProxy != "" {
		return ErrScopeConflict
	}
	if _, err := ParseProxyMode(spec.ScopedProxy); err != nil {
		return err
	}
	return nil
}

// FromYAML decodes one scan configuration element. Unknown keys are rejected
// so attribute typos surface instead of silently scanning everything.
func FromYAML(data []byte) (apis.ScanSpec, error) {
	var spec apis.ScanSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && err != io.EOF {
		return apis.ScanSpec{}, fmt.Errorf("scanx(config): decoding scan element: %w", err)
	}
	if spec.Element == "" {
		spec.Element = DefaultElement
	}
	return spec, nil
}

// New constructs a ScanSpec from the given options.
func New(opts ...Option) apis.ScanSpec {
	spec := apis.ScanSpec{Element: DefaultElement}
	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}

// Option is a functional option that mutates a ScanSpec during construction.
type Option func(*apis.ScanSpec)

// WithBasePackages sets the delimiter-separated scan roots.
func WithBasePackages(pkgs string) Option {
	return func(s *apis.ScanSpec) { s.BasePackages = pkgs }
}

// WithResourcePattern overrides the sub-path pattern.
func WithResourcePattern(pattern string) Option {
	return func(s *apis.ScanSpec) { s.ResourcePattern = pattern }
}

// WithDefaultFilters toggles the built-in include filters.
func WithDefaultFilters(enabled bool) Option {
	return func(s *apis.ScanSpec) { s.UseDefaultFilters = &enabled }
}

// WithAnnotationConfig toggles auxiliary infrastructure registration.
func WithAnnotationConfig(enabled bool) Option {
	return func(s *apis.ScanSpec) { s.AnnotationConfig = &enabled }
}

// WithNameGenerator selects a registered NameGenerator strategy by name.
func WithNameGenerator(name string) Option {
	return func(s *apis.ScanSpec) { s.NameGenerator = name }
}

// WithScopeResolver selects a registered ScopeResolver strategy by name.
func WithScopeResolver(name string) Option {
	return func(s *apis.ScanSpec) { s.ScopeResolver = name }
}

// WithScopedProxy sets the scoped-proxy token.
func WithScopedProxy(token string) Option {
	return func(s *apis.ScanSpec) { s.ScopedProxy = token }
}

// WithIncludeFilter appends one include filter declaration.
func WithIncludeFilter(kind, expression string) Option {
	return func(s *apis.ScanSpec) {
		s.IncludeFilters = append(s.IncludeFilters, apis.FilterSpec{Kind: kind, Expression: expression})
	}
}

// WithExcludeFilter appends one exclude filter declaration.
func WithExcludeFilter(kind, expression string) Option {
	return func(s *apis.ScanSpec) {
		s.ExcludeFilters = append(s.ExcludeFilters, apis.FilterSpec{Kind: kind, Expression: expression})
	}
}

// WithElement sets the originating element tag name and location.
func WithElement(tag string, loc apis.Location) Option {
	return func(s *apis.ScanSpec) {
		s.Element = tag
		s.Source = loc
	}
}
