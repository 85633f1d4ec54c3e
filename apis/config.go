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

package apis

// FilterSpec declares one include or exclude filter on a scan element.
// It is transient: consumed immediately to build a TypeFilter.
type FilterSpec struct {
	// Kind is one of "annotation", "assignable", "aspectj", "regex", "custom".
	Kind string `yaml:"type"`
	// Expression is the kind-specific expression. Placeholders are resolved
	// against the environment before the filter is built.
	Expression string `yaml:"expression"`
}

// ScanSpec is one declarative component-scan configuration element. It is
// built once per apply invocation, consumed, then discarded.
//
// Boolean attributes defaulting to true are pointers so "absent" and "false"
// stay distinguishable after decoding.
type ScanSpec struct {
	// BasePackages is the delimiter-separated list of scan roots
	// (any of ",;" plus whitespace separates entries). Placeholders are
	// resolved before tokenizing.
	BasePackages string `yaml:"base-package"`
	// ResourcePattern overrides the sub-path pattern matched under each base
	// package. Empty means "match everything".
	ResourcePattern string `yaml:"resource-pattern"`
	// UseDefaultFilters enables the built-in annotation include filters.
	// Default true.
	UseDefaultFilters *bool `yaml:"use-default-filters"`
	// AnnotationConfig controls registration of the auxiliary infrastructure
	// definitions. Default true.
	AnnotationConfig *bool `yaml:"annotation-config"`
	// NameGenerator names a registered NameGenerator strategy.
	NameGenerator string `yaml:"name-generator"`
	// ScopeResolver names a registered ScopeResolver strategy.
	// Mutually exclusive with ScopedProxy.
	ScopeResolver string `yaml:"scope-resolver"`
	// ScopedProxy is one of the literal tokens "no", "interfaces",
	// "targetClass". Mutually exclusive with ScopeResolver.
	ScopedProxy string `yaml:"scoped-proxy"`
	// IncludeFilters are evaluated after the default filters, in order.
	IncludeFilters []FilterSpec `yaml:"include-filter"`
	// ExcludeFilters are evaluated first, in order, and short-circuit.
	ExcludeFilters []FilterSpec `yaml:"exclude-filter"`

	// Element is the originating configuration element's tag name, used to
	// key the composite registration unit. Empty means the default tag.
	Element string `yaml:"-"`
	// Source is the element's location in the declaring document.
	Source Location `yaml:"-"`
}

// DefaultFiltersEnabled reports the effective use-default-filters value.
func (s ScanSpec) DefaultFiltersEnabled() bool {
	return s.UseDefaultFilters == nil || *s.UseDefaultFilters
}

// AnnotationConfigEnabled reports the effective annotation-config value.
func (s ScanSpec) AnnotationConfigEnabled() bool {
	return s.AnnotationConfig == nil || *s.AnnotationConfig
}
