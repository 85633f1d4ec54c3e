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

package filter

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"dirpx.dev/scanx/apis"
)

// DefaultAnnotations are the built-in component marker directives matched by
// the default include filters. The stereotype markers are plain aliases of
// "component" as far as discovery is concerned.
var DefaultAnnotations = []string{"component", "service", "repository", "controller"}

// Default returns the built-in include filters seeded before user-declared
// ones when use-default-filters is enabled.
func Default() []apis.TypeFilter {
	out := make([]apis.TypeFilter, 0, len(DefaultAnnotations))
	for _, name := range DefaultAnnotations {
		out = append(out, NewAnnotation(name))
	}
	return out
}

// NewAnnotation returns a filter matching candidates carrying the named
// marker directive.
func NewAnnotation(name string) apis.TypeFilter {
	return annotationFilter{name: name}
}

type annotationFilter struct {
	name string
}

// Ensure annotationFilter implements apis.TypeFilter.
var _ apis.TypeFilter = annotationFilter{}

// Match reports whether the candidate carries the directive.
func (f annotationFilter) Match(md apis.Metadata) (bool, error) {
	return md.HasAnnotation(f.name), nil
}

// NewAssignable returns a filter matching candidates assignable to the target
// qualified type name, the target itself included.
func NewAssignable(target string) apis.TypeFilter {
	return assignableFilter{target: target}
}

type assignableFilter struct {
	target string
}

// Ensure assignableFilter implements apis.TypeFilter.
var _ apis.TypeFilter = assignableFilter{}

// Match reports whether the candidate is the target or satisfies it.
func (f assignableFilter) Match(md apis.Metadata) (bool, error) {
	if md.QualifiedName() == f.target {
		return true, nil
	}
	return md.AssignableTo(f.target), nil
}

// NewRegex returns a filter matching candidates whose qualified name matches
// the compiled pattern.
func NewRegex(re *regexp.Regexp) apis.TypeFilter {
	return regexFilter{re: re}
}

type regexFilter struct {
	re *regexp.Regexp
}

// Ensure regexFilter implements apis.TypeFilter.
var _ apis.TypeFilter = regexFilter{}

// Match applies the pattern to the qualified name.
func (f regexFilter) Match(md apis.Metadata) (bool, error) {
	return f.re.MatchString(md.QualifiedName()), nil
}

// NewPattern returns a filter over the type-pattern expression language:
// ".." spans any number of path/name segments, "*" is a within-segment
// wildcard ("example.com/shop..*Service"). The expression is compiled on
// first use; an invalid expression surfaces as a Match error on every
// candidate rather than at construction.
func NewPattern(expression string) apis.TypeFilter {
	return &patternFilter{expr: expression}
}

type patternFilter struct {
	expr string

	once sync.Once
	re   *regexp.Regexp
	err  error
}

// Ensure patternFilter implements apis.TypeFilter.
var _ apis.TypeFilter = (*patternFilter)(nil)

// Match compiles the expression once, then applies it to the qualified name.
func (f *patternFilter) Match(md apis.Metadata) (bool, error) {
	f.once.Do(func() {
		f.re, f.err = compilePattern(f.expr)
	})
	if f.err != nil {
		return false, f.err
	}
	return f.re.MatchString(md.QualifiedName()), nil
}

// compilePattern translates the type-pattern language into an anchored regexp.
func compilePattern(expr string) (*regexp.Regexp, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: empty type pattern", ErrInvalidExpression)
	}
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(expr); {
		switch {
		case strings.HasPrefix(expr[i:], ".."):
			b.WriteString(".*")
			i += 2
		case expr[i] == '*':
			b.WriteString(`[^./]*`)
			i++
		default:
			b.WriteString(regexp.QuoteMeta(expr[i : i+1]))
			i++
		}
	}
	b.WriteString("$")
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, expr, err)
	}
	return re, nil
}
