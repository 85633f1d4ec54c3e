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
	"errors"
	"fmt"
	"regexp"

	"dirpx.dev/scanx/apis"
	"dirpx.dev/scanx/strategy"
)

// Filter kinds accepted in declarative include-filter/exclude-filter entries.
const (
	KindAnnotation = "annotation"
	KindAssignable = "assignable"
	KindAspectJ    = "aspectj"
	KindRegex      = "regex"
	KindCustom     = "custom"
)

var (
	// ErrUnsupportedKind is returned for a filter kind outside the closed set.
	ErrUnsupportedKind = errors.New("scanx(filter): unsupported filter kind")
	// ErrUnknownType is returned when an expression references a type,
	// directive or strategy that cannot be located. Callers may warn and skip
	// the filter rather than abort the element.
	ErrUnknownType = errors.New("scanx(filter): filter expression references an unknown construct")
	// ErrInvalidExpression is returned when an expression cannot be compiled
	// into a matcher.
	ErrInvalidExpression = errors.New("scanx(filter): invalid filter expression")
)

// Build constructs a TypeFilter from a filter-kind tag and an expression.
// Placeholder substitution is the caller's responsibility and happens before
// Build. cat, when non-nil, validates annotation/assignable expressions the
// way a class loader would; strategies resolves custom filter references.
func Build(kind, expression string, cat apis.Catalog, strategies apis.Strategies) (apis.TypeFilter, error) {
	switch kind {
	case KindAnnotation:
		if cat != nil && !cat.HasAnnotation(expression) {
			return nil, fmt.Errorf("%w: annotation %q", ErrUnknownType, expression)
		}
		return NewAnnotation(expression), nil

	case KindAssignable:
		if cat != nil && !cat.HasType(expression) {
			return nil, fmt.Errorf("%w: type %q", ErrUnknownType, expression)
		}
		return NewAssignable(expression), nil

	case KindAspectJ:
		// Compiled lazily; an invalid expression surfaces at evaluation time.
		return NewPattern(expression), nil

	case KindRegex:
		re, err := regexp.Compile(expression)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, expression, err)
		}
		return NewRegex(re), nil

	case KindCustom:
		if strategies == nil {
			return nil, fmt.Errorf("%w: custom filter %q (no strategy registry configured)", ErrUnknownType, expression)
		}
		inst, err := strategies.Instantiate(expression, apis.CapTypeFilter)
		if err != nil {
			if errors.Is(err, strategy.ErrUnknownStrategy) {
				return nil, fmt.Errorf("%w: custom filter %q", ErrUnknownType, expression)
			}
			return nil, err
		}
		return inst.(apis.TypeFilter), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
}
