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

import "dirpx.dev/scanx/apis"

// NewChain builds an ordered, immutable filter chain. Nil filters are
// dropped to avoid nil-interface panics on call sites.
func NewChain(filters ...apis.TypeFilter) Chain {
	out := make([]apis.TypeFilter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			out = append(out, f)
		}
	}
	return Chain{filters: out}
}

// Chain evaluates an ordered list of filters with first-match-wins
// semantics. It backs both the exclude list (any match rejects the
// candidate) and the include list (at least one match is required).
type Chain struct {
	filters []apis.TypeFilter
}

// Append returns a chain extended with more filters.
func (c Chain) Append(filters ...apis.TypeFilter) Chain {
	merged := make([]apis.TypeFilter, 0, len(c.filters)+len(filters))
	merged = append(merged, c.filters...)
	for _, f := range filters {
		if f != nil {
			merged = append(merged, f)
		}
	}
	return Chain{filters: merged}
}

// Len returns the number of filters in the chain.
func (c Chain) Len() int { return len(c.filters) }

// MatchAny runs filters in order and reports whether one matched.
// Remaining filters are skipped after the first match. A filter error stops
// evaluation and is returned as-is.
func (c Chain) MatchAny(md apis.Metadata) (bool, error) {
	for _, f := range c.filters {
		ok, err := f.Match(md)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
