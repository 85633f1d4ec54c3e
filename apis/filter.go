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

// TypeFilter is a predicate over candidate metadata, used to decide whether a
// discovered type becomes a managed component.
//
// # Contract
//
//   - Match MUST be free of side effects; a filter is shared across every
//     candidate of a scan and MAY be consulted concurrently.
//   - Match MUST be deterministic for a given Metadata.
//   - A non-nil error is reserved for filters whose expression is compiled
//     lazily and turned out to be invalid; callers route it to the reporting
//     channel rather than treating the candidate as matched.
type TypeFilter interface {
	Match(md Metadata) (bool, error)
}
