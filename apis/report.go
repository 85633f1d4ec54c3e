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

import "strconv"

// Location points at a position in a source document or file. The zero value
// means "unknown".
type Location struct {
	// File is the path of the declaring document.
	File string
	// Line is the 1-based line number, 0 when unknown.
	Line int
}

// String renders "file:line", "file", or "" depending on what is known.
func (l Location) String() string {
	if l.File == "" {
		return ""
	}
	if l.Line <= 0 {
		return l.File
	}
	return l.File + ":" + strconv.Itoa(l.Line)
}

// Reporter is the warning/error channel scan configuration problems are
// routed through. The top-level apply operation has no return value to signal
// partial failure: success is "best effort completed, problems reported
// here", so callers inspect Err(), not a return value.
type Reporter interface {
	// Warning records a recoverable problem.
	Warning(msg string, loc Location, cause error)
	// Error records a problem that stopped part of the configuration.
	Error(msg string, loc Location, cause error)
	// Err returns the aggregate of everything passed to Error, or nil after
	// a clean run.
	Err() error
}
