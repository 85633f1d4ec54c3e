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

package names

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiters separates entries in declarative location lists.
const Delimiters = ",; \t\r\n"

// ScopedTargetPrefix marks the renamed target behind a scoped-proxy wrapper.
const ScopedTargetPrefix = "scopedTarget."

// Tokenize splits a delimiter-separated location list into its entries,
// dropping empty tokens. A blank input yields nil.
func Tokenize(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if strings.ContainsRune(Delimiters, r) {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// ShortName returns the bare type name of a qualified identity:
// everything after the last '.' (falling back to the last '/').
func ShortName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	if i := strings.LastIndexByte(qualified, '/'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// Decapitalize lowers the leading rune of a type name to produce the default
// component name. A name whose first two runes are both upper-case is kept
// as-is ("URLParser" stays "URLParser", "UserService" becomes "userService").
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return s
	}
	if second, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(second) {
		return s
	}
	return string(unicode.ToLower(first)) + s[size:]
}

// ScopedTarget synthesizes the registry name of the original definition
// hidden behind a scoped-proxy wrapper.
func ScopedTarget(name string) string {
	return ScopedTargetPrefix + name
}

// IsScopedTarget reports whether name was produced by ScopedTarget.
func IsScopedTarget(name string) bool {
	return strings.HasPrefix(name, ScopedTargetPrefix)
}
