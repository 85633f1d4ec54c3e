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
	"os"

	"dirpx.dev/scanx/apis"
)

// SystemEnvironment resolves ${name} placeholders against process environment
// variables. Placeholders without a corresponding variable are left verbatim
// so the failure is visible downstream instead of silently scanning "".
func SystemEnvironment() apis.Environment {
	return envFunc(func(s string) string {
		return os.Expand(s, func(name string) string {
			if v, ok := os.LookupEnv(name); ok {
				return v
			}
			return "${" + name + "}"
		})
	})
}

// MapEnvironment resolves ${name} placeholders against a fixed map. Intended
// for tests and embedded configuration.
func MapEnvironment(vars map[string]string) apis.Environment {
	return envFunc(func(s string) string {
		return os.Expand(s, func(name string) string {
			if v, ok := vars[name]; ok {
				return v
			}
			return "${" + name + "}"
		})
	})
}

// envFunc adapts a plain function to apis.Environment.
type envFunc func(string) string

// Ensure envFunc implements apis.Environment.
var _ apis.Environment = (envFunc)(nil)

// ResolvePlaceholders applies the wrapped function.
func (f envFunc) ResolvePlaceholders(s string) string { return f(s) }
