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

// Capability names the contract a user-pluggable strategy must satisfy.
type Capability string

const (
	// CapNameGenerator requires the instance to implement NameGenerator.
	CapNameGenerator Capability = "scanx.NameGenerator"
	// CapScopeResolver requires the instance to implement ScopeResolver.
	CapScopeResolver Capability = "scanx.ScopeResolver"
	// CapTypeFilter requires the instance to implement TypeFilter.
	CapTypeFilter Capability = "scanx.TypeFilter"
)

// Factory constructs one strategy instance. It plays the role of a
// zero-argument constructor; a factory that panics or returns nil is treated
// as an instantiation failure.
type Factory func() any

// Strategies is a registry of named strategy factories. Declarative
// configuration references strategies by name; Instantiate resolves the name,
// constructs an instance, and validates it against the required capability.
// This replaces dynamic class loading while preserving pluggability.
type Strategies interface {
	// Register associates name with a factory. Re-registering a name is an
	// error; names are a flat, process-wide vocabulary.
	Register(name string, f Factory) error
	// Instantiate builds the strategy registered under name and verifies it
	// satisfies the requested capability. Errors carry both the strategy name
	// and the capability name to aid debugging.
	Instantiate(name string, capability Capability) (any, error)
}
