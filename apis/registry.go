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

// Role distinguishes user components from support machinery registered on
// their behalf.
type Role int

const (
	// RoleApplication marks a component discovered by a scan.
	RoleApplication Role = iota
	// RoleInfrastructure marks an auxiliary definition the registrar ensures
	// is present (directive post-processors and the like).
	RoleInfrastructure
)

// Definition identifies one discovered class-like unit. It is immutable once
// built; the scanner owns construction, everything downstream only reads.
type Definition struct {
	// QualifiedName is the full type identity, "pkg/path.TypeName".
	QualifiedName string
	// Name is the resolved component name the definition registers under.
	Name string
	// Scope is the resolved scope name.
	Scope string
	// Role classifies the definition.
	Role Role
	// Proxied marks scoped-proxy wrapper definitions.
	Proxied bool
	// Target links a proxy definition back to the definition it wraps.
	// Nil for everything but proxies.
	Target *Definition
	// Metadata is the candidate metadata the definition was derived from.
	// Nil for infrastructure definitions.
	Metadata Metadata
}

// Registry records component definitions by name. The scan/register sequence
// assumes single-writer access during bootstrap; implementations keep reads
// cheap so diagnostics can run concurrently.
type Registry interface {
	// Register associates name with def. Re-registering the same
	// (name, qualified name) pair is idempotent; a different type under an
	// existing name is a conflict.
	Register(name string, def *Definition) error
	// Lookup returns the definition registered under name, if any.
	Lookup(name string) (*Definition, bool)
	// Contains reports whether name is registered.
	Contains(name string) bool
	// Definitions returns a snapshot for diagnostics (order is unspecified).
	Definitions() []Entry
	// Count returns the number of registered definitions.
	Count() int
	// Reset clears all registered definitions.
	Reset()
}

// Entry is a single (name, definition) association in a Registry snapshot.
type Entry struct {
	// Name is the registered component name.
	Name string
	// Def is the associated definition.
	Def *Definition
}
