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

package registry

import (
	"errors"
	"sync"

	"dirpx.dev/scanx/apis"
)

var (
	// ErrEmptyName is returned when an empty component name is provided.
	ErrEmptyName = errors.New("scanx(registry): empty component name provided")
	// ErrNilDefinition is returned when a nil definition is provided.
	ErrNilDefinition = errors.New("scanx(registry): nil definition provided")
	// ErrConflictingDefinition indicates an attempt to register a different
	// type under an already-registered name.
	ErrConflictingDefinition = errors.New("scanx(registry): conflicting definition registration")
)

// New constructs an empty definition Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter.
	mu sync.Mutex
	// m maps component name to *apis.Definition.
	m sync.Map // map[string]*apis.Definition
	// count tracks the number of registered definitions.
	count int
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Register associates name with def. It is idempotent for the same
// (name, qualified name) pair.
func (r *registry) Register(name string, def *apis.Definition) error {
	// Validate inputs early.
	if name == "" {
		return ErrEmptyName
	}
	if def == nil {
		return ErrNilDefinition
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		if compatible(old.(*apis.Definition), def) {
			return nil // idempotent re-registration
		}
		return ErrConflictingDefinition
	}

	// Write path: guard with a mutex to keep the counter consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(name); ok {
		if compatible(old.(*apis.Definition), def) {
			return nil
		}
		return ErrConflictingDefinition
	}

	r.m.Store(name, def)
	r.count++
	return nil
}

// compatible reports whether re-registering next over prev is a harmless
// re-discovery of the same underlying type rather than a clash.
func compatible(prev, next *apis.Definition) bool {
	return prev.QualifiedName == next.QualifiedName && prev.Proxied == next.Proxied
}

// Lookup returns the definition registered under name, if any.
func (r *registry) Lookup(name string) (*apis.Definition, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.m.Load(name); ok {
		return v.(*apis.Definition), true
	}
	return nil, false
}

// Contains reports whether name is registered.
func (r *registry) Contains(name string) bool {
	_, ok := r.m.Load(name)
	return ok
}

// Definitions returns a snapshot for diagnostics (order is unspecified).
func (r *registry) Definitions() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Name: key.(string),
			Def:  value.(*apis.Definition),
		})
		return true
	})
	return entries
}

// Count returns the number of registered definitions.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered definitions.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}
