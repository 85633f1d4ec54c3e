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

package strategy

import (
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/scanx/apis"
)

var (
	// ErrEmptyName is returned when a strategy is registered without a name.
	ErrEmptyName = errors.New("scanx(strategy): empty strategy name provided")
	// ErrNilFactory is returned when a nil factory is registered.
	ErrNilFactory = errors.New("scanx(strategy): nil factory provided")
	// ErrDuplicateStrategy indicates an attempt to re-register a name.
	ErrDuplicateStrategy = errors.New("scanx(strategy): conflicting strategy registration")
	// ErrUnknownStrategy is returned when a referenced strategy name is not
	// registered. This is the class-not-found case of dynamic loading.
	ErrUnknownStrategy = errors.New("scanx(strategy): unknown strategy")
	// ErrInstantiation is returned when a factory panics or produces nil.
	ErrInstantiation = errors.New("scanx(strategy): unable to instantiate strategy")
	// ErrCapabilityMismatch is returned when a constructed instance does not
	// satisfy the required capability.
	ErrCapabilityMismatch = errors.New("scanx(strategy): strategy does not satisfy required capability")
)

// NewRegistry constructs an empty strategy registry.
func NewRegistry() apis.Strategies {
	return &registry{}
}

// registry is a Strategies implementation backed by sync.Map. Registration is
// rare (bootstrap); instantiation is read-mostly.
type registry struct {
	// mu guards write-side consistency.
	mu sync.Mutex
	// m maps strategy name to apis.Factory.
	m sync.Map // map[string]apis.Factory
}

// Ensure registry implements apis.Strategies.
var _ apis.Strategies = (*registry)(nil)

// Register associates name with a factory. Names are a flat vocabulary;
// re-registration is a conflict.
func (r *registry) Register(name string, f apis.Factory) error {
	if name == "" {
		return ErrEmptyName
	}
	if f == nil {
		return ErrNilFactory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m.Load(name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStrategy, name)
	}
	r.m.Store(name, f)
	return nil
}

// Instantiate resolves name, constructs an instance, and validates it against
// the required capability. All failure modes carry the strategy name and the
// capability name.
func (r *registry) Instantiate(name string, capability apis.Capability) (any, error) {
	v, ok := r.m.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q for capability %s", ErrUnknownStrategy, name, capability)
	}

	inst, err := construct(v.(apis.Factory))
	if err != nil {
		return nil, fmt.Errorf("%w: %q for capability %s: %v", ErrInstantiation, name, capability, err)
	}
	if !satisfies(inst, capability) {
		return nil, fmt.Errorf("%w: %q must implement %s", ErrCapabilityMismatch, name, capability)
	}
	return inst, nil
}

// construct invokes the factory, converting a panic into an error so a broken
// constructor cannot take down the whole configuration step uncontrolled.
func construct(f apis.Factory) (inst any, err error) {
	defer func() {
		if p := recover(); p != nil {
			inst, err = nil, fmt.Errorf("factory panicked: %v", p)
		}
	}()
	inst = f()
	if inst == nil {
		return nil, errors.New("factory returned nil")
	}
	return inst, nil
}

// satisfies checks an instance against the closed capability set.
func satisfies(inst any, capability apis.Capability) bool {
	switch capability {
	case apis.CapNameGenerator:
		_, ok := inst.(apis.NameGenerator)
		return ok
	case apis.CapScopeResolver:
		_, ok := inst.(apis.ScopeResolver)
		return ok
	case apis.CapTypeFilter:
		_, ok := inst.(apis.TypeFilter)
		return ok
	default:
		return false
	}
}
