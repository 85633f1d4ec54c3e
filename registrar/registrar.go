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

package registrar

import (
	"github.com/google/uuid"

	"dirpx.dev/scanx/apis"
	"dirpx.dev/scanx/config"
)

// New constructs a Registrar emitting composite units keyed by element, with
// source attached to every emitted unit. A nil sink drops events.
func New(registry apis.Registry, sink apis.EventSink, reporter apis.Reporter, opts ...Option) *Registrar {
	r := &Registrar{
		registry: registry,
		sink:     sink,
		reporter: reporter,
		element:  config.DefaultElement,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.sink == nil {
		r.sink = NopSink()
	}
	return r
}

// Option configures a Registrar during construction.
type Option func(*Registrar)

// WithElement sets the originating element tag name and location the
// composite units are keyed by.
func WithElement(tag string, loc apis.Location) Option {
	return func(r *Registrar) {
		if tag != "" {
			r.element = tag
		}
		r.source = loc
	}
}

// Registrar composes the registration outcome of one scan element into a
// CompositeUnit and emits it. Emission is fire-and-forget: whatever the sink
// does with the unit is the sink's own concern.
type Registrar struct {
	registry apis.Registry
	sink     apis.EventSink
	reporter apis.Reporter
	element  string
	source   apis.Location
}

// Ensure Registrar implements apis.Registrar.
var _ apis.Registrar = (*Registrar)(nil)

// Register builds one composite unit over the discovered definitions, ensures
// the auxiliary infrastructure definitions when asked to, and emits the unit.
func (r *Registrar) Register(discovered []*apis.Definition, annotationConfig bool) {
	unit := apis.CompositeUnit{
		ID:      uuid.NewString(),
		Element: r.element,
		Source:  r.source,
	}
	for _, def := range discovered {
		unit.Nested = append(unit.Nested, apis.ComponentEntry{Name: def.Name, Def: def})
	}

	if annotationConfig {
		for _, def := range r.ensureInfrastructure() {
			unit.Nested = append(unit.Nested, apis.ComponentEntry{Name: def.Name, Def: def})
		}
	}

	r.sink.ComponentRegistered(unit)
}

// ensureInfrastructure idempotently registers the fixed infrastructure
// definition set and returns the ones actually added this time.
func (r *Registrar) ensureInfrastructure() []*apis.Definition {
	var added []*apis.Definition
	for _, infra := range InfrastructureDefinitions() {
		if r.registry.Contains(infra.Name) {
			continue
		}
		if err := r.registry.Register(infra.Name, infra); err != nil {
			r.reporter.Error("registering infrastructure definition "+infra.Name, r.source, err)
			continue
		}
		added = append(added, infra)
	}
	return added
}
