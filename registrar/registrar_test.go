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

package registrar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/scanx/apis"
	"dirpx.dev/scanx/config"
	"dirpx.dev/scanx/registrar"
	"dirpx.dev/scanx/registry"
	"dirpx.dev/scanx/report"
)

// captureSink records every emitted unit.
type captureSink struct {
	units []apis.CompositeUnit
}

func (s *captureSink) ComponentRegistered(unit apis.CompositeUnit) {
	s.units = append(s.units, unit)
}

func discovered() []*apis.Definition {
	return []*apis.Definition{
		{QualifiedName: "example.com/app.UserService", Name: "userService", Scope: apis.ScopeSingleton},
		{QualifiedName: "example.com/app.OrderRepo", Name: "orderRepo", Scope: apis.ScopeSingleton},
	}
}

func TestRegister_CompositeUnit(t *testing.T) {
	sink := &captureSink{}
	rep := report.New()
	r := registrar.New(registry.New(), sink, rep,
		registrar.WithElement("context:component-scan", apis.Location{File: "app.yaml", Line: 4}))

	r.Register(discovered(), false)

	require.NoError(t, rep.Err())
	require.Len(t, sink.units, 1)

	unit := sink.units[0]
	assert.NotEmpty(t, unit.ID)
	assert.Equal(t, "context:component-scan", unit.Element)
	assert.Equal(t, "app.yaml:4", unit.Source.String())
	require.Len(t, unit.Nested, 2)
	assert.Equal(t, "userService", unit.Nested[0].Name)
	assert.Equal(t, "orderRepo", unit.Nested[1].Name)
}

func TestRegister_DefaultElement(t *testing.T) {
	sink := &captureSink{}
	r := registrar.New(registry.New(), sink, report.New())

	r.Register(nil, false)

	require.Len(t, sink.units, 1)
	assert.Equal(t, config.DefaultElement, sink.units[0].Element)
	assert.Empty(t, sink.units[0].Nested)
}

func TestRegister_InfrastructureEnsured(t *testing.T) {
	sink := &captureSink{}
	reg := registry.New()
	r := registrar.New(reg, sink, report.New())

	infra := registrar.InfrastructureDefinitions()
	r.Register(discovered(), true)

	require.Len(t, sink.units, 1)
	// Discovered entries first, then the infrastructure set.
	assert.Len(t, sink.units[0].Nested, 2+len(infra))
	assert.Equal(t, 2+len(infra), reg.Count())

	for _, d := range infra {
		got, ok := reg.Lookup(d.Name)
		require.True(t, ok, d.Name)
		assert.Equal(t, apis.RoleInfrastructure, got.Role)
		assert.Equal(t, apis.ScopeSingleton, got.Scope)
	}
}

func TestRegister_InfrastructureIdempotent(t *testing.T) {
	sink := &captureSink{}
	reg := registry.New()
	registrar.New(reg, sink, report.New()).Register(nil, true)

	before := reg.Count()
	require.Equal(t, len(registrar.InfrastructureDefinitions()), before)

	// A second annotation-config element adds nothing and reports nothing new.
	registrar.New(reg, sink, report.New()).Register(nil, true)

	require.Len(t, sink.units, 2)
	assert.Empty(t, sink.units[1].Nested)
	assert.Equal(t, before, reg.Count())
}

func TestRegister_AnnotationConfigDisabled(t *testing.T) {
	sink := &captureSink{}
	reg := registry.New()
	registrar.New(reg, sink, report.New()).Register(discovered(), false)

	assert.Equal(t, 0, reg.Count())
	require.Len(t, sink.units, 1)
	assert.Len(t, sink.units[0].Nested, 2)
}

func TestRegister_UniqueEventIDs(t *testing.T) {
	sink := &captureSink{}
	r := registrar.New(registry.New(), sink, report.New())

	r.Register(nil, false)
	r.Register(nil, false)

	require.Len(t, sink.units, 2)
	assert.NotEqual(t, sink.units[0].ID, sink.units[1].ID)
}
