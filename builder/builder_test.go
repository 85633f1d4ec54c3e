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

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/scanx/apis"
	"dirpx.dev/scanx/builder"
	"dirpx.dev/scanx/config"
	"dirpx.dev/scanx/registry"
	"dirpx.dev/scanx/report"
	"dirpx.dev/scanx/source/static"
	"dirpx.dev/scanx/strategy"
)

func deps(src *static.Source) (apis.Deps, *report.Reporter) {
	rep := report.New()
	return apis.Deps{
		Source:      src,
		Catalog:     src,
		Registry:    registry.New(),
		Reporter:    rep,
		Strategies:  strategy.NewRegistry(),
		Environment: config.MapEnvironment(nil),
	}, rep
}

func servicePopulation() *static.Source {
	return static.New(
		static.NewType("example.com/app", "UserService",
			static.WithAnnotation("service", nil)),
		static.NewType("example.com/app", "OrderRepo",
			static.WithAnnotation("repository", nil)),
	)
}

func TestBuildScanner_Defaults(t *testing.T) {
	d, rep := deps(servicePopulation())

	sc, err := builder.New().BuildScanner(config.New(), d)
	require.NoError(t, err)

	defs := sc.Scan([]string{"example.com/app"})
	require.NoError(t, rep.Err())
	assert.Len(t, defs, 2)
}

func TestBuildScanner_ScopeConflictFatal(t *testing.T) {
	d, _ := deps(servicePopulation())
	spec := config.New(
		config.WithScopeResolver("custom"),
		config.WithScopedProxy("interfaces"),
	)

	_, err := builder.New().BuildScanner(spec, d)
	require.ErrorIs(t, err, config.ErrScopeConflict)
}

func TestBuildScanner_BadProxyTokenFatal(t *testing.T) {
	d, _ := deps(servicePopulation())

	_, err := builder.New().BuildScanner(config.New(config.WithScopedProxy("classes")), d)
	require.ErrorIs(t, err, config.ErrInvalidProxyMode)
}

func TestBuildScanner_UnknownStrategyFatal(t *testing.T) {
	d, _ := deps(servicePopulation())

	_, err := builder.New().BuildScanner(config.New(config.WithNameGenerator("ghost")), d)
	require.ErrorIs(t, err, strategy.ErrUnknownStrategy)
}

func TestBuildScanner_StrategyWiring(t *testing.T) {
	d, rep := deps(servicePopulation())
	require.NoError(t, d.Strategies.Register("prefixed", func() any {
		return nameFunc(func(md apis.Metadata) string { return "p-" + md.TypeName() })
	}))

	sc, err := builder.New().BuildScanner(config.New(config.WithNameGenerator("prefixed")), d)
	require.NoError(t, err)

	defs := sc.Scan([]string{"example.com/app"})
	require.NoError(t, rep.Err())
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	assert.ElementsMatch(t, []string{"p-UserService", "p-OrderRepo"}, names)
}

func TestBuildScanner_StrategyCapabilityFatal(t *testing.T) {
	d, _ := deps(servicePopulation())
	require.NoError(t, d.Strategies.Register("wrong", func() any { return 42 }))

	_, err := builder.New().BuildScanner(config.New(config.WithNameGenerator("wrong")), d)
	require.ErrorIs(t, err, strategy.ErrCapabilityMismatch)
}

func TestBuildScanner_UnknownFilterWarnsAndSkips(t *testing.T) {
	d, rep := deps(servicePopulation())
	spec := config.New(
		// References a directive the catalog has never seen.
		config.WithExcludeFilter("annotation", "ghost"),
	)

	sc, err := builder.New().BuildScanner(spec, d)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Warnings())
	require.NoError(t, rep.Err())

	// The skipped exclude leaves the scan untouched.
	defs := sc.Scan([]string{"example.com/app"})
	assert.Len(t, defs, 2)
}

func TestBuildScanner_BadFilterReportedAsError(t *testing.T) {
	d, rep := deps(servicePopulation())
	spec := config.New(config.WithIncludeFilter("regex", "("))

	_, err := builder.New().BuildScanner(spec, d)
	require.NoError(t, err)
	require.Error(t, rep.Err())
}

func TestBuildScanner_PlaceholderResolution(t *testing.T) {
	d, rep := deps(servicePopulation())
	d.Environment = config.MapEnvironment(map[string]string{"MARKER": "repository"})
	spec := config.New(config.WithExcludeFilter("annotation", "${MARKER}"))

	sc, err := builder.New().BuildScanner(spec, d)
	require.NoError(t, err)

	defs := sc.Scan([]string{"example.com/app"})
	require.NoError(t, rep.Err())
	require.Len(t, defs, 1)
	assert.Equal(t, "userService", defs[0].Name)
}

func TestBuildScanner_ScopedProxyApplied(t *testing.T) {
	src := static.New(
		static.NewType("example.com/app", "Cart",
			static.WithAnnotation("component", nil),
			static.WithAnnotation("scope", map[string]string{"name": "session"})),
	)
	d, rep := deps(src)

	sc, err := builder.New().BuildScanner(config.New(config.WithScopedProxy("targetClass")), d)
	require.NoError(t, err)

	defs := sc.Scan([]string{"example.com/app"})
	require.NoError(t, rep.Err())
	require.Len(t, defs, 1)
	assert.True(t, defs[0].Proxied)
	require.NotNil(t, defs[0].Target)
}

func TestBuildRegistrar(t *testing.T) {
	d, _ := deps(servicePopulation())
	sink := &captureSink{}
	d.Sink = sink

	spec := config.New(config.WithElement("scan", apis.Location{File: "boot.yaml", Line: 2}))
	builder.New().BuildRegistrar(spec, d).Register(nil, false)

	require.Len(t, sink.units, 1)
	assert.Equal(t, "scan", sink.units[0].Element)
	assert.Equal(t, "boot.yaml:2", sink.units[0].Source.String())
}

// nameFunc adapts a function to apis.NameGenerator.
type nameFunc func(apis.Metadata) string

func (f nameFunc) GenerateName(md apis.Metadata) string { return f(md) }

// captureSink records every emitted unit.
type captureSink struct {
	units []apis.CompositeUnit
}

func (s *captureSink) ComponentRegistered(unit apis.CompositeUnit) {
	s.units = append(s.units, unit)
}
