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

// Package scanx provides declarative, filter-driven component scanning for
// dependency-injection registries.
//
// scanx is responsible for turning a small declarative configuration element
// ("scan these package roots, include what matches these filters, exclude
// what matches those") into a set of component definitions registered in a
// definition registry, plus one composite registration event describing what
// the element produced.
//
// # Design
//
// One scan element flows through four collaborators:
//
//   - Source: enumerates candidate type metadata under a base package,
//     optionally narrowed by a resource pattern. The library ships an
//     analysis-backed source (source/gopkg) that loads real Go packages and
//     reads scanx directive comments, plus an in-memory source
//     (source/static) for tests and synthetic catalogs.
//
//   - Scanner: evaluates every candidate against the exclude filters first,
//     then the include filters (the built-in component/service/repository/
//     controller markers are seeded ahead of user filters unless disabled),
//     applies the optional Condition guard, resolves a definition name and a
//     scope, and wraps scoped candidates in proxy definitions when a
//     scoped-proxy mode demands it.
//
//   - Registrar: wraps the discovered definitions, together with any
//     auxiliary infrastructure definitions added for annotation-config
//     processing, into one CompositeUnit keyed by the originating element tag
//     and fires it at the event sink.
//
//   - Builder: constructs Scanner and Registrar instances for an element.
//     Filter construction and named-strategy instantiation happen here, so
//     configuration errors surface before any scanning occurs.
//
// The package-level API mirrors that flow against a global snapshot (state):
// an atomic pointer holds the current collaborators and builder, readers load
// it without locks, and writers (SetDeps, SetBuilder) publish a brand-new
// snapshot under a short build mutex.
//
// # Error policy
//
// Applying a scan element never fails as a whole. Problems are split into
// three classes:
//
//   - Fatal for the element: configuration conflicts (scope-resolver together
//     with scoped-proxy), invalid scoped-proxy tokens, and strategy loading
//     failures. These abort the element before scanning and are routed to the
//     Reporter as errors.
//
//   - Recoverable: a filter expression referencing a construct the catalog
//     does not know produces a warning and the filter is skipped. The
//     Reporter can be configured to escalate warnings to errors.
//
//   - Local: a base package that cannot be enumerated, or a candidate whose
//     filter evaluation fails, is reported and skipped while the rest of the
//     scan continues.
//
// Callers wanting a verdict inspect Reporter().Err() afterwards; it
// aggregates everything reported as an error during the apply.
//
// # Usage pattern
//
// A typical embedding binary does:
//
//  1. Point the global state at a metadata source:
//
//     scanx.SetSource(gopkg.New(moduleDir))
//
//  2. Optionally register custom strategies up front:
//
//     scanx.RegisterStrategy("shortNames", func() any { return myGen{} })
//
//  3. Apply one or more scan elements, built in code or decoded from YAML:
//
//     scanx.Apply(config.New(
//     config.WithBasePackages("example.com/app/internal"),
//     config.WithExcludeFilter("annotation", "deprecated"),
//     ))
//
//  4. Read the resulting definitions from scanx.Registry() and check
//     scanx.Reporter().Err().
//
// Tests usually bypass the global state entirely and call ApplyWith with an
// explicit Deps bundle.
//
// # Scope
//
// scanx is intentionally small. It discovers and registers component
// definitions; it does not instantiate components, wire dependencies, or
// manage lifecycles. Those belong to the container consuming the registry.
package scanx
