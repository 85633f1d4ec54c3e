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

// Condition is the independent conditional-inclusion policy applied after
// filter matching. It is a separate guard, not part of filter evaluation;
// a nil Condition means every filtered candidate is eligible.
type Condition interface {
	Eligible(md Metadata) bool
}

// Environment resolves configuration placeholders in declarative values
// (base package lists, filter expressions) before they are consumed.
type Environment interface {
	ResolvePlaceholders(s string) string
}

// Scanner enumerates matching candidates under base locations and resolves
// name and scope metadata for each. Scan never fails as a whole: per-location
// and per-candidate problems go through the reporting channel and the rest of
// the scan continues. The result contains one definition per distinct
// candidate; within it, ordering is not significant to callers.
type Scanner interface {
	Scan(basePackages []string) []*Definition
}

// Registrar wraps discovered definitions plus any auxiliary infrastructure
// definitions into a composite registration unit and emits it.
type Registrar interface {
	// Register composes and fires one CompositeUnit. When annotationConfig is
	// true it first ensures the fixed infrastructure definition set exists in
	// the registry, appending each definition actually added.
	Register(discovered []*Definition, annotationConfig bool)
}

// Deps bundles the external collaborators a scan element is configured
// against. Source, Registry and Reporter are required; the rest have
// reasonable zero-value behavior (nil Catalog skips expression validation,
// nil Condition admits everything, nil Sink drops events, nil Environment
// leaves placeholders untouched).
type Deps struct {
	// Source enumerates candidate metadata.
	Source Source
	// Catalog validates filter expressions. Optional.
	Catalog Catalog
	// Registry receives the resulting definitions.
	Registry Registry
	// Sink receives composite registration units. Optional.
	Sink EventSink
	// Reporter is the warning/error channel.
	Reporter Reporter
	// Strategies resolves named strategy references. Optional when the spec
	// declares none.
	Strategies Strategies
	// Environment resolves placeholders. Optional.
	Environment Environment
	// Condition is the conditional-inclusion guard. Optional.
	Condition Condition
}

// Builder composes Scanner and Registrar instances for a scan element.
// It owns filter construction and strategy instantiation, so configuration
// errors surface here, before any scanning occurs.
type Builder interface {
	// BuildScanner configures a Scanner for spec. Strategy loading failures,
	// the scope-resolver/scoped-proxy conflict, and invalid scoped-proxy
	// tokens are fatal and returned; individual filter construction problems
	// are routed to deps.Reporter instead (recoverable by policy).
	BuildScanner(spec ScanSpec, deps Deps) (Scanner, error)
	// BuildRegistrar configures the Registrar emitting for spec's element.
	BuildRegistrar(spec ScanSpec, deps Deps) Registrar
}
