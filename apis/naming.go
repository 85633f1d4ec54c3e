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

// ScopeSingleton is the default component scope: one shared instance.
const ScopeSingleton = "singleton"

// NameGenerator resolves the registered name for a discovered component.
// Implementations must be stateless after construction and safe for
// concurrent use within a scan.
type NameGenerator interface {
	// GenerateName returns a non-empty component name for md.
	GenerateName(md Metadata) string
}

// ScopeResolver resolves the scope policy for a discovered component.
type ScopeResolver interface {
	// ResolveScope returns the scope metadata for md. Implementations fall
	// back to ScopeSingleton with ProxyDefault when nothing is declared.
	ResolveScope(md Metadata) ScopeMetadata
}

// ScopeMetadata carries the resolved scope of one candidate together with the
// proxying behavior the scope requires.
type ScopeMetadata struct {
	// Name is the scope name (e.g. "singleton", "session").
	Name string
	// Proxy is the proxying to apply. ProxyDefault and ProxyNo both leave
	// the component unwrapped; an element-level scoped-proxy mode only acts
	// as the resolver's fallback for candidates that declare a scope but no
	// proxy choice of their own.
	Proxy ProxyMode
}

// ProxyMode selects how a narrow-scoped component is wrapped so it can be
// referenced from broader-scoped contexts.
type ProxyMode int

const (
	// ProxyDefault defers to whatever the scope resolver decided.
	ProxyDefault ProxyMode = iota
	// ProxyNo disables scoped proxying.
	ProxyNo
	// ProxyInterfaces wraps the component behind its implemented interfaces.
	ProxyInterfaces
	// ProxyTargetClass wraps the component behind its concrete type.
	ProxyTargetClass
)

// String returns the declarative token for the mode.
func (m ProxyMode) String() string {
	switch m {
	case ProxyNo:
		return "no"
	case ProxyInterfaces:
		return "interfaces"
	case ProxyTargetClass:
		return "targetClass"
	default:
		return "default"
	}
}
