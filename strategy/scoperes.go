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
	"dirpx.dev/scanx/apis"
)

// ScopeAnnotation is the directive the default resolver reads scope policy
// from: "//scanx:scope name=session proxy=interfaces".
const ScopeAnnotation = "scope"

// NewAnnotationScopeResolver creates the default ScopeResolver. Candidates
// without a scope directive are singletons with no proxying preference.
func NewAnnotationScopeResolver() apis.ScopeResolver {
	return annotationScopeResolver{}
}

// NewScopedProxyResolver creates a ScopeResolver that applies defaultProxy to
// candidates whose scope directive does not pick a proxy mode itself. The
// default never reaches candidates without a scope directive, and an explicit
// proxy parameter on the directive always wins.
func NewScopedProxyResolver(defaultProxy apis.ProxyMode) apis.ScopeResolver {
	return annotationScopeResolver{defaultProxy: defaultProxy}
}

type annotationScopeResolver struct {
	defaultProxy apis.ProxyMode
}

// Ensure annotationScopeResolver implements apis.ScopeResolver.
var _ apis.ScopeResolver = annotationScopeResolver{}

// ResolveScope reads the scope directive, falling back to singleton.
func (r annotationScopeResolver) ResolveScope(md apis.Metadata) apis.ScopeMetadata {
	meta := apis.ScopeMetadata{Name: apis.ScopeSingleton, Proxy: apis.ProxyDefault}
	a, ok := md.Annotation(ScopeAnnotation)
	if !ok {
		return meta
	}
	if name := a.Param("name"); name != "" {
		meta.Name = name
	}
	// The proxy parameter shares the scoped-proxy token vocabulary. A
	// directive that declares no recognized choice falls back to the
	// resolver's configured default.
	switch a.Param("proxy") {
	case "no":
		meta.Proxy = apis.ProxyNo
	case "interfaces":
		meta.Proxy = apis.ProxyInterfaces
	case "targetClass":
		meta.Proxy = apis.ProxyTargetClass
	default:
		meta.Proxy = r.defaultProxy
	}
	return meta
}
