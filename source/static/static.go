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

// Package static provides an in-memory metadata source and catalog. It backs
// tests and embedders that assemble their candidate population by hand
// instead of loading it from Go packages.
package static

import (
	"path"
	"strings"

	"dirpx.dev/scanx/apis"
)

// NewType builds an immutable Metadata record for pkgPath.typeName.
func NewType(pkgPath, typeName string, opts ...TypeOption) apis.Metadata {
	t := &typeMeta{
		pkgPath:  pkgPath,
		typeName: typeName,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TypeOption configures a Metadata record under construction.
type TypeOption func(*typeMeta)

// WithAnnotation attaches one directive. params may be nil.
func WithAnnotation(name string, params map[string]string) TypeOption {
	return func(t *typeMeta) {
		t.annots = append(t.annots, apis.Annotation{Name: name, Params: params})
	}
}

// WithAssignable declares qualified type names the candidate satisfies.
func WithAssignable(targets ...string) TypeOption {
	return func(t *typeMeta) {
		if t.assignable == nil {
			t.assignable = make(map[string]struct{}, len(targets))
		}
		for _, target := range targets {
			t.assignable[target] = struct{}{}
		}
	}
}

// WithLocation sets the declaration location.
func WithLocation(loc apis.Location) TypeOption {
	return func(t *typeMeta) { t.loc = loc }
}

// typeMeta is the Metadata implementation. Read-only after NewType returns.
type typeMeta struct {
	pkgPath    string
	typeName   string
	annots     []apis.Annotation
	assignable map[string]struct{}
	loc        apis.Location
}

// Ensure typeMeta implements apis.Metadata.
var _ apis.Metadata = (*typeMeta)(nil)

func (t *typeMeta) QualifiedName() string { return t.pkgPath + "." + t.typeName }
func (t *typeMeta) PackagePath() string   { return t.pkgPath }
func (t *typeMeta) TypeName() string      { return t.typeName }

func (t *typeMeta) Annotations() []apis.Annotation { return t.annots }

func (t *typeMeta) Annotation(name string) (apis.Annotation, bool) {
	for _, a := range t.annots {
		if a.Name == name {
			return a, true
		}
	}
	return apis.Annotation{}, false
}

func (t *typeMeta) HasAnnotation(name string) bool {
	_, ok := t.Annotation(name)
	return ok
}

func (t *typeMeta) AssignableTo(qualifiedName string) bool {
	_, ok := t.assignable[qualifiedName]
	return ok
}

func (t *typeMeta) Location() apis.Location { return t.loc }

// New constructs a Source holding the given candidates.
func New(mds ...apis.Metadata) *Source {
	s := &Source{
		types:  make(map[string]struct{}),
		annots: make(map[string]struct{}),
	}
	s.Add(mds...)
	return s
}

// Source is an in-memory Source and Catalog. Populate it up front; it is
// read-only during a scan.
type Source struct {
	all    []apis.Metadata
	types  map[string]struct{}
	annots map[string]struct{}
}

// Ensure Source implements the enumeration and lookup collaborators.
var (
	_ apis.Source  = (*Source)(nil)
	_ apis.Catalog = (*Source)(nil)
)

// Add appends candidates, folding their identities and directive names into
// the catalog vocabulary.
func (s *Source) Add(mds ...apis.Metadata) {
	for _, md := range mds {
		s.all = append(s.all, md)
		s.types[md.QualifiedName()] = struct{}{}
		for _, a := range md.Annotations() {
			s.annots[a.Name] = struct{}{}
		}
	}
}

// DeclareTypes makes qualified type names known to the catalog without
// turning them into candidates (assignable-filter targets, custom markers).
func (s *Source) DeclareTypes(qualified ...string) {
	for _, q := range qualified {
		s.types[q] = struct{}{}
	}
}

// DeclareAnnotations makes directive names known to the catalog.
func (s *Source) DeclareAnnotations(annotationNames ...string) {
	for _, n := range annotationNames {
		s.annots[n] = struct{}{}
	}
}

// Enumerate returns candidates under base whose sub-path matches pattern.
func (s *Source) Enumerate(base, pattern string) ([]apis.Metadata, error) {
	var out []apis.Metadata
	for _, md := range s.all {
		rel, ok := relativeTo(md.PackagePath(), base)
		if !ok {
			continue
		}
		ok, err := matchPattern(pattern, rel)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, md)
		}
	}
	return out, nil
}

// HasType reports whether a qualified type name is known.
func (s *Source) HasType(qualifiedName string) bool {
	_, ok := s.types[qualifiedName]
	return ok
}

// HasAnnotation reports whether a directive name is known.
func (s *Source) HasAnnotation(name string) bool {
	_, ok := s.annots[name]
	return ok
}

// relativeTo returns pkg's sub-path under base ("" for base itself).
func relativeTo(pkg, base string) (string, bool) {
	if pkg == base {
		return "", true
	}
	if strings.HasPrefix(pkg, base+"/") {
		return pkg[len(base)+1:], true
	}
	return "", false
}

// matchPattern applies the resource pattern to a relative sub-path.
// "" and "..." admit everything; anything else is a path.Match pattern.
func matchPattern(pattern, rel string) (bool, error) {
	if pattern == "" || pattern == "..." {
		return true, nil
	}
	return path.Match(pattern, rel)
}
