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

// Package gopkg turns Go packages into a component metadata source: base
// locations are import-path scan roots, candidates are exported named types,
// and annotations are "//scanx:" directive comments on their declarations.
package gopkg

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"sync"

	"golang.org/x/tools/go/packages"

	"dirpx.dev/scanx/apis"
)

// DefaultMarker is the directive comment prefix.
const DefaultMarker = "scanx"

// New constructs a Source loading packages relative to dir (a directory
// inside the module being scanned).
func New(dir string, opts ...Option) *Source {
	s := &Source{
		dir:    dir,
		marker: DefaultMarker,
		index:  make(map[string]types.Type),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures a Source during construction.
type Option func(*Source)

// WithMarker overrides the directive comment prefix.
func WithMarker(marker string) Option {
	return func(s *Source) {
		if marker != "" {
			s.marker = marker
		}
	}
}

// WithReporter routes per-package load problems to the given channel.
// Without one, broken packages are skipped silently.
func WithReporter(r apis.Reporter) Option {
	return func(s *Source) { s.reporter = r }
}

// Source enumerates candidate types by loading Go packages with full type
// information. The type index accumulated across loads also answers
// assignability queries for the metadata it produced.
type Source struct {
	dir      string
	marker   string
	reporter apis.Reporter

	// mu guards index across Enumerate calls.
	mu sync.Mutex
	// index maps qualified type name to its types.Type for every named type
	// seen in loaded packages, candidates or not.
	index map[string]types.Type
}

// Ensure Source implements apis.Source.
var _ apis.Source = (*Source)(nil)

// Enumerate loads packages under base and returns metadata for every
// exported named type declared there. A package that fails to load is
// reported at warning level and skipped; scanning stays robust against a
// partially-broken tree.
func (s *Source) Enumerate(base, pattern string) ([]apis.Metadata, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports,
		Dir: s.dir,
	}

	pkgs, err := packages.Load(cfg, loadPattern(base, pattern))
	if err != nil {
		return nil, fmt.Errorf("scanx(gopkg): loading %q: %w", base, err)
	}

	var out []apis.Metadata
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			s.warn(fmt.Sprintf("skipping package %s: %s", pkg.PkgPath, pkg.Errors[0].Msg))
			continue
		}
		s.indexScope(pkg)
		out = append(out, s.extract(pkg)...)
	}
	return out, nil
}

// loadPattern converts (base, resource pattern) into a go/packages pattern.
func loadPattern(base, pattern string) string {
	switch pattern {
	case "", "...":
		return base + "/..."
	default:
		return base + "/" + pattern
	}
}

// indexScope records every named type of pkg and its direct imports so
// assignability can be answered later.
func (s *Source) indexScope(pkg *packages.Package) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := func(p *types.Package) {
		if p == nil {
			return
		}
		scope := p.Scope()
		for _, name := range scope.Names() {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			s.index[p.Path()+"."+name] = obj.Type()
		}
	}

	record(pkg.Types)
	for _, imp := range pkg.Imports {
		record(imp.Types)
	}
}

// extract walks pkg's declarations and produces metadata for each exported
// named type.
func (s *Source) extract(pkg *packages.Package) []apis.Metadata {
	var out []apis.Metadata
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !ts.Name.IsExported() {
					continue
				}
				obj := pkg.Types.Scope().Lookup(ts.Name.Name)
				if obj == nil {
					continue
				}
				out = append(out, &typeMeta{
					src:     s,
					pkgPath: pkg.PkgPath,
					name:    ts.Name.Name,
					annots:  s.parseDirectives(docFor(gd, ts)),
					loc:     location(pkg.Fset, ts.Pos()),
					typ:     obj.Type(),
				})
			}
		}
	}
	return out
}

// docFor picks the doc comment attached to the type: the spec's own when the
// declaration groups several, the decl's otherwise.
func docFor(gd *ast.GenDecl, ts *ast.TypeSpec) *ast.CommentGroup {
	if ts.Doc != nil {
		return ts.Doc
	}
	return gd.Doc
}

// parseDirectives extracts "//<marker>:<name> k=v ..." directives.
func (s *Source) parseDirectives(doc *ast.CommentGroup) []apis.Annotation {
	if doc == nil {
		return nil
	}
	prefix := s.marker + ":"
	var out []apis.Annotation
	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if !strings.HasPrefix(text, prefix) {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(text, prefix))
		if len(fields) == 0 {
			continue
		}
		a := apis.Annotation{Name: fields[0]}
		for _, kv := range fields[1:] {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				continue
			}
			if a.Params == nil {
				a.Params = make(map[string]string)
			}
			a.Params[k] = v
		}
		out = append(out, a)
	}
	return out
}

// lookupType answers the accumulated type index.
func (s *Source) lookupType(qualified string) (types.Type, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.index[qualified]
	return t, ok
}

// warn routes a message to the reporter when one is configured.
func (s *Source) warn(msg string) {
	if s.reporter != nil {
		s.reporter.Warning(msg, apis.Location{}, nil)
	}
}

// location converts a token position.
func location(fset *token.FileSet, pos token.Pos) apis.Location {
	p := fset.Position(pos)
	return apis.Location{File: p.Filename, Line: p.Line}
}

// typeMeta is the Metadata implementation for one discovered named type.
type typeMeta struct {
	src     *Source
	pkgPath string
	name    string
	annots  []apis.Annotation
	loc     apis.Location
	typ     types.Type
}

// Ensure typeMeta implements apis.Metadata.
var _ apis.Metadata = (*typeMeta)(nil)

func (t *typeMeta) QualifiedName() string { return t.pkgPath + "." + t.name }
func (t *typeMeta) PackagePath() string   { return t.pkgPath }
func (t *typeMeta) TypeName() string      { return t.name }

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

// AssignableTo resolves the target in the source's type index and checks
// interface satisfaction (value or pointer receiver set) or plain
// assignability.
func (t *typeMeta) AssignableTo(qualifiedName string) bool {
	target, ok := t.src.lookupType(qualifiedName)
	if !ok {
		return false
	}
	if iface, ok := target.Underlying().(*types.Interface); ok {
		return types.Implements(t.typ, iface) ||
			types.Implements(types.NewPointer(t.typ), iface)
	}
	return types.AssignableTo(t.typ, target)
}

func (t *typeMeta) Location() apis.Location { return t.loc }
