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

// Annotation is one parsed marker directive attached to a candidate type,
// e.g. "//scanx:component name=userService scope=session".
type Annotation struct {
	// Name is the directive name ("component", "scope", ...).
	Name string
	// Params holds the directive's key=value parameters. May be nil.
	Params map[string]string
}

// Param returns a parameter value, or "" when absent.
func (a Annotation) Param(key string) string {
	if a.Params == nil {
		return ""
	}
	return a.Params[key]
}

// Metadata describes one candidate type considered for component registration.
// Implementations must be read-only after construction; filters and strategies
// may consult the same Metadata concurrently during a scan.
type Metadata interface {
	// QualifiedName returns the full identity, "pkg/path.TypeName".
	QualifiedName() string
	// PackagePath returns the package portion of the identity.
	PackagePath() string
	// TypeName returns the bare type name.
	TypeName() string
	// Annotations returns all directives attached to the type, in source order.
	Annotations() []Annotation
	// Annotation returns the first directive with the given name.
	Annotation(name string) (Annotation, bool)
	// HasAnnotation reports whether a directive with the given name is present.
	HasAnnotation(name string) bool
	// AssignableTo reports whether the candidate satisfies the named type
	// (itself, an embedded type, or an implemented interface).
	AssignableTo(qualifiedName string) bool
	// Location returns where the candidate was declared.
	Location() Location
}

// Source enumerates candidate metadata under a base location. base is a
// package-path-like scan root; pattern narrows the sub-paths considered
// beneath it ("..." matches everything). A base resolving to nothing yields
// an empty slice, not an error.
type Source interface {
	Enumerate(base, pattern string) ([]Metadata, error)
}

// Catalog answers whether a named construct referenced from a filter
// expression is known. It plays the role a class loader plays for expression
// validation: a nil Catalog disables the check entirely.
type Catalog interface {
	// HasType reports whether a qualified type name is known.
	HasType(qualifiedName string) bool
	// HasAnnotation reports whether a directive name is known.
	HasAnnotation(name string) bool
}
