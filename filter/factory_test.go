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

package filter_test

import (
	"errors"
	"testing"

	"dirpx.dev/scanx/filter"
	"dirpx.dev/scanx/source/static"
	"dirpx.dev/scanx/strategy"
)

func TestBuild_AnnotationValidated(t *testing.T) {
	cat := static.New()
	cat.DeclareAnnotations("audited")

	f, err := filter.Build(filter.KindAnnotation, "audited", cat, nil)
	if err != nil || f == nil {
		t.Fatalf("Build(annotation): got (%v,%v)", f, err)
	}

	_, err = filter.Build(filter.KindAnnotation, "missing", cat, nil)
	if !errors.Is(err, filter.ErrUnknownType) {
		t.Fatalf("Build(unknown annotation): want ErrUnknownType, got %v", err)
	}

	// A nil catalog disables validation entirely.
	if _, err := filter.Build(filter.KindAnnotation, "missing", nil, nil); err != nil {
		t.Fatalf("Build(nil catalog): unexpected error: %v", err)
	}
}

func TestBuild_AssignableValidated(t *testing.T) {
	cat := static.New()
	cat.DeclareTypes("example.com/app.Store")

	if _, err := filter.Build(filter.KindAssignable, "example.com/app.Store", cat, nil); err != nil {
		t.Fatalf("Build(assignable): unexpected error: %v", err)
	}
	_, err := filter.Build(filter.KindAssignable, "example.com/app.Gone", cat, nil)
	if !errors.Is(err, filter.ErrUnknownType) {
		t.Fatalf("Build(unknown type): want ErrUnknownType, got %v", err)
	}
}

func TestBuild_Regex(t *testing.T) {
	if _, err := filter.Build(filter.KindRegex, `.*Service$`, nil, nil); err != nil {
		t.Fatalf("Build(regex): unexpected error: %v", err)
	}
	_, err := filter.Build(filter.KindRegex, `(`, nil, nil)
	if !errors.Is(err, filter.ErrInvalidExpression) {
		t.Fatalf("Build(bad regex): want ErrInvalidExpression, got %v", err)
	}
}

func TestBuild_AspectJDeferred(t *testing.T) {
	// Pattern expressions compile lazily, so construction accepts anything.
	f, err := filter.Build(filter.KindAspectJ, "  ", nil, nil)
	if err != nil {
		t.Fatalf("Build(aspectj): unexpected error: %v", err)
	}
	md := static.NewType("example.com/app", "UserService")
	if _, err := f.Match(md); !errors.Is(err, filter.ErrInvalidExpression) {
		t.Fatalf("Match: want ErrInvalidExpression, got %v", err)
	}
}

func TestBuild_Custom(t *testing.T) {
	strategies := strategy.NewRegistry()
	if err := strategies.Register("onlyServices", func() any {
		return filter.NewAnnotation("service")
	}); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	f, err := filter.Build(filter.KindCustom, "onlyServices", nil, strategies)
	if err != nil {
		t.Fatalf("Build(custom): unexpected error: %v", err)
	}
	md := static.NewType("example.com/app", "UserService",
		static.WithAnnotation("service", nil))
	if ok, err := f.Match(md); err != nil || !ok {
		t.Fatalf("Match: got (%v,%v), want (true,nil)", ok, err)
	}
}

func TestBuild_CustomUnknownStrategy(t *testing.T) {
	strategies := strategy.NewRegistry()

	// An unregistered name is the recoverable class-not-found case.
	_, err := filter.Build(filter.KindCustom, "missing", nil, strategies)
	if !errors.Is(err, filter.ErrUnknownType) {
		t.Fatalf("Build(unknown custom): want ErrUnknownType, got %v", err)
	}

	// So is a missing strategy registry.
	_, err = filter.Build(filter.KindCustom, "missing", nil, nil)
	if !errors.Is(err, filter.ErrUnknownType) {
		t.Fatalf("Build(nil strategies): want ErrUnknownType, got %v", err)
	}
}

func TestBuild_CustomCapabilityMismatch(t *testing.T) {
	strategies := strategy.NewRegistry()
	// Registered, but not a TypeFilter. This is a configuration bug, not a
	// missing construct, so it must not collapse into ErrUnknownType.
	if err := strategies.Register("notAFilter", func() any { return 42 }); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	_, err := filter.Build(filter.KindCustom, "notAFilter", nil, strategies)
	if !errors.Is(err, strategy.ErrCapabilityMismatch) {
		t.Fatalf("Build: want ErrCapabilityMismatch, got %v", err)
	}
	if errors.Is(err, filter.ErrUnknownType) {
		t.Fatalf("Build: capability mismatch reported as unknown construct: %v", err)
	}
}

func TestBuild_UnsupportedKind(t *testing.T) {
	_, err := filter.Build("aspect", "x", nil, nil)
	if !errors.Is(err, filter.ErrUnsupportedKind) {
		t.Fatalf("Build: want ErrUnsupportedKind, got %v", err)
	}
}
