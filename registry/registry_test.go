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

package registry_test

import (
	"testing"

	"dirpx.dev/scanx/apis"
	"dirpx.dev/scanx/registry"
)

func def(qualified string) *apis.Definition {
	return &apis.Definition{
		QualifiedName: qualified,
		Scope:         apis.ScopeSingleton,
		Role:          apis.RoleApplication,
	}
}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("userService", def("example.com/app.UserService")); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Re-registering the same (name, type) pair is idempotent.
	if err := reg.Register("userService", def("example.com/app.UserService")); err != nil {
		t.Fatalf("Register idempotent: unexpected error: %v", err)
	}

	d, ok := reg.Lookup("userService")
	if !ok || d.QualifiedName != "example.com/app.UserService" {
		t.Fatalf("Lookup: got (%+v,%v), want (example.com/app.UserService,true)", d, ok)
	}
	if !reg.Contains("userService") {
		t.Fatal("Contains(userService) = false, want true")
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("store", def("example.com/app.MemStore")); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Same name, different type -> conflict.
	err := reg.Register("store", def("example.com/app.DiskStore"))
	if err != registry.ErrConflictingDefinition {
		t.Fatalf("expected ErrConflictingDefinition, got: %v", err)
	}
	// The original association survives.
	if d, ok := reg.Lookup("store"); !ok || d.QualifiedName != "example.com/app.MemStore" {
		t.Fatalf("Lookup after conflict: got (%+v,%v)", d, ok)
	}
}

func TestRegister_ProxyFlagMatters(t *testing.T) {
	reg := registry.New()

	plain := def("example.com/app.Cart")
	proxied := def("example.com/app.Cart")
	proxied.Proxied = true

	if err := reg.Register("cart", plain); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Same type but one is a proxy wrapper: not a harmless re-discovery.
	if err := reg.Register("cart", proxied); err != registry.ErrConflictingDefinition {
		t.Fatalf("expected ErrConflictingDefinition, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("", def("example.com/app.T")); err != registry.ErrEmptyName {
		t.Fatalf("empty name: want ErrEmptyName, got %v", err)
	}
	if err := reg.Register("x", nil); err != registry.ErrNilDefinition {
		t.Fatalf("nil definition: want ErrNilDefinition, got %v", err)
	}
}

func TestDefinitionsAndReset(t *testing.T) {
	reg := registry.New()

	_ = reg.Register("a", def("example.com/app.A"))
	_ = reg.Register("b", def("example.com/app.B"))

	if entries := reg.Definitions(); len(entries) != 2 {
		t.Fatalf("Definitions len = %d, want 2", len(entries))
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}

	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", reg.Count())
	}
	if d, ok := reg.Lookup("a"); ok || d != nil {
		t.Fatalf("Lookup after Reset: got (%+v,%v), want (nil,false)", d, ok)
	}
}

func TestLookupEmptyAndUnknown(t *testing.T) {
	reg := registry.New()

	if d, ok := reg.Lookup(""); ok || d != nil {
		t.Fatalf("Lookup(\"\"): got (%+v,%v), want (nil,false)", d, ok)
	}
	if d, ok := reg.Lookup("ghost"); ok || d != nil {
		t.Fatalf("Lookup(ghost): got (%+v,%v), want (nil,false)", d, ok)
	}
}
