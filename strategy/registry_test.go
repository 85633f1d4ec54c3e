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

package strategy_test

import (
	"errors"
	"testing"

	"dirpx.dev/scanx/apis"
	"dirpx.dev/scanx/strategy"
)

func TestRegisterAndInstantiate(t *testing.T) {
	reg := strategy.NewRegistry()

	if err := reg.Register("annotated", func() any {
		return strategy.NewAnnotationNameGenerator()
	}); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	inst, err := reg.Instantiate("annotated", apis.CapNameGenerator)
	if err != nil {
		t.Fatalf("Instantiate: unexpected error: %v", err)
	}
	if _, ok := inst.(apis.NameGenerator); !ok {
		t.Fatalf("Instantiate returned %T, want apis.NameGenerator", inst)
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := strategy.NewRegistry()

	if err := reg.Register("", func() any { return nil }); !errors.Is(err, strategy.ErrEmptyName) {
		t.Fatalf("empty name: want ErrEmptyName, got %v", err)
	}
	if err := reg.Register("x", nil); !errors.Is(err, strategy.ErrNilFactory) {
		t.Fatalf("nil factory: want ErrNilFactory, got %v", err)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	reg := strategy.NewRegistry()

	if err := reg.Register("gen", func() any { return strategy.NewAnnotationNameGenerator() }); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	err := reg.Register("gen", func() any { return strategy.NewAnnotationNameGenerator() })
	if !errors.Is(err, strategy.ErrDuplicateStrategy) {
		t.Fatalf("re-register: want ErrDuplicateStrategy, got %v", err)
	}
}

func TestInstantiate_Unknown(t *testing.T) {
	reg := strategy.NewRegistry()

	_, err := reg.Instantiate("ghost", apis.CapNameGenerator)
	if !errors.Is(err, strategy.ErrUnknownStrategy) {
		t.Fatalf("Instantiate(ghost): want ErrUnknownStrategy, got %v", err)
	}
}

func TestInstantiate_CapabilityMismatch(t *testing.T) {
	reg := strategy.NewRegistry()

	_ = reg.Register("gen", func() any { return strategy.NewAnnotationNameGenerator() })

	// A valid NameGenerator is not a ScopeResolver.
	_, err := reg.Instantiate("gen", apis.CapScopeResolver)
	if !errors.Is(err, strategy.ErrCapabilityMismatch) {
		t.Fatalf("Instantiate: want ErrCapabilityMismatch, got %v", err)
	}
}

func TestInstantiate_FactoryFailures(t *testing.T) {
	reg := strategy.NewRegistry()

	_ = reg.Register("nilMaker", func() any { return nil })
	_ = reg.Register("panicker", func() any { panic("constructor exploded") })

	if _, err := reg.Instantiate("nilMaker", apis.CapNameGenerator); !errors.Is(err, strategy.ErrInstantiation) {
		t.Fatalf("nil instance: want ErrInstantiation, got %v", err)
	}
	if _, err := reg.Instantiate("panicker", apis.CapNameGenerator); !errors.Is(err, strategy.ErrInstantiation) {
		t.Fatalf("panicking factory: want ErrInstantiation, got %v", err)
	}
}

func TestInstantiate_FreshInstances(t *testing.T) {
	reg := strategy.NewRegistry()

	type gen struct{ apis.NameGenerator }
	_ = reg.Register("fresh", func() any { return &gen{strategy.NewAnnotationNameGenerator()} })

	a, err := reg.Instantiate("fresh", apis.CapNameGenerator)
	if err != nil {
		t.Fatalf("Instantiate: unexpected error: %v", err)
	}
	b, err := reg.Instantiate("fresh", apis.CapNameGenerator)
	if err != nil {
		t.Fatalf("Instantiate: unexpected error: %v", err)
	}
	if a == b {
		t.Fatal("Instantiate returned the same instance twice, want a fresh one per call")
	}
}
