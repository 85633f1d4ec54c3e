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

// ComponentEntry is one nested registration inside a composite unit. Its
// identity is the definition's resolved name.
type ComponentEntry struct {
	// Name is the resolved component name.
	Name string
	// Def is the registered definition.
	Def *Definition
}

// CompositeUnit groups the entire registration outcome of one configuration
// element for event/tooling consumption. It is a transient notification
// payload, not persisted state.
type CompositeUnit struct {
	// ID uniquely identifies this registration event.
	ID string
	// Element is the originating configuration element's tag name.
	Element string
	// Source is the element's location in the declaring document.
	Source Location
	// Nested lists the component registrations in the order they were made:
	// discovered candidates first, then auxiliary infrastructure definitions.
	Nested []ComponentEntry
}

// EventSink receives composite registration units. Emission is
// fire-and-forget from the registrar's perspective; failure handling is the
// sink's own concern.
type EventSink interface {
	ComponentRegistered(unit CompositeUnit)
}
