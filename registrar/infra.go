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

package registrar

import "dirpx.dev/scanx/apis"

// Registered names of the directive-processing support definitions ensured
// alongside annotation-config scans.
const (
	InjectionProcessorName     = "scanx.internal.injectionProcessor"
	LifecycleProcessorName     = "scanx.internal.lifecycleProcessor"
	ConfigurationProcessorName = "scanx.internal.configurationProcessor"
	EventProcessorName         = "scanx.internal.eventProcessor"
)

// InfrastructureDefinitions returns fresh definitions for the fixed
// infrastructure set. The slice and its elements are the caller's to own;
// contents are constant.
func InfrastructureDefinitions() []*apis.Definition {
	mk := func(name, qualified string) *apis.Definition {
		return &apis.Definition{
			QualifiedName: qualified,
			Name:          name,
			Scope:         apis.ScopeSingleton,
			Role:          apis.RoleInfrastructure,
		}
	}
	return []*apis.Definition{
		mk(InjectionProcessorName, "dirpx.dev/scanx/processor.Injection"),
		mk(LifecycleProcessorName, "dirpx.dev/scanx/processor.Lifecycle"),
		mk(ConfigurationProcessorName, "dirpx.dev/scanx/processor.Configuration"),
		mk(EventProcessorName, "dirpx.dev/scanx/processor.Event"),
	}
}
