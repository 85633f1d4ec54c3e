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
	"dirpx.dev/scanx/utils/names"
)

// NewAnnotationNameGenerator creates the default NameGenerator: an explicit
// name= parameter on any of the candidate's directives wins; otherwise the
// name is derived deterministically from the type name (decapitalized).
func NewAnnotationNameGenerator() apis.NameGenerator {
	return annotationNameGenerator{}
}

type annotationNameGenerator struct{}

// Ensure annotationNameGenerator implements apis.NameGenerator.
var _ apis.NameGenerator = annotationNameGenerator{}

// GenerateName resolves the component name for md.
func (annotationNameGenerator) GenerateName(md apis.Metadata) string {
	for _, a := range md.Annotations() {
		if name := a.Param("name"); name != "" {
			return name
		}
	}
	return names.Decapitalize(md.TypeName())
}
