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

import (
	"github.com/sirupsen/logrus"

	"dirpx.dev/scanx/apis"
)

// NopSink returns the default event sink: it drops every unit.
func NopSink() apis.EventSink {
	return nopSink{}
}

type nopSink struct{}

// Ensure nopSink implements apis.EventSink.
var _ apis.EventSink = nopSink{}

func (nopSink) ComponentRegistered(apis.CompositeUnit) {}

// LogSink returns a sink that logs each composite unit at info level with
// its element, id, source and entry count. Useful for bootstrap diagnostics.
func LogSink(log *logrus.Logger) apis.EventSink {
	return logSink{log: log}
}

type logSink struct {
	log *logrus.Logger
}

// Ensure logSink implements apis.EventSink.
var _ apis.EventSink = logSink{}

func (s logSink) ComponentRegistered(unit apis.CompositeUnit) {
	entry := s.log.WithFields(logrus.Fields{
		"element":    unit.Element,
		"event":      unit.ID,
		"components": len(unit.Nested),
	})
	if src := unit.Source.String(); src != "" {
		entry = entry.WithField("source", src)
	}
	entry.Info("components registered")
}
