// Copyright 2026 The slf4d Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package slf4d_test

import (
	"fmt"

	"github.com/andrewlalis/slf4d"
)

// A library obtains a logger and logs; configuration is someone else's job.
func ExampleGetLogger() {
	log := slf4d.GetLogger("myapp.orders")
	log.Info("order accepted")
	log.Debugf("payload size: %d bytes", 512)
}

// The application wires up a provider once, early in main.
func ExampleConfigure() {
	handler := slf4d.NewSerializeHandler(
		slf4d.NewTextSerializer(true),
		slf4d.NewStdoutWriter(),
	)
	provider := slf4d.NewProvider(handler, slf4d.LevelInfo)
	provider.DefaultFactory().SetModuleLevelPrefix("myapp.db", slf4d.LevelDebug)

	slf4d.Configure(provider)
}

// Records can be routed to different sinks by severity band.
func ExampleRouteHandler() {
	everything := slf4d.NewCacheHandler()
	audit := slf4d.NewCacheHandler()

	handler := slf4d.NewRouteHandler().
		Route(slf4d.AnyLevel(), everything).
		Route(slf4d.AtLeast(slf4d.LevelWarn), audit)

	log := slf4d.NewLogger(handler, slf4d.LevelTrace, "myapp")
	log.Info("delivered to the first mapping only")
	log.Error("delivered to both")

	fmt.Println(everything.Count(), audit.Count())
	// Output: 2 1
}

// Attributes accept arbitrary values via the coercion helper.
func ExampleAttrs() {
	log := slf4d.GetLogger("myapp.http")
	log.With(slf4d.Attrs(map[string]any{
		"port":    8080,
		"tls":     true,
		"backlog": 128,
	})).Info("listening")
}
