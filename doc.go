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

// Package slf4d is a logging facade: application code logs through a small,
// stable API while the actual handling of log records (formatting, filtering,
// routing, writing) is supplied by a pluggable provider configured once at
// process startup.
//
// # Quick start
//
// Library code never configures anything. It simply obtains a logger and
// emits records:
//
//	log := slf4d.GetLogger("myapp.orders")
//	log.Info("order accepted")
//	log.Errorf("payment failed for order %s", id)
//
// If no provider was configured, a built-in default (colored console output
// at INFO level) is installed lazily on first use.
//
// # Configuring a provider
//
// The top-level application installs a provider exactly once, early in main:
//
//	cache := slf4d.NewCacheHandler()
//	slf4d.Configure(slf4d.NewProvider(cache, slf4d.LevelDebug))
//
// Providers own a [LoggerFactory], which resolves a logger name to a
// configured [Logger] by applying per-module level overrides on top of a
// root level (see [Factory.SetModuleLevel]).
//
// # Handler composition
//
// Record delivery is built from composable [Handler] values: [CacheHandler]
// for test capture, [MultiHandler] for fan-out, [FilterHandler] for
// predicate gating, [RouteHandler] for level-range routing, and
// [SerializeHandler] for serialization plus delivery to one or more
// [Writer] sinks (stdout, single file, or size-rotated files).
//
// Handlers never propagate failures to the application: serialization and
// write errors are reported to a diagnostic stream (stderr by default) and
// the log call returns normally. A failing log sink must not crash or alter
// control flow of the instrumented program.
package slf4d
