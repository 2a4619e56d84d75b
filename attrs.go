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

package slf4d

import (
	"fmt"

	"github.com/spf13/cast"
)

// Attrs coerces an open-typed attribute map to the string-to-string form
// records carry, so call sites can pass numbers, booleans, durations, and
// the like without converting by hand:
//
//	log.With(slf4d.Attrs(map[string]any{
//	    "port":    8080,
//	    "retries": 3,
//	    "dry_run": false,
//	})).Info("server starting")
//
// Values that cannot be cast render through fmt as a fallback.
func Attrs(in map[string]any) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		s, err := cast.ToStringE(v)
		if err != nil {
			s = fmt.Sprint(v)
		}
		out[k] = s
	}
	return out
}
