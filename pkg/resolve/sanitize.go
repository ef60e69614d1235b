// Copyright 2025 walteh LLC
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

package resolve

import "strings"

// fallbackStem is used when sanitization leaves nothing behind.
const fallbackStem = "unnamed"

// 🧼 SanitizeStem makes a filename stem safe for the filesystem
//
// Path separators and control characters become underscores, surrounding
// whitespace is trimmed, and an empty result falls back to "unnamed".
// The function is idempotent: sanitizing a sanitized stem is a no-op.
func SanitizeStem(stem string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r < 0x20 || r == 0x7F:
			return '_'
		default:
			return r
		}
	}, stem)

	sanitized = strings.TrimSpace(sanitized)
	if sanitized == "" {
		return fallbackStem
	}
	return sanitized
}
