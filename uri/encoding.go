/*
Copyright 2025 Urikit Authors

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

package uri

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// percentDecode reverses %XX escapes in s. It fails when a '%' is not followed
// by two hexadecimal digits or when the decoded octets are not valid UTF-8.
// A '+' is kept as is: only percent-encoding is undone.
func percentDecode(s string) (string, bool) {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		if !validateDecodedBytes(s) {
			return "", false
		}
		return s, true
	}

	var builder strings.Builder
	builder.Grow(len(s))
	builder.WriteString(s[:i])

	for i < len(s) {
		if s[i] != '%' {
			builder.WriteByte(s[i])
			i++
			continue
		}
		if i+2 >= len(s) || !isASCIIHexDigit(s[i+1]) || !isASCIIHexDigit(s[i+2]) {
			return "", false
		}
		builder.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 3
	}

	decoded := builder.String()
	if !validateDecodedBytes(decoded) {
		return "", false
	}
	return decoded, true
}

// validateDecodedBytes checks that decoded octets form valid UTF-8.
func validateDecodedBytes(decoded string) bool {
	return utf8.ValidString(decoded)
}

// decodeQuery percent-decodes every pair of a raw query mapping. A pair is kept
// only when both its key and its value decode; the others are dropped.
// Raw keys are visited in sorted order so that two raw keys decoding to the
// same key always resolve the same way.
func decodeQuery(raw map[string]string) map[string]string {
	query := make(map[string]string, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		value := raw[key]
		decodedKey, ok := percentDecode(key)
		if !ok {
			continue
		}
		decodedValue, ok := percentDecode(value)
		if !ok {
			continue
		}
		query[decodedKey] = decodedValue
	}
	return query
}
