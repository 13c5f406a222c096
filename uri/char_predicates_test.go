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

//nolint:testpackage // White-box tests for unexported character predicates.
package uri

import "testing"

// TestCharPredicates tests the byte classes used by the scanner.
func TestCharPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(byte) bool
		yes  string
		no   string
	}{
		{"isASCIILetter", isASCIILetter, "azAZ", "09+-.@[`{\x80"},
		{"isASCIIDigit", isASCIIDigit, "0123456789", "aZ/:"},
		{"isASCIIHexDigit", isASCIIHexDigit, "09afAF", "gG:/"},
		{"isSchemeChar", isSchemeChar, "aZ09+-.", ":/@_~% "},
		{"isAuthorityTerminator", isAuthorityTerminator, "/?#", "@:[]a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for i := 0; i < len(tt.yes); i++ {
				if !tt.fn(tt.yes[i]) {
					t.Errorf("%s(%q) = false, want true", tt.name, tt.yes[i])
				}
			}
			for i := 0; i < len(tt.no); i++ {
				if tt.fn(tt.no[i]) {
					t.Errorf("%s(%q) = true, want false", tt.name, tt.no[i])
				}
			}
		})
	}
}

// TestUnhex tests hexadecimal digit values.
func TestUnhex(t *testing.T) {
	t.Parallel()

	for c, want := range map[byte]byte{'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15} {
		if got := unhex(c); got != want {
			t.Errorf("unhex(%q) = %d, want %d", c, got, want)
		}
	}
}

// TestIsASCII tests the ASCII-only check used before IDNA conversion.
func TestIsASCII(t *testing.T) {
	t.Parallel()

	if !isASCII("example.com") || !isASCII("") {
		t.Error("isASCII rejected ASCII input")
	}
	if isASCII("bücher.example") {
		t.Error("isASCII accepted non-ASCII input")
	}
}
