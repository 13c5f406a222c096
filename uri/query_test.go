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

//nolint:testpackage // White-box tests: query helpers are unexported.
package uri

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParseQueryString tests the splitting of raw query strings into pairs.
func TestParseQueryString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{"Key without value", "a=1&b&c=3", map[string]string{"a": "1", "b": "", "c": "3"}},
		{"Empty value", "a=", map[string]string{"a": ""}},
		{"Leading separator", "=v", map[string]string{"v": ""}},
		{"Duplicate keys keep the last value", "a=1&a=2", map[string]string{"a": "2"}},
		{"Too many separators are dropped", "a=b=c&d=e", map[string]string{"d": "e"}},
		{"Double separator", "a==b", map[string]string{"a": "b"}},
		{"Lone separator is skipped", "=&x=1", map[string]string{"x": "1"}},
		{"Too many pieces after collapsing", "a=1==2", map[string]string{}},
		{"Empty tuples are skipped", "&&x=1&", map[string]string{"x": "1"}},
		{"No decoding", "a%20b=c+d", map[string]string{"a%20b": "c+d"}},
		{"Empty query", "", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseQueryString(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseQueryString(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

// TestWriteQuery tests that pairs are rendered in key order and joined with '&'.
func TestWriteQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query map[string]string
		want  string
	}{
		{"Empty", map[string]string{}, ""},
		{"Single pair", map[string]string{"a": "1"}, "a=1"},
		{"Sorted keys", map[string]string{"c": "3", "a": "1", "b": ""}, "a=1&b=&c=3"},
		{"No re-encoding", map[string]string{"a b": "c&d"}, "a b=c&d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var builder strings.Builder
			writeQuery(tt.query, &stringOutputBuffer{builder: &builder})
			if got := builder.String(); got != tt.want {
				t.Errorf("writeQuery(%v) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
