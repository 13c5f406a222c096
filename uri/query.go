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
)

const (
	// maxQueryPairParts is the largest number of '='-separated pieces a query
	// tuple may have; tuples with more pieces are dropped.
	maxQueryPairParts = 2
)

// parseQueryString splits a raw query on '&' into key/value pairs. Empty
// tuples are skipped. Each tuple is split on every '=' and empty pieces are
// discarded: a single piece is a key with an empty value, two pieces are a key
// and a value, and any more make the tuple ambiguous so it is dropped.
// Duplicate keys keep the last value. No percent-decoding is applied.
func parseQueryString(raw string) map[string]string {
	query := make(map[string]string)
	for tuple := range strings.SplitSeq(raw, "&") {
		if tuple == "" {
			continue
		}
		parts := slices.DeleteFunc(strings.Split(tuple, "="), func(p string) bool { return p == "" })
		switch len(parts) {
		case 1:
			query[parts[0]] = ""
		case maxQueryPairParts:
			query[parts[0]] = parts[1]
		}
	}
	return query
}

// writeQuery renders the query pairs as "key=value" joined with '&', in
// ascending key order so the output does not depend on map iteration.
func writeQuery(query map[string]string, out outputBuffer) {
	for i, key := range slices.Sorted(maps.Keys(query)) {
		if i > 0 {
			out.writeByte('&')
		}
		out.writeString(key)
		out.writeByte('=')
		out.writeString(query[key])
	}
}
