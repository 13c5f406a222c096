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

import "maps"

// builder collects the parts handed to New.
type builder struct {
	uri      URI
	rawQuery map[string]string
}

// Option sets one component of a URI built with New.
type Option func(*builder)

// WithScheme sets the scheme, e.g. "https".
func WithScheme(scheme string) Option {
	return func(b *builder) {
		b.uri.scheme = scheme
		b.uri.set |= fieldScheme
	}
}

// WithUserInfo sets the user-info.
func WithUserInfo(userInfo UserInfo) Option {
	return func(b *builder) {
		b.uri.userInfo = userInfo
		b.uri.set |= fieldUserInfo
	}
}

// WithHost sets the host.
func WithHost(host string) Option {
	return func(b *builder) {
		b.uri.host = host
		b.uri.set |= fieldHost
	}
}

// WithPort sets the port.
func WithPort(port int) Option {
	return func(b *builder) {
		b.uri.port = port
		b.uri.set |= fieldPort
	}
}

// WithPath sets the path. An empty path is still present.
func WithPath(path string) Option {
	return func(b *builder) {
		b.uri.path = path
		b.uri.set |= fieldPath
	}
}

// WithQuery sets the query from percent-encoded key/value pairs. Pairs are
// decoded by New. Repeated WithQuery options are merged, later ones winning.
func WithQuery(query map[string]string) Option {
	return func(b *builder) {
		if b.rawQuery == nil {
			b.rawQuery = make(map[string]string, len(query))
		}
		maps.Copy(b.rawQuery, query)
		b.uri.set |= fieldQuery
	}
}

// WithFragment sets the fragment.
func WithFragment(fragment string) Option {
	return func(b *builder) {
		b.uri.fragment = fragment
		b.uri.set |= fieldFragment
	}
}
