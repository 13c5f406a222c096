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

// Package uri provides an immutable URI value type.
//
// A URI is either assembled from its parts with New or scanned from a string
// with Parse. Every component except the query is optional, and an absent
// component is distinct from an empty one: accessors report presence with a
// second boolean result.
//
// Key features include:
//   - Lenient scanning: Parse never fails, components it cannot find are absent.
//   - Percent-decoding of query pairs supplied to New.
//   - A canonical string form (String) that drives equality (Equal) and hashing (Hash).
//   - Text and JSON marshalling.
//   - Conversion of internationalized hosts to their ASCII form for dialing.
package uri

import (
	"encoding/json"
	"maps"
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/cespare/xxhash/v2"
)

// redactedPassword replaces non-empty passwords in redacted output.
const redactedPassword = "xxxxx"

// UserInfo holds the username and password of a URI authority.
type UserInfo struct {
	username string
	password string
}

// NewUserInfo returns a UserInfo with the given username and password.
func NewUserInfo(username, password string) UserInfo {
	return UserInfo{username: username, password: password}
}

// Username returns the username.
func (ui UserInfo) Username() string { return ui.username }

// Password returns the password. It is empty when the user-info carried none.
func (ui UserInfo) Password() string { return ui.password }

// String returns the user-info in the "username:password" form.
func (ui UserInfo) String() string {
	return ui.username + ":" + ui.password
}

// Redacted is like String but replaces a non-empty password with "xxxxx".
func (ui UserInfo) Redacted() string {
	if ui.password == "" {
		return ui.String()
	}
	return ui.username + ":" + redactedPassword
}

// Equal reports whether two UserInfo values have the same string form.
func (ui UserInfo) Equal(other UserInfo) bool {
	return ui.String() == other.String()
}

// Hash returns the hash of the string form.
func (ui UserInfo) Hash() uint64 {
	return xxhash.Sum64String(ui.String())
}

// URI is an immutable URI value. The zero value is an empty URI with no
// components. URI values are safe to copy and to share between goroutines.
type URI struct {
	set      fieldSet
	scheme   string
	userInfo UserInfo
	host     string
	port     int
	path     string
	query    map[string]string
	fragment string
}

// New builds a URI from its parts. Components without an option are absent.
// Query pairs given with WithQuery are percent-decoded; a pair whose key or
// value fails to decode is dropped without error.
func New(opts ...Option) URI {
	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	u := b.uri
	u.query = decodeQuery(b.rawQuery)
	return u
}

// Parse scans s into a URI. It never fails: components that cannot be located
// are absent. The query is split into pairs but not percent-decoded.
func Parse(s string) URI {
	sp := scan(s)

	u := URI{set: sp.set}
	if sp.set.has(fieldScheme) {
		u.scheme = sp.scheme.slice(s)
	}
	if sp.set.has(fieldUserInfo) {
		u.userInfo = splitUserInfo(sp.userInfo.slice(s))
	}
	if sp.set.has(fieldHost) {
		u.host = sp.host.slice(s)
	}
	if sp.set.has(fieldPort) {
		u.port = int(sp.portValue)
	}
	if sp.set.has(fieldPath) {
		u.path = sp.path.slice(s)
	}
	if sp.set.has(fieldQuery) {
		u.query = parseQueryString(sp.query.slice(s))
	}
	if sp.set.has(fieldFragment) {
		u.fragment = sp.fragment.slice(s)
	}
	return u
}

// Scheme returns the scheme (e.g. "https") and whether it is present.
func (u URI) Scheme() (string, bool) {
	return u.scheme, u.set.has(fieldScheme)
}

// UserInfo returns the user-info and whether it is present.
func (u URI) UserInfo() (UserInfo, bool) {
	return u.userInfo, u.set.has(fieldUserInfo)
}

// Host returns the host and whether it is present.
func (u URI) Host() (string, bool) {
	return u.host, u.set.has(fieldHost)
}

// Port returns the port and whether it is present.
func (u URI) Port() (int, bool) {
	return u.port, u.set.has(fieldPort)
}

// Path returns the path and whether it is present. A present path may be empty.
func (u URI) Path() (string, bool) {
	return u.path, u.set.has(fieldPath)
}

// Query returns a copy of the query pairs. It is never nil.
func (u URI) Query() map[string]string {
	if u.query == nil {
		return map[string]string{}
	}
	return maps.Clone(u.query)
}

// QueryValue looks up a single query key.
func (u URI) QueryValue(key string) (string, bool) {
	v, ok := u.query[key]
	return v, ok
}

// Fragment returns the fragment and whether it is present.
func (u URI) Fragment() (string, bool) {
	return u.fragment, u.set.has(fieldFragment)
}

// IsAbsolute returns true if the URI has a scheme.
func (u URI) IsAbsolute() bool {
	return u.set.has(fieldScheme)
}

// String returns the canonical form of the URI:
//
//	[scheme "://"] [userinfo "@"] [host] [":" port] [path] ["?" query] ["#" fragment]
//
// Only present components are written. The query is written when it has at
// least one pair, with keys in ascending order and nothing re-encoded.
func (u URI) String() string {
	return u.format(false)
}

// Redacted is like String but replaces a non-empty password with "xxxxx",
// for use in logs and error messages.
func (u URI) Redacted() string {
	return u.format(true)
}

func (u URI) format(redact bool) string {
	var size voidOutputBuffer
	u.render(&size, redact)

	var builder strings.Builder
	builder.Grow(size.len())
	out := &stringOutputBuffer{builder: &builder}
	u.render(out, redact)
	return out.string()
}

func (u URI) render(out outputBuffer, redact bool) {
	if u.set.has(fieldScheme) {
		out.writeString(u.scheme)
		out.writeString(schemeSeparator)
	}
	if u.set.has(fieldUserInfo) {
		out.writeString(u.userInfo.username)
		out.writeByte(':')
		if redact && u.userInfo.password != "" {
			out.writeString(redactedPassword)
		} else {
			out.writeString(u.userInfo.password)
		}
		out.writeByte('@')
	}
	if u.set.has(fieldHost) {
		out.writeString(u.host)
	}
	if u.set.has(fieldPort) {
		out.writeByte(':')
		out.writeString(strconv.Itoa(u.port))
	}
	if u.set.has(fieldPath) {
		out.writeString(u.path)
	}
	if len(u.query) > 0 {
		out.writeByte('?')
		writeQuery(u.query, out)
	}
	if u.set.has(fieldFragment) {
		out.writeByte('#')
		out.writeString(u.fragment)
	}
}

// Equal reports whether two URIs have the same canonical form.
func (u URI) Equal(other URI) bool {
	return u.String() == other.String()
}

// Hash returns the hash of the canonical form. Equal URIs hash identically.
func (u URI) Hash() uint64 {
	return xxhash.Sum64String(u.String())
}

// HostPort returns "host:port" suitable for net.Dial, and whether both the
// host and the port are present.
func (u URI) HostPort() (string, bool) {
	if !u.set.has(fieldHost | fieldPort) {
		return "", false
	}
	host := strings.TrimSuffix(strings.TrimPrefix(u.host, "["), "]")
	return net.JoinHostPort(host, strconv.Itoa(u.port)), true
}

// ASCIIHost returns the host in the form used for DNS lookups. Internationalized
// names are converted with IDNA; IP literals and ASCII names are returned as is.
// The URI itself is not modified. It returns a *HostError wrapping ErrNoHost
// when the host is absent or empty.
func (u URI) ASCIIHost() (string, error) {
	if !u.set.has(fieldHost) {
		return "", errtrace.Wrap(&HostError{Err: ErrNoHost})
	}
	return errtrace.Wrap2(toASCIIHost(u.host))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It scans
// the text with Parse and never fails.
func (u *URI) UnmarshalText(data []byte) error {
	*u = Parse(string(data))
	return nil
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as a
// JSON string of its canonical form.
func (u URI) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(u.String()))
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a JSON
// string, which is scanned with Parse, or null, which leaves the URI unchanged.
func (u *URI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errtrace.Wrap(err)
	}
	*u = Parse(s)
	return nil
}
