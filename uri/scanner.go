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

import "strconv"

const (
	// authorityPrefix introduces a network-path reference ("//host/path").
	authorityPrefix = "//"
	// schemeSeparator ends the scheme and introduces the authority.
	schemeSeparator = "://"
)

// fieldSet records which components were found. A clear bit means the
// component is absent; a set bit with an empty value means present but empty.
type fieldSet uint8

const (
	fieldScheme fieldSet = 1 << iota
	fieldHost
	fieldPort
	fieldPath
	fieldQuery
	fieldFragment
	fieldUserInfo
)

// has reports whether every bit of f is set.
func (s fieldSet) has(f fieldSet) bool { return s&f == f }

// span is a half-open [start, end) byte range into the scanned string.
type span struct {
	start int
	end   int
}

// slice returns the substring of s covered by the span.
func (sp span) slice(s string) string { return s[sp.start:sp.end] }

// spans holds the result of a scan: the set of components found, their
// offsets, and the decoded port number.
type spans struct {
	set       fieldSet
	scheme    span
	userInfo  span
	host      span
	path      span
	query     span
	fragment  span
	portValue uint16
}

// scanner splits a URI string into component spans. It never fails: anything
// it cannot locate is left out of the field set.
type scanner struct {
	input *scanInput
	out   spans
}

// scan is the entry point of the scanner.
func scan(s string) spans {
	sc := &scanner{input: newScanInput(s)}
	sc.scanSchemeStart()
	return sc.out
}

// scanSchemeStart is the initial state. A scheme can only start with a letter.
func (sc *scanner) scanSchemeStart() {
	c, ok := sc.input.peek()
	if ok && isASCIILetter(c) {
		sc.scanScheme()
		return
	}
	sc.scanRelative()
}

// scanScheme consumes scheme characters up to "://". Anything else means the
// input has no scheme and scanning restarts from the beginning.
func (sc *scanner) scanScheme() {
	start := sc.input.position()
	sc.input.next() // leading letter
	for {
		c, ok := sc.input.peek()
		if !ok || !isSchemeChar(c) {
			break
		}
		sc.input.next()
	}

	if !sc.input.startsWith(schemeSeparator) {
		sc.input.seek(start)
		sc.scanRelative()
		return
	}

	sc.out.scheme = span{start: start, end: sc.input.position()}
	sc.out.set |= fieldScheme
	sc.input.skip(len(schemeSeparator))
	sc.scanAuthority()
}

// scanRelative handles input without a scheme. A leading "//" introduces an
// authority; a leading '/', '?' or '#' means there is none. Anything else is
// leniently treated as an authority starting at the current position, so that
// "example.com/path" yields a host.
func (sc *scanner) scanRelative() {
	if sc.input.startsWith(authorityPrefix) {
		sc.input.skip(len(authorityPrefix))
		sc.scanAuthority()
		return
	}

	c, ok := sc.input.peek()
	if !ok {
		return
	}
	if isAuthorityTerminator(c) {
		sc.scanPathStart()
		return
	}
	sc.scanAuthority()
}

// scanAuthority records the user-info, host and port spans of the authority
// segment, which runs up to the first '/', '?', '#' or the end of input.
func (sc *scanner) scanAuthority() {
	start := sc.input.position()
	end := sc.input.indexAny("/?#")
	authority := sc.input.s[start:end]

	userInfo, host, port := splitAuthority(authority)
	if userInfo != nil {
		sc.out.userInfo = span{start: start + userInfo.start, end: start + userInfo.end}
		sc.out.set |= fieldUserInfo
	}

	sc.out.host = span{start: start + host.start, end: start + host.end}
	sc.out.set |= fieldHost

	if port != nil {
		if value, ok := parsePort(authority[port.start:port.end]); ok {
			sc.out.portValue = value
			sc.out.set |= fieldPort
		}
	}

	sc.input.seek(end)
	sc.scanPathStart()
}

// scanPathStart dispatches on the byte following the authority.
func (sc *scanner) scanPathStart() {
	c, ok := sc.input.peek()
	if !ok {
		return
	}

	switch c {
	case '/':
		sc.scanPath()
	case '?':
		sc.input.next()
		sc.scanQuery()
	case '#':
		sc.input.next()
		sc.scanFragment()
	}
}

// scanPath records the path span, which starts with '/' and runs up to '?',
// '#' or the end of input.
func (sc *scanner) scanPath() {
	start := sc.input.position()
	end := sc.input.indexAny("?#")
	sc.out.path = span{start: start, end: end}
	sc.out.set |= fieldPath
	sc.input.seek(end)

	c, ok := sc.input.next()
	switch {
	case !ok:
		return
	case c == '?':
		sc.scanQuery()
	default:
		sc.scanFragment()
	}
}

// scanQuery records the query span, without the leading '?'. The query is
// present even when it is empty.
func (sc *scanner) scanQuery() {
	start := sc.input.position()
	end := sc.input.indexAny("#")
	sc.out.query = span{start: start, end: end}
	sc.out.set |= fieldQuery
	sc.input.seek(end)

	if _, ok := sc.input.next(); ok {
		sc.scanFragment()
	}
}

// scanFragment records the fragment span: everything after the '#'.
func (sc *scanner) scanFragment() {
	start := sc.input.position()
	sc.out.fragment = span{start: start, end: len(sc.input.s)}
	sc.out.set |= fieldFragment
	sc.input.seek(len(sc.input.s))
}

// parsePort parses a port number. Empty, non-numeric and out of range values
// (above 65535) are rejected.
func parsePort(s string) (uint16, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
