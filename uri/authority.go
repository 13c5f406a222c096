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
	"net"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// splitAuthority splits an authority segment into its user-info, host and
// port parts. The returned spans are relative to authority. User-info is nil
// when there is no '@'; port is nil when there is no port separator. The host
// span is always returned, possibly empty.
func splitAuthority(authority string) (userInfo *span, host span, port *span) {
	hostStart := 0
	if at := strings.LastIndexByte(authority, '@'); at != -1 {
		userInfo = &span{start: 0, end: at}
		hostStart = at + 1
	}
	hostport := authority[hostStart:]

	if strings.HasPrefix(hostport, "[") {
		endBracket := strings.LastIndexByte(hostport, ']')
		if endBracket == -1 {
			return userInfo, span{start: hostStart, end: len(authority)}, nil
		}
		hostEnd := hostStart + endBracket + 1
		if hostEnd < len(authority) && authority[hostEnd] == ':' {
			port = &span{start: hostEnd + 1, end: len(authority)}
		}
		return userInfo, span{start: hostStart, end: hostEnd}, port
	}

	if colon := strings.LastIndexByte(hostport, ':'); colon != -1 {
		hostEnd := hostStart + colon
		return userInfo, span{start: hostStart, end: hostEnd}, &span{start: hostEnd + 1, end: len(authority)}
	}
	return userInfo, span{start: hostStart, end: len(authority)}, nil
}

// splitUserInfo splits a user-info segment on its first ':'. Without a ':' the
// whole segment is the username and the password is empty.
func splitUserInfo(s string) UserInfo {
	username, password, _ := strings.Cut(s, ":")
	return UserInfo{username: username, password: password}
}

// toASCIIHost converts a host to the form used for DNS lookups. IP literals
// and ASCII names are returned unchanged; internationalized names are put in
// NFC and converted with IDNA ToASCII.
func toASCIIHost(host string) (string, error) {
	if host == "" {
		return "", errtrace.Wrap(&HostError{Host: host, Err: ErrNoHost})
	}
	if strings.HasPrefix(host, "[") || net.ParseIP(host) != nil || isASCII(host) {
		return host, nil
	}

	asciiHost, err := idna.Lookup.ToASCII(norm.NFC.String(host))
	if err != nil {
		return "", errtrace.Wrap(&HostError{Host: host, Err: err})
	}
	return asciiHost, nil
}
