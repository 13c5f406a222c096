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

// scanInput is a byte cursor over the string being scanned. All positions are
// byte offsets into the original string, which is what the span records need.
type scanInput struct {
	s   string
	pos int
}

// newScanInput creates a cursor positioned at the start of s.
func newScanInput(s string) *scanInput {
	return &scanInput{s: s}
}

// next returns the byte under the cursor and advances past it.
func (in *scanInput) next() (byte, bool) {
	if in.pos >= len(in.s) {
		return 0, false
	}
	c := in.s[in.pos]
	in.pos++
	return c, true
}

// peek returns the byte under the cursor without advancing.
func (in *scanInput) peek() (byte, bool) {
	if in.pos >= len(in.s) {
		return 0, false
	}
	return in.s[in.pos], true
}

// startsWith reports whether the unread input begins with prefix.
func (in *scanInput) startsWith(prefix string) bool {
	return len(in.s)-in.pos >= len(prefix) && in.s[in.pos:in.pos+len(prefix)] == prefix
}

// skip advances the cursor by n bytes, stopping at the end of the input.
func (in *scanInput) skip(n int) {
	in.pos = min(in.pos+n, len(in.s))
}

// position returns the current offset.
func (in *scanInput) position() int {
	return in.pos
}

// seek moves the cursor to an absolute offset, clamped to the input bounds.
func (in *scanInput) seek(pos int) {
	in.pos = max(0, min(pos, len(in.s)))
}

// indexAny returns the offset of the first byte at or after the cursor that is
// one of chars, or len(s) when none is found. The cursor does not move.
func (in *scanInput) indexAny(chars string) int {
	for i := in.pos; i < len(in.s); i++ {
		for j := 0; j < len(chars); j++ {
			if in.s[i] == chars[j] {
				return i
			}
		}
	}
	return len(in.s)
}
