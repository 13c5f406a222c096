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

import "strings"

// outputBuffer receives the canonical form of a URI as it is rendered.
// Rendering runs twice: once into a voidOutputBuffer to size the result, then
// into a stringOutputBuffer grown to exactly that size.
type outputBuffer interface {
	// writeByte appends a single byte to the buffer.
	writeByte(c byte)
	// writeString appends a string to the buffer.
	writeString(s string)
	// len returns the number of bytes currently in the buffer.
	len() int
}

// voidOutputBuffer discards all writes and only tracks the length of the
// would-be output.
type voidOutputBuffer struct {
	length int
}

func (b *voidOutputBuffer) writeByte(byte) { b.length++ }

func (b *voidOutputBuffer) writeString(s string) { b.length += len(s) }

func (b *voidOutputBuffer) len() int { return b.length }

// stringOutputBuffer writes into a strings.Builder.
type stringOutputBuffer struct {
	builder *strings.Builder
}

func (b *stringOutputBuffer) writeByte(c byte) { b.builder.WriteByte(c) }

func (b *stringOutputBuffer) writeString(s string) { b.builder.WriteString(s) }

func (b *stringOutputBuffer) len() int { return b.builder.Len() }

// string returns the content written so far.
func (b *stringOutputBuffer) string() string { return b.builder.String() }
