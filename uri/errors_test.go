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

//nolint:testpackage // Kept alongside the other white-box tests of the package.
package uri

import (
	"errors"
	"testing"
)

// TestHostError_Error tests the message formats of HostError.
func TestHostError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *HostError
		want string
	}{
		{"Without host", &HostError{Err: ErrNoHost}, "URI host error: URI has no host"},
		{"With host", &HostError{Host: "bad", Err: errors.New("boom")}, `URI host error: "bad": boom`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestHostError_Unwrap tests compatibility with errors.Is.
func TestHostError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := &HostError{Host: "h", Err: inner}
	if !errors.Is(err, inner) {
		t.Errorf("errors.Is(%v, inner) = false", err)
	}
	if (&HostError{}).Unwrap() != nil {
		t.Error("Unwrap() of an empty HostError should be nil")
	}
}
