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
	"errors"
	"fmt"
)

// ErrNoHost is returned by host conversions when the URI has no host, or an
// empty one.
var ErrNoHost = errors.New("URI has no host")

// HostError is the error type returned when a host cannot be converted to its
// ASCII form. It wraps the underlying cause.
type HostError struct {
	Host string
	Err  error
}

// Error returns the string representation of the host error.
func (e *HostError) Error() string {
	if e.Host == "" {
		return fmt.Sprintf("URI host error: %v", e.Err)
	}
	return fmt.Sprintf("URI host error: %q: %v", e.Host, e.Err)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *HostError) Unwrap() error {
	return e.Err
}
