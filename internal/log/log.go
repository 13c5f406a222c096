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

// Package log provides the slog loggers used by the command-line tools.
package log

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/jplu/urikit/uri"
)

// newHandler wraps a handler with formatters that render errors as groups
// and URIs without their passwords.
var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u uri.URI) slog.Value {
		return slog.StringValue(u.Redacted())
	}),
	slogformatter.FormatByType(func(ui uri.UserInfo) slog.Value {
		return slog.StringValue(ui.Redacted())
	}),
)

// New returns a logger writing to w. The default handler is console-slog;
// dev selects the devslog handler, which is easier to read while debugging.
func New(w io.Writer, level slog.Leveler, dev bool) *slog.Logger {
	if dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.RFC3339,
		}),
	))
}

// Noop is a logger that discards everything.
var Noop = slog.New(slog.DiscardHandler)

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errtrace.Wrap(err)
	}
	return level, nil
}
