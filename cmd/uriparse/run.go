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

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"braces.dev/errtrace"

	"github.com/jplu/urikit/uri"
)

// absent is printed in text output for components that are not present.
const absent = "-"

// report is the JSON form of a scanned URI. Absent components are omitted.
// Passwords are masked in Canonical and UserInfo.
type report struct {
	Input     string            `json:"input"`
	Canonical string            `json:"canonical"`
	Hash      string            `json:"hash"`
	Scheme    *string           `json:"scheme,omitempty"`
	UserInfo  *string           `json:"userInfo,omitempty"`
	Host      *string           `json:"host,omitempty"`
	Port      *int              `json:"port,omitempty"`
	Path      *string           `json:"path,omitempty"`
	Query     map[string]string `json:"query,omitempty"`
	Fragment  *string           `json:"fragment,omitempty"`
}

func optional[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}

func newReport(input string, u uri.URI) report {
	r := report{
		Input:     input,
		Canonical: u.Redacted(),
		Hash:      fmt.Sprintf("%016x", u.Hash()),
		Scheme:    optional[string](u.Scheme()),
		Host:      optional[string](u.Host()),
		Port:      optional[int](u.Port()),
		Path:      optional[string](u.Path()),
		Query:     u.Query(),
		Fragment:  optional[string](u.Fragment()),
	}
	if ui, ok := u.UserInfo(); ok {
		r.UserInfo = optional(ui.Redacted(), true)
	}
	return r
}

func orAbsent(p *string) string {
	if p == nil {
		return absent
	}
	return strconv.Quote(*p)
}

// writeText prints one component per line, aligned in two columns.
func (r report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	port := absent
	if r.Port != nil {
		port = strconv.Itoa(*r.Port)
	}

	fmt.Fprintf(tw, "input\t%s\n", strconv.Quote(r.Input))
	fmt.Fprintf(tw, "canonical\t%s\n", strconv.Quote(r.Canonical))
	fmt.Fprintf(tw, "hash\t%s\n", r.Hash)
	fmt.Fprintf(tw, "scheme\t%s\n", orAbsent(r.Scheme))
	fmt.Fprintf(tw, "userinfo\t%s\n", orAbsent(r.UserInfo))
	fmt.Fprintf(tw, "host\t%s\n", orAbsent(r.Host))
	fmt.Fprintf(tw, "port\t%s\n", port)
	fmt.Fprintf(tw, "path\t%s\n", orAbsent(r.Path))
	if len(r.Query) == 0 {
		fmt.Fprintf(tw, "query\t%s\n", absent)
	}
	for _, key := range slices.Sorted(maps.Keys(r.Query)) {
		fmt.Fprintf(tw, "query\t%s = %s\n", strconv.Quote(key), strconv.Quote(r.Query[key]))
	}
	fmt.Fprintf(tw, "fragment\t%s\n", orAbsent(r.Fragment))

	return errtrace.Wrap(tw.Flush())
}

// run scans every URI from cfg, or from in when cfg has none, and writes a
// report for each to out.
func run(cfg config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	enc := json.NewEncoder(out)
	emit := func(n int, input string) error {
		u := uri.Parse(input)
		logger.Debug("URI scanned", "index", n, "uri", u)

		r := newReport(input, u)
		if cfg.json {
			return errtrace.Wrap(enc.Encode(r))
		}
		if n > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return errtrace.Wrap(r.writeText(out))
	}

	if len(cfg.uris) > 0 {
		for n, input := range cfg.uris {
			if err := emit(n, input); err != nil {
				return err
			}
		}
		logger.Info("URIs processed", "count", len(cfg.uris))
		return nil
	}

	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := emit(n, line); err != nil {
			return err
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return errtrace.Wrap(fmt.Errorf("read input: %w", err))
	}
	logger.Info("URIs processed", "count", n)
	return nil
}
