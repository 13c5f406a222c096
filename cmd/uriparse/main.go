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

// Command uriparse scans URIs and prints their components.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/docopt/docopt-go"

	"github.com/jplu/urikit/internal/log"
)

const version = "0.1.0"

const usage = `URI inspection tool.

Scans each URI given on the command line, or one per line from standard
input when none is given, and prints its components. Passwords are masked
in the canonical form and the user info; the input line is echoed as given.

Usage:
  uriparse [--json] [--dev] [--log-level=<lvl>] [<uri>...]
  uriparse -h | --help
  uriparse --version

Options:
  --json             Print one JSON object per URI.
  --dev              Use the development log handler.
  --log-level=<lvl>  Log level: debug, info, warn or error. [default: info]
  -h --help          Show this screen.
  --version          Show version.
`

type config struct {
	json     bool
	dev      bool
	logLevel slog.Level
	uris     []string
}

func parseArgs(parser *docopt.Parser, argv []string) (config, error) {
	opts, err := parser.ParseArgs(usage, argv, version)
	if err != nil {
		return config{}, errtrace.Wrap(err)
	}

	var cfg config
	if cfg.json, err = opts.Bool("--json"); err != nil {
		return config{}, errtrace.Wrap(err)
	}
	if cfg.dev, err = opts.Bool("--dev"); err != nil {
		return config{}, errtrace.Wrap(err)
	}

	levelName, err := opts.String("--log-level")
	if err != nil {
		return config{}, errtrace.Wrap(err)
	}
	if cfg.logLevel, err = log.ParseLevel(levelName); err != nil {
		return config{}, errtrace.Wrap(fmt.Errorf("invalid --log-level %q: %w", levelName, err))
	}

	if uris, ok := opts["<uri>"].([]string); ok {
		cfg.uris = uris
	}
	return cfg, nil
}

func main() {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}
	cfg, err := parseArgs(parser, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.New(os.Stderr, cfg.logLevel, cfg.dev)
	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("uriparse failed", "error", err)
		os.Exit(1)
	}
}
