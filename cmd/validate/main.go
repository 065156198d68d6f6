// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

// validate is a CLI tool to validate club profile YAML files.
//
// Usage:
//
//	validate -f club.yaml
//	validate --file club.yaml
//
// Exit codes:
//   - 0: Configuration is valid
//   - 1: Configuration is invalid (parse or validation error)
//   - 2: Usage error (missing required flag)
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ManuGH/spielplan/internal/config"
	xglog "github.com/ManuGH/spielplan/internal/log"
	"github.com/ManuGH/spielplan/internal/validate"
	"github.com/ManuGH/spielplan/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var file string
	var showVersion bool

	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&file, "file", "", "path to YAML club profile")
	fs.StringVar(&file, "f", "", "path to YAML club profile (shorthand)")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	if file == "" {
		fmt.Fprintln(stderr, "Error: --file is required")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  validate -f club.yaml")
		fmt.Fprintln(stderr, "  validate --file club.yaml")
		return 2
	}

	xglog.Configure(xglog.Config{Level: "warn", Output: stderr})

	// Load runs strict parsing and validation in one go.
	cfg, err := config.NewLoader(file, version.Version).Load()
	if err != nil {
		var ve validate.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(stderr, "Validation error in %s:\n", file)
			for _, e := range ve.Errors() {
				fmt.Fprintf(stderr, "  %s: %s\n", e.Field, e.Message)
			}
			return 1
		}
		fmt.Fprintf(stderr, "Configuration error in %s:\n", file)
		fmt.Fprintf(stderr, "  %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "✓ %s is valid\n", file)
	fmt.Fprintf(stdout, "  club: %s (%d name variants)\n", cfg.ClubName, len(cfg.Variants))
	fmt.Fprintf(stdout, "  fields: %d, section policy: %s\n", len(cfg.Fields), cfg.SectionPolicy)

	// Load already parsed the file, so this cannot fail on a valid profile.
	fc, err := config.LoadFileConfig(file)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error in %s:\n  %v\n", file, err)
		return 1
	}
	if keys := fc.Overrides(); len(keys) > 0 {
		fmt.Fprintf(stdout, "  overrides: %s\n", strings.Join(keys, ", "))
	} else {
		fmt.Fprintln(stdout, "  overrides: none (built-in profile)")
	}
	return 0
}
