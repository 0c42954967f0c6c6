// Copyright 2023 The Damm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporting prints check symbols and validation results in a format
// suited to where damm runs.
package reporting

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Report receives the results of the check and validate subcommands.
type Report interface {
	io.Closer
	// Symbol reports the check symbol computed for input.
	Symbol(ctx context.Context, input string, symbol byte) error
	// Validated reports whether input ends with a correct check symbol.
	Validated(ctx context.Context, input string, valid bool) error
}

// Get returns the right reporting implementation based on the current
// environment.
func Get() *MultiReport {
	r := &MultiReport{}

	// The following reporters all emit to stdout so they are mutually
	// exclusive.
	switch {
	case os.Getenv("GITHUB_RUN_ID") != "":
		// On GitHub Actions. Emits GitHub Workflows commands.
		r.Reporters = append(r.Reporters, &github{out: os.Stdout})
	case os.Getenv("TERM") != "dumb" && isatty.IsTerminal(os.Stdout.Fd()):
		// Active terminal. Colors!
		r.Reporters = append(r.Reporters, &interactive{
			out: colorable.NewColorableStdout(),
		})
	default:
		// Anything else, e.g. redirected output.
		r.Reporters = append(r.Reporters, &basic{out: os.Stdout})
	}
	return r
}

type basic struct {
	out io.Writer
}

func (b *basic) Close() error {
	return nil
}

func (b *basic) Symbol(ctx context.Context, input string, symbol byte) error {
	_, err := fmt.Fprintf(b.out, "%s: %c\n", input, symbol)
	return err
}

func (b *basic) Validated(ctx context.Context, input string, valid bool) error {
	_, err := fmt.Fprintf(b.out, "%s: %s\n", input, verdict(valid))
	return err
}

// github is the Report implementation when running inside a GitHub Actions
// Workflow.
//
// See https://docs.github.com/en/actions/using-workflows/workflow-commands-for-github-actions
type github struct {
	out io.Writer
}

func (g *github) Close() error {
	return nil
}

func (g *github) Symbol(ctx context.Context, input string, symbol byte) error {
	_, err := fmt.Fprintf(g.out, "::notice ::title=damm::%s: %c\n", input, symbol)
	return err
}

func (g *github) Validated(ctx context.Context, input string, valid bool) error {
	level := "notice"
	if !valid {
		level = "error"
	}
	_, err := fmt.Fprintf(g.out, "::%s ::title=damm::%s: %s\n", level, input, verdict(valid))
	return err
}

type interactive struct {
	out io.Writer
}

func (i *interactive) Close() error {
	return nil
}

func (i *interactive) Symbol(ctx context.Context, input string, symbol byte) error {
	_, err := fmt.Fprintf(i.out, "%s%s%s%s%c%s\n", reset, input, reset, fgHiCyan, symbol, reset)
	return err
}

func (i *interactive) Validated(ctx context.Context, input string, valid bool) error {
	c := fgGreen
	if !valid {
		c = fgRed
	}
	_, err := fmt.Fprintf(i.out, "%s[%s%s%s] %s%s%s\n", reset, c, verdict(valid), reset, bold, input, reset)
	return err
}

func verdict(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
