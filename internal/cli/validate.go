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

package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/damm-project/damm"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

// ErrInvalid is returned by the validate subcommand when at least one input
// does not end with its check symbol.
//
// The details will have been provided via the reporter.
var ErrInvalid = errors.New("an input failed validation")

type validateCmd struct {
	commandBase
}

func (*validateCmd) Name() string {
	return "validate"
}

func (*validateCmd) Description() string {
	return "Verifies that each input ends with its check symbol."
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
}

func (c *validateCmd) Execute(ctx context.Context, args []string) error {
	inputs, err := c.inputs(args)
	if err != nil {
		return err
	}
	valid, err := validateAll(ctx, c.alphabet.a, inputs)
	if err != nil {
		return err
	}
	r := getReport()
	failed := false
	for i, in := range inputs {
		if err = r.Validated(ctx, in, valid[i]); err != nil {
			break
		}
		failed = failed || !valid[i]
	}
	if err2 := r.Close(); err == nil {
		err = err2
	}
	if err == nil && failed {
		err = ErrInvalid
	}
	return err
}

// validateAll validates inputs concurrently. The result is in input order.
func validateAll(ctx context.Context, a damm.Alphabet, inputs []string) ([]bool, error) {
	valid := make([]bool, len(inputs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i := range inputs {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := damm.IsValid([]byte(inputs[i]), a)
			if err != nil {
				return fmt.Errorf("%q: %w", inputs[i], err)
			}
			valid[i] = ok
			return nil
		})
	}
	return valid, eg.Wait()
}
