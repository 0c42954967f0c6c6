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
	"fmt"

	"github.com/damm-project/damm"
	flag "github.com/spf13/pflag"
)

type checkCmd struct {
	commandBase
}

func (*checkCmd) Name() string {
	return "check"
}

func (*checkCmd) Description() string {
	return "Prints the check symbol of each input."
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
}

func (c *checkCmd) Execute(ctx context.Context, args []string) error {
	inputs, err := c.inputs(args)
	if err != nil {
		return err
	}
	r := getReport()
	for _, in := range inputs {
		s, err2 := damm.CheckSymbol([]byte(in), c.alphabet.a)
		if err2 != nil {
			err = fmt.Errorf("%q: %w", in, err2)
			break
		}
		if err = r.Symbol(ctx, in, s); err != nil {
			break
		}
	}
	if err2 := r.Close(); err == nil {
		err = err2
	}
	return err
}
