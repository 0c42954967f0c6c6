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
	"errors"

	"github.com/damm-project/damm"
	"github.com/damm-project/damm/internal/reporting"
	flag "github.com/spf13/pflag"
)

// getReport is replaced in tests.
var getReport = func() reporting.Report {
	return reporting.Get()
}

// commandBase holds what check and validate have in common.
type commandBase struct {
	alphabet alphabetFlag
}

func (c *commandBase) SetFlags(f *flag.FlagSet) {
	c.alphabet = alphabetFlag{name: "digit", a: damm.Digit()}
	f.VarP(&c.alphabet, "alphabet", "a", "symbols of the inputs; one of "+alphabetNames())
}

func (c *commandBase) inputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.New("at least one input is required")
	}
	return args, nil
}
