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
	"sort"
	"strings"

	"github.com/damm-project/damm"
	flag "github.com/spf13/pflag"
)

var alphabets = map[string]func() damm.Alphabet{
	"digit":     damm.Digit,
	"upper-hex": damm.UpperHex,
	"lower-hex": damm.LowerHex,
}

func alphabetNames() string {
	names := make([]string, 0, len(alphabets))
	for n := range alphabets {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// alphabetFlag selects one of the alphabets by name.
type alphabetFlag struct {
	name string
	a    damm.Alphabet
}

var _ flag.Value = (*alphabetFlag)(nil)

func (v *alphabetFlag) String() string {
	return v.name
}

func (v *alphabetFlag) Set(s string) error {
	f, ok := alphabets[s]
	if !ok {
		return errors.New("must be one of " + alphabetNames())
	}
	v.name = s
	v.a = f()
	return nil
}

func (v *alphabetFlag) Type() string {
	return "alphabet"
}
