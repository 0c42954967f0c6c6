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
	"testing"

	"github.com/google/go-cmp/cmp"
	flag "github.com/spf13/pflag"
)

func TestAlphabetFlag(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		args     []string
		want     string
		wantSize uint8
		wantErr  string
	}{
		{
			name:     "default",
			args:     nil,
			want:     "digit",
			wantSize: 10,
		},
		{
			name:     "upper",
			args:     []string{"--alphabet", "upper-hex"},
			want:     "upper-hex",
			wantSize: 16,
		},
		{
			name:     "short lower",
			args:     []string{"-a", "lower-hex"},
			want:     "lower-hex",
			wantSize: 16,
		},
		{
			name:    "unknown",
			args:    []string{"-a", "octal"},
			wantErr: `invalid argument "octal" for "-a, --alphabet" flag: must be one of digit, lower-hex, upper-hex`,
		},
	}
	for i := range data {
		i := i
		t.Run(data[i].name, func(t *testing.T) {
			t.Parallel()
			c := commandBase{}
			f := flag.NewFlagSet("test", flag.ContinueOnError)
			c.SetFlags(f)

			err := f.Parse(data[i].args)
			if err != nil {
				if data[i].wantErr == "" {
					t.Fatal(err)
				}
				if diff := cmp.Diff(data[i].wantErr, err.Error()); diff != "" {
					t.Errorf("Unexpected error: %s", diff)
				}
				return
			}
			if data[i].wantErr != "" {
				t.Fatalf("Wanted error %q, got nil", data[i].wantErr)
			}
			if diff := cmp.Diff(data[i].want, c.alphabet.String()); diff != "" {
				t.Errorf("unexpected diff:\n%s", diff)
			}
			if got := c.alphabet.a.Size(); got != data[i].wantSize {
				t.Errorf("got size %d, want %d", got, data[i].wantSize)
			}
		})
	}
}
