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

	"github.com/damm-project/damm/internal/tablegen"
	flag "github.com/spf13/pflag"
)

type genCmd struct {
}

func (*genCmd) Name() string {
	return "gen"
}

func (*genCmd) Description() string {
	return "Prints the Go source of the quasigroup table from a text file.\nDefaults to damm.txt in the current directory."
}

func (*genCmd) SetFlags(f *flag.FlagSet) {
}

func (*genCmd) Execute(ctx context.Context, args []string) error {
	src := "damm.txt"
	if len(args) == 1 {
		src = args[0]
	} else if len(args) > 1 {
		return errors.New("only specify one source")
	}
	return tablegen.Generate(src, stdout)
}
