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

package tablegen

import (
	"fmt"
	"math"
)

// RowError is returned by Parse when a row holds a token that is not a
// base-10 integer in the uint8 range.
//
// Only plain digits are accepted: a sign ("+1", "-1") or a digit separator
// ("1_0") is rejected with strconv.ErrSyntax.
type RowError struct {
	Line  int    // 1-based line of the row in the input
	Token string // the offending token, possibly empty
	Err   error  // strconv.ErrSyntax or strconv.ErrRange
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: invalid token %q: %s", e.Line, e.Token, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// BlockError is returned by Parse when a block has more rows than a uint8
// key can count.
type BlockError struct {
	Header string
	Line   int
	Rows   int
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("line %d: block %q has %d rows, at most %d are supported", e.Line, e.Header, e.Rows, math.MaxUint8)
}

var (
	_ error = (*RowError)(nil)
	_ error = (*BlockError)(nil)
)
