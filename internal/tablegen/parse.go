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

// Package tablegen converts a text file of quasigroup matrices into the Go
// source of the matrices table used by the damm package.
//
// The input is a sequence of blocks separated by a blank line. The first line
// of each block is a label and is ignored. Every other line is a row of
// base-10 integers separated by single spaces.
package tablegen

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Matrix is the ordered list of rows of one block.
type Matrix [][]uint8

// Block is one blank-line separated segment of the input.
type Block struct {
	// Header is the first line of the block. It is not emitted.
	Header string
	// Line is the 1-based line number of Header in the input.
	Line int
	// Rows are the parsed lines following the header.
	Rows Matrix
}

// Key returns the key the block is stored under in the generated table.
func (b *Block) Key() uint8 {
	return uint8(len(b.Rows))
}

// Parse splits text into blocks and parses their rows.
//
// Whitespace only input returns no block. CRLF line endings are accepted.
func Parse(text string) ([]Block, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	lead := text[:len(text)-len(strings.TrimLeftFunc(text, unicode.IsSpace))]
	line := 1 + strings.Count(lead, "\n")

	var out []Block
	for _, chunk := range strings.Split(trimmed, "\n\n") {
		lines := strings.Split(chunk, "\n")
		b := Block{Header: lines[0], Line: line, Rows: Matrix{}}
		if len(lines)-1 > math.MaxUint8 {
			return nil, &BlockError{Header: b.Header, Line: line, Rows: len(lines) - 1}
		}
		for i, l := range lines[1:] {
			row, err := parseRow(l, line+1+i)
			if err != nil {
				return nil, err
			}
			b.Rows = append(b.Rows, row)
		}
		out = append(out, b)
		// The separator accounts for one extra line.
		line += len(lines) + 1
	}
	return out, nil
}

func parseRow(l string, line int) ([]uint8, error) {
	tokens := strings.Split(strings.TrimSpace(l), " ")
	row := make([]uint8, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				err = ne.Err
			}
			return nil, &RowError{Line: line, Token: tok, Err: err}
		}
		row = append(row, uint8(v))
	}
	return row, nil
}
