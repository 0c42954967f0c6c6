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
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

const (
	header = "package damm\n\nvar matrices map[uint8][][]uint8 = map[uint8][][]uint8{\n"
	footer = "}\n"
)

// Render writes t as the Go source of the damm package's matrices variable.
//
// The output is not gofmt'ed: rows are emitted as comma separated integers
// without spaces.
func Render(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	var buf []byte
	for _, k := range t.keys {
		buf = append(buf[:0], '\t')
		buf = strconv.AppendUint(buf, uint64(k), 10)
		buf = append(buf, ": [][]uint8{\n"...)
		bw.Write(buf)
		for _, row := range t.m[k] {
			buf = append(buf[:0], "\t\t{"...)
			for i, v := range row {
				if i != 0 {
					buf = append(buf, ',')
				}
				buf = strconv.AppendUint(buf, uint64(v), 10)
			}
			buf = append(buf, "},\n"...)
			bw.Write(buf)
		}
		bw.WriteString("\t},\n")
	}
	bw.WriteString(footer)
	// bufio.Writer keeps the first write error and returns it here.
	return bw.Flush()
}

// Generate reads the input file at path and writes the generated source to w.
//
// Nothing is written when the input cannot be read or parsed.
func Generate(path string, w io.Writer) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	blocks, err := Parse(string(b))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t := NewTable(blocks)
	log.Printf("parsed %d blocks from %s into %d matrices", len(blocks), path, t.Len())
	return Render(w, t)
}
