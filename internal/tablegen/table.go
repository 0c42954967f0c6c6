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

import "log"

// Table maps a row count to the matrix of the last block having that many
// rows.
//
// Keys are kept in the order they were first seen so rendering is stable.
type Table struct {
	keys []uint8
	m    map[uint8]Matrix
}

// NewTable builds the table from blocks, in order.
//
// A block whose row count was already used replaces the previous matrix.
func NewTable(blocks []Block) *Table {
	t := &Table{m: map[uint8]Matrix{}}
	for i := range blocks {
		b := &blocks[i]
		k := b.Key()
		if _, ok := t.m[k]; ok {
			log.Printf("block %q at line %d replaces the previous matrix with key %d", b.Header, b.Line, k)
		} else {
			t.keys = append(t.keys, k)
		}
		t.m[k] = b.Rows
	}
	return t
}

// Keys returns the keys in rendering order.
func (t *Table) Keys() []uint8 {
	return append([]uint8(nil), t.keys...)
}

// Get returns a copy of the matrix stored under key.
func (t *Table) Get(key uint8) (Matrix, bool) {
	m, ok := t.m[key]
	if !ok {
		return nil, false
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]uint8(nil), row...)
	}
	return out, true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}
