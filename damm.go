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

//go:generate go run regen_matrices.go

// Package damm computes and verifies Damm check symbols.
//
// The Damm algorithm folds every symbol of the input through a weakly totally
// anti-symmetric quasigroup with a zero diagonal. The final interim symbol is
// the check symbol; appending it brings the interim back to zero. It detects
// all single symbol errors and all adjacent transpositions.
//
// The quasigroups live in matrices.go, which is generated from damm.txt.
package damm

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedAlphabet is returned by New when there is no quasigroup for
// the size of the alphabet.
var ErrUnsupportedAlphabet = errors.New("unsupported alphabet size")

// Status is the running state of a check symbol computation.
//
// Write feeds symbols. A failed Write leaves the state untouched.
type Status interface {
	io.Writer
	// IsValid returns true when the symbols written so far end with a correct
	// check symbol.
	IsValid() bool
	// CheckSymbol returns the symbol to append to the symbols written so far.
	CheckSymbol() byte
	// Reset returns to the initial state.
	Reset()
}

// New returns a Status computing check symbols over alphabet.
func New(alphabet Alphabet) (Status, error) {
	sz := alphabet.Size()
	mat, ok := matrices[sz]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlphabet, sz)
	}
	return &status{alphabet: alphabet, mat: mat}, nil
}

// CheckSymbol returns the check symbol of b.
func CheckSymbol(b []byte, alphabet Alphabet) (byte, error) {
	st, err := New(alphabet)
	if err != nil {
		return 0, err
	}
	if _, err := st.Write(b); err != nil {
		return 0, err
	}
	return st.CheckSymbol(), nil
}

// CheckDigit returns the check digit of a decimal string.
func CheckDigit(b []byte) (byte, error) {
	return CheckSymbol(b, Digit())
}

// CheckUpperHex returns the check symbol of an upper case hexadecimal string.
func CheckUpperHex(b []byte) (byte, error) {
	return CheckSymbol(b, UpperHex())
}

// CheckLowerHex returns the check symbol of a lower case hexadecimal string.
func CheckLowerHex(b []byte) (byte, error) {
	return CheckSymbol(b, LowerHex())
}

// IsValid returns true if b ends with its check symbol.
func IsValid(b []byte, alphabet Alphabet) (bool, error) {
	st, err := New(alphabet)
	if err != nil {
		return false, err
	}
	if _, err := st.Write(b); err != nil {
		return false, err
	}
	return st.IsValid(), nil
}

func IsValidDigit(b []byte) (bool, error) {
	return IsValid(b, Digit())
}

func IsValidUpperHex(b []byte) (bool, error) {
	return IsValid(b, UpperHex())
}

func IsValidLowerHex(b []byte) (bool, error) {
	return IsValid(b, LowerHex())
}

type status struct {
	interim  uint8
	alphabet Alphabet
	mat      [][]uint8
}

func (s *status) Write(p []byte) (int, error) {
	interim := s.interim
	for _, c := range p {
		o, err := s.alphabet.Ord(c)
		if err != nil {
			return 0, err
		}
		interim = s.mat[interim][o]
	}
	s.interim = interim
	return len(p), nil
}

func (s *status) IsValid() bool {
	return s.interim == 0
}

func (s *status) CheckSymbol() byte {
	return s.alphabet.Chr(s.interim)
}

func (s *status) Reset() {
	s.interim = 0
}

var _ Status = (*status)(nil)
