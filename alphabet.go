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

package damm

import "fmt"

// Alphabet maps symbols to their index in a quasigroup and back.
type Alphabet interface {
	// Chr returns the symbol at index x. x must be lower than Size().
	Chr(x uint8) byte
	// Ord returns the index of c, or an *InvalidSymbolError.
	Ord(c byte) (uint8, error)
	// Size is the number of symbols. It selects the quasigroup.
	Size() uint8
}

// Digit returns the alphabet of decimal digits.
func Digit() Alphabet {
	return digit{}
}

// UpperHex returns the alphabet of upper case hexadecimal digits.
func UpperHex() Alphabet {
	return hex{'A', "[0-9A-F]"}
}

// LowerHex returns the alphabet of lower case hexadecimal digits.
func LowerHex() Alphabet {
	return hex{'a', "[0-9a-f]"}
}

// InvalidSymbolError is returned when a byte is not part of an alphabet.
type InvalidSymbolError struct {
	Symbol byte
	// Class is the character class accepted by the alphabet, e.g. "[0-9]".
	Class string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("got invalid character '0x%02x', must be %s", e.Symbol, e.Class)
}

type digit struct{}

func (digit) Chr(x uint8) byte {
	return '0' + x
}

func (digit) Ord(c byte) (uint8, error) {
	if c < '0' || c > '9' {
		return 0, &InvalidSymbolError{Symbol: c, Class: "[0-9]"}
	}
	return c - '0', nil
}

func (digit) Size() uint8 {
	return 10
}

// hex is a hexadecimal alphabet whose letters start at ten.
type hex struct {
	ten   byte
	class string
}

func (h hex) Chr(x uint8) byte {
	if x < 10 {
		return '0' + x
	}
	return h.ten + x - 10
}

func (h hex) Ord(c byte) (uint8, error) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', nil
	case h.ten <= c && c < h.ten+6:
		return c - h.ten + 10, nil
	}
	return 0, &InvalidSymbolError{Symbol: c, Class: h.class}
}

func (hex) Size() uint8 {
	return 16
}
