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

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckSymbol(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       string
		alphabet Alphabet
		want     byte
	}{
		{"", Digit(), '0'},
		{"572", Digit(), '4'},
		{"0123456789", Digit(), '4'},
		{"9876", Digit(), '9'},
		{"11223334442222", Digit(), '5'},
		{"DEADBEEF", UpperHex(), 'A'},
		{"CAFE", UpperHex(), 'E'},
		{"deadbeef", LowerHex(), 'a'},
		{"cafe", LowerHex(), 'e'},
	}
	for _, line := range data {
		line := line
		t.Run(line.in, func(t *testing.T) {
			t.Parallel()
			got, err := CheckSymbol([]byte(line.in), line.alphabet)
			if err != nil {
				t.Fatal(err)
			}
			if got != line.want {
				t.Fatalf("got %q, want %q", got, line.want)
			}
			ok, err := IsValid(append([]byte(line.in), got), line.alphabet)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatalf("%q%c is not valid", line.in, got)
			}
		})
	}
}

func TestShortcuts(t *testing.T) {
	t.Parallel()
	if c, err := CheckDigit([]byte("572")); err != nil || c != '4' {
		t.Fatalf("CheckDigit: %q, %v", c, err)
	}
	if c, err := CheckUpperHex([]byte("CAFE")); err != nil || c != 'E' {
		t.Fatalf("CheckUpperHex: %q, %v", c, err)
	}
	if c, err := CheckLowerHex([]byte("cafe")); err != nil || c != 'e' {
		t.Fatalf("CheckLowerHex: %q, %v", c, err)
	}
	if ok, err := IsValidDigit([]byte("5724")); err != nil || !ok {
		t.Fatalf("IsValidDigit: %t, %v", ok, err)
	}
	if ok, err := IsValidDigit([]byte("5742")); err != nil || ok {
		t.Fatalf("IsValidDigit: %t, %v", ok, err)
	}
	if ok, err := IsValidUpperHex([]byte("CAFEE")); err != nil || !ok {
		t.Fatalf("IsValidUpperHex: %t, %v", ok, err)
	}
	if ok, err := IsValidLowerHex([]byte("cafee")); err != nil || !ok {
		t.Fatalf("IsValidLowerHex: %t, %v", ok, err)
	}
}

// TestDetection verifies every adjacent transposition and every single
// substitution of a valid input is caught.
func TestDetection(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       string
		alphabet Alphabet
	}{
		{"0123456789", Digit()},
		{"11223334442222", Digit()},
		{"9876", Digit()},
		{"100101010102030", Digit()},
		{"0123456789ABCDEF", UpperHex()},
		{"FFEE00112D", UpperHex()},
		{"0123456789abcdef", LowerHex()},
		{"c0ffee", LowerHex()},
	}
	for _, line := range data {
		line := line
		t.Run(line.in, func(t *testing.T) {
			t.Parallel()
			a := line.alphabet
			b := []byte(line.in)
			c, err := CheckSymbol(b, a)
			if err != nil {
				t.Fatal(err)
			}
			b = append(b, c)
			for i := 0; i < len(b)-1; i++ {
				if b[i] == b[i+1] {
					continue
				}
				bb := append([]byte(nil), b...)
				bb[i], bb[i+1] = bb[i+1], bb[i]
				ok, err := IsValid(bb, a)
				if err != nil {
					t.Fatal(err)
				}
				if ok {
					t.Errorf("transposition not detected: %q", bb)
				}
			}
			for i := range b {
				for o := uint8(0); o < a.Size(); o++ {
					bb := append([]byte(nil), b...)
					bb[i] = a.Chr(o)
					ok, err := IsValid(bb, a)
					if err != nil {
						t.Fatal(err)
					}
					if want := bb[i] == b[i]; ok != want {
						t.Errorf("%q: got valid=%t, want %t", bb, ok, want)
					}
				}
			}
		})
	}
}

func TestInvalidSymbol(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       string
		alphabet Alphabet
		want     string
	}{
		{"12a4", Digit(), "got invalid character '0x61', must be [0-9]"},
		{"12 4", Digit(), "got invalid character '0x20', must be [0-9]"},
		{"CAFe", UpperHex(), "got invalid character '0x65', must be [0-9A-F]"},
		{"G", UpperHex(), "got invalid character '0x47', must be [0-9A-F]"},
		{"caFe", LowerHex(), "got invalid character '0x46', must be [0-9a-f]"},
		{"g", LowerHex(), "got invalid character '0x67', must be [0-9a-f]"},
	}
	for _, line := range data {
		line := line
		t.Run(line.in, func(t *testing.T) {
			t.Parallel()
			_, err := CheckSymbol([]byte(line.in), line.alphabet)
			var serr *InvalidSymbolError
			if !errors.As(err, &serr) {
				t.Fatalf("expected *InvalidSymbolError, got %v", err)
			}
			if diff := cmp.Diff(line.want, err.Error()); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
			if _, err := IsValid([]byte(line.in), line.alphabet); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()
	st, err := New(Digit())
	if err != nil {
		t.Fatal(err)
	}
	if !st.IsValid() {
		t.Fatal("initial state must be valid")
	}
	if _, err := st.Write([]byte("57")); err != nil {
		t.Fatal(err)
	}
	// A failed write must not change the state.
	if n, err := st.Write([]byte("2x")); err == nil || n != 0 {
		t.Fatalf("expected error, got %d, %v", n, err)
	}
	if n, err := st.Write([]byte("2")); err != nil || n != 1 {
		t.Fatalf("got %d, %v", n, err)
	}
	if got := st.CheckSymbol(); got != '4' {
		t.Fatalf("got %q", got)
	}
	if st.IsValid() {
		t.Fatal("572 must not be valid")
	}
	if _, err := st.Write([]byte{'4'}); err != nil {
		t.Fatal(err)
	}
	if !st.IsValid() {
		t.Fatal("5724 must be valid")
	}
	st.Reset()
	if got := st.CheckSymbol(); got != '0' {
		t.Fatalf("got %q after Reset", got)
	}
}

type octal struct{}

func (octal) Chr(x uint8) byte { return '0' + x }

func (octal) Ord(c byte) (uint8, error) { return c - '0', nil }

func (octal) Size() uint8 { return 8 }

func TestNew_Unsupported(t *testing.T) {
	t.Parallel()
	_, err := New(octal{})
	if !errors.Is(err, ErrUnsupportedAlphabet) {
		t.Fatalf("expected ErrUnsupportedAlphabet, got %v", err)
	}
	if diff := cmp.Diff("unsupported alphabet size: 8", err.Error()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := CheckSymbol([]byte("7"), octal{}); !errors.Is(err, ErrUnsupportedAlphabet) {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := IsValid([]byte("7"), octal{}); !errors.Is(err, ErrUnsupportedAlphabet) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAlphabet_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, a := range []Alphabet{Digit(), UpperHex(), LowerHex()} {
		for x := uint8(0); x < a.Size(); x++ {
			o, err := a.Ord(a.Chr(x))
			if err != nil {
				t.Fatal(err)
			}
			if o != x {
				t.Fatalf("%T: Ord(Chr(%d)) = %d", a, x, o)
			}
		}
	}
}
