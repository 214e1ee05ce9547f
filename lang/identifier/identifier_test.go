// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package identifier

import (
	"errors"
	"testing"
)

func TestValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "Coin", true},
		{"lower", "coin", true},
		{"underscore_middle", "my_module", true},
		{"underscore_trailing", "S_", true},
		{"underscore_leading", "_hidden", true},
		{"digits", "X32_", true},
		{"single_letter", "M", true},
		{"empty", "", false},
		{"bare_underscore", "_", false},
		{"leading_digit", "1abc", false},
		{"space", "a b", false},
		{"coloncolon", "a::b", false},
		{"hyphen", "my-module", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Valid(c.input); got != c.want {
				t.Errorf("Valid(%q) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	id, err := New("Coin")
	if err != nil {
		t.Fatalf("New(Coin): %v", err)
	}
	if id.String() != "Coin" {
		t.Errorf("String() = %q, want %q", id.String(), "Coin")
	}

	if _, err := New("_"); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("New(_) error = %v, want ErrInvalidIdentifier", err)
	}
}

func TestIsValidChar(t *testing.T) {
	for _, ch := range []byte("azAZ09_") {
		if !IsValidChar(ch) {
			t.Errorf("IsValidChar(%q) = false, want true", ch)
		}
	}
	for _, ch := range []byte(" :<>,-\"") {
		if IsValidChar(ch) {
			t.Errorf("IsValidChar(%q) = true, want false", ch)
		}
	}
}
