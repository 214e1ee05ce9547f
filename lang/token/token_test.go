// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package token

import "testing"

func TestLookupName(t *testing.T) {
	cases := []struct {
		input string
		want  Type
	}{
		{"u8", U8TYPE},
		{"u64", U64TYPE},
		{"u128", U128TYPE},
		{"bool", BOOLTYPE},
		{"address", ADDRESSTYPE},
		{"vector", VECTORTYPE},
		{"signer", SIGNERTYPE},
		{"true", TRUE},
		{"false", FALSE},
		// Longest-match: a keyword prefix inside a longer name is a NAME.
		{"vector2", NAME},
		{"u83", NAME},
		{"true3", NAME},
		{"boolean", NAME},
		{"Coin", NAME},
		{"U8", NAME}, // keywords are case-sensitive
	}
	for _, c := range cases {
		if got := LookupName(c.input); got != c.want {
			t.Errorf("LookupName(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{EOF, "EOF"},
		{NAME, "NAME"},
		{U64LIT, "U64LIT"},
		{VECTORTYPE, "vector"},
		{COLONCOLON, "::"},
		{COMMA, ","},
	}
	for _, c := range cases {
		if got := c.typ.String(); got != c.want {
			t.Errorf("%d.String() = %q, want %q", c.typ, got, c.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	if !VECTORTYPE.IsKeyword() || !TRUE.IsKeyword() {
		t.Error("keyword tokens not classified as keywords")
	}
	if NAME.IsKeyword() || COLONCOLON.IsKeyword() || EOF.IsKeyword() {
		t.Error("non-keyword token classified as keyword")
	}
	if !WHITESPACE.IsWhitespace() {
		t.Error("WHITESPACE.IsWhitespace() = false")
	}
	if NAME.IsWhitespace() {
		t.Error("NAME.IsWhitespace() = true")
	}
}
