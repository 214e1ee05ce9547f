// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package token defines the lexical token types for the type-tag and
// transaction-argument grammar.
//
// The token set is closed: type keywords, boolean literals, names, address
// literals, width-tagged integer literals, byte-string literals, whitespace,
// the four punctuation marks, and a synthetic end-of-input marker.
package token

import "fmt"

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

// Position tracks the source location of a token.
type Position struct {
	Column int // 1-based column
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("column %d", p.Column)
}

// Type is the set of lexical token types.
type Type int

const (
	// Special tokens
	ILLEGAL Type = iota
	EOF
	WHITESPACE

	// Literals
	NAME    // Coin, my_module
	ADDRESS // 0x1, 0xdeadbeef
	U8LIT   // 255u8 (literal carries the digits only)
	U64LIT  // 42, 42u64
	U128LIT // 42u128
	BYTES   // x"dead" or b"ascii" (literal carries hex-normalized content)

	// Keywords
	keywordStart
	U8TYPE      // u8
	U64TYPE     // u64
	U128TYPE    // u128
	BOOLTYPE    // bool
	ADDRESSTYPE // address
	VECTORTYPE  // vector
	SIGNERTYPE  // signer
	TRUE        // true
	FALSE       // false
	keywordEnd

	// Punctuation
	COLONCOLON // ::
	LT         // <
	GT         // >
	COMMA      // ,
)

var tokenNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	WHITESPACE: "WHITESPACE",

	NAME:    "NAME",
	ADDRESS: "ADDRESS",
	U8LIT:   "U8LIT",
	U64LIT:  "U64LIT",
	U128LIT: "U128LIT",
	BYTES:   "BYTES",

	U8TYPE:      "u8",
	U64TYPE:     "u64",
	U128TYPE:    "u128",
	BOOLTYPE:    "bool",
	ADDRESSTYPE: "address",
	VECTORTYPE:  "vector",
	SIGNERTYPE:  "signer",
	TRUE:        "true",
	FALSE:       "false",

	COLONCOLON: "::",
	LT:         "<",
	GT:         ">",
	COMMA:      ",",
}

// String returns the string form of a token type.
func (t Type) String() string {
	if int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword returns true if the token is a reserved spelling.
func (t Type) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsWhitespace returns true for the whitespace token. Whitespace tokens are
// dropped before parsing.
func (t Type) IsWhitespace() bool {
	return t == WHITESPACE
}

// keywords maps reserved spellings to token types.
var keywords map[string]Type

func init() {
	keywords = make(map[string]Type)
	for i := keywordStart + 1; i < keywordEnd; i++ {
		keywords[tokenNames[i]] = i
	}
}

// LookupName classifies a completed name run: reserved spellings become their
// keyword token, everything else is a NAME. Classification happens only after
// the full run is consumed, so "vector2" is a NAME, never "vector" plus
// leftover.
func LookupName(name string) Type {
	if tok, ok := keywords[name]; ok {
		return tok
	}
	return NAME
}
