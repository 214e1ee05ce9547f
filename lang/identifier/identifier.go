// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package identifier defines the validated names used for modules and structs.
//
// An identifier starts with an ASCII letter or underscore and continues with
// ASCII letters, digits, or underscores. The bare underscore "_" is reserved
// and is not a valid identifier.
package identifier

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier is returned when a string does not satisfy the
// identifier rules.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Identifier is a validated module or struct name.
type Identifier string

// New validates s and returns it as an Identifier.
func New(s string) (Identifier, error) {
	if !Valid(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return Identifier(s), nil
}

// String implements fmt.Stringer.
func (id Identifier) String() string { return string(id) }

// Valid reports whether s satisfies the identifier rules.
func Valid(s string) bool {
	if s == "" || s == "_" {
		return false
	}
	if !isLetter(s[0]) && s[0] != '_' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsValidChar(s[i]) {
			return false
		}
	}
	return true
}

// IsValidChar reports whether ch may appear in an identifier after the first
// character. The lexer uses this as its identifier-continue predicate.
func IsValidChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
