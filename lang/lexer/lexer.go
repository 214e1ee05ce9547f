// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package lexer implements a single-pass, no-backtracking lexer for the
// type-tag and transaction-argument grammar.
//
// Unlike a source-language lexer there is no error recovery: the first
// malformed character aborts tokenization with a descriptive error. The lexer
// emits whitespace tokens so runs stay correctly delimited; the parser drops
// them before use.
package lexer

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/movechain/go-move/lang/identifier"
	"github.com/movechain/go-move/lang/token"
)

var (
	// ErrUnrecognizedToken is returned for a character that cannot begin or
	// continue any token, including a lone ':' and a '0x' prefix with no
	// following hex digit.
	ErrUnrecognizedToken = errors.New("unrecognized token")

	// ErrInvalidSuffix is returned when an integer literal carries a suffix
	// other than u8, u64, or u128.
	ErrInvalidSuffix = errors.New("invalid suffix")

	// ErrUnterminatedString is returned for a byte-string literal with no
	// closing quote.
	ErrUnterminatedString = errors.New("unterminated byte string")
)

// Lexer holds the state for a single-pass tokenization run.
type Lexer struct {
	input []byte

	// pos is the index into input of the next byte to be loaded into ch.
	// After advance(), ch == input[pos-1] and pos points one past it.
	pos int
	col int // 1-based current column number

	ch  byte // current character; only meaningful while !eof
	eof bool // true once the cursor has moved past the last input byte
}

// New creates a new Lexer for the given input string.
func New(input string) *Lexer {
	l := &Lexer{
		input: []byte(input),
	}
	l.advance() // prime l.ch with the first byte
	return l
}

// advance moves to the next byte in the input. When the end of input is
// reached, eof is set; ch is cleared so the classification predicates all
// reject it, but end of input is tracked by eof alone, never by a byte
// value — a literal NUL in the input stays an ordinary (and unrecognized)
// character.
func (l *Lexer) advance() {
	l.col++
	if l.pos >= len(l.input) {
		l.ch = 0
		l.eof = true
		return
	}
	l.ch = l.input[l.pos]
	l.pos++
}

// currentPos returns a token.Position capturing the lexer's state right now.
// Call this before consuming the first character of a token.
func (l *Lexer) currentPos() token.Position {
	// After advance(), pos is already one past ch, so the byte offset of ch
	// is pos-1.
	return token.Position{
		Column: l.col,
		Offset: l.pos - 1,
	}
}

// makeToken constructs a token with the given type, literal, and position.
func makeToken(typ token.Type, literal string, pos token.Position) token.Token {
	return token.Token{Type: typ, Literal: literal, Pos: pos}
}

// NextToken scans and returns the next token from the input. After the end of
// input is reached, subsequent calls continue returning EOF tokens.
func (l *Lexer) NextToken() (token.Token, error) {
	pos := l.currentPos()
	if l.eof {
		return makeToken(token.EOF, "", pos), nil
	}
	ch := l.ch

	l.advance() // consume ch; from here on, l.ch is the character AFTER ch

	switch {
	case ch == '<':
		return makeToken(token.LT, "<", pos), nil
	case ch == '>':
		return makeToken(token.GT, ">", pos), nil
	case ch == ',':
		return makeToken(token.COMMA, ",", pos), nil

	case ch == ':':
		if l.ch == ':' {
			l.advance()
			return makeToken(token.COLONCOLON, "::", pos), nil
		}
		return token.Token{}, fmt.Errorf("%w: lone ':' at %s", ErrUnrecognizedToken, pos)

	// Address literal: 0x/0X followed by at least one hex digit. The literal
	// keeps the prefix, normalized to lowercase "0x".
	case ch == '0' && (l.ch == 'x' || l.ch == 'X'):
		l.advance() // consume 'x'/'X'
		if !isHexDigit(l.ch) {
			return token.Token{}, fmt.Errorf("%w: hex literal with no digits at %s", ErrUnrecognizedToken, pos)
		}
		buf := []byte{'0', 'x'}
		for isHexDigit(l.ch) {
			buf = append(buf, l.ch)
			l.advance()
		}
		return makeToken(token.ADDRESS, string(buf), pos), nil

	case isDigit(ch):
		return l.readNumberFromFirst(ch, pos)

	// Byte-string literal b"...": arbitrary ASCII content, stored as its hex
	// encoding.
	case ch == 'b' && l.ch == '"':
		l.advance() // consume '"'
		return l.readByteStringBody(pos)

	// Byte-string literal x"...": hex digits only, stored verbatim.
	case ch == 'x' && l.ch == '"':
		l.advance() // consume '"'
		return l.readHexStringBody(pos)

	case isWhitespace(ch):
		buf := []byte{ch}
		for isWhitespace(l.ch) {
			buf = append(buf, l.ch)
			l.advance()
		}
		return makeToken(token.WHITESPACE, string(buf), pos), nil

	case isLetter(ch):
		buf := []byte{ch}
		for identifier.IsValidChar(l.ch) {
			buf = append(buf, l.ch)
			l.advance()
		}
		name := string(buf)
		return makeToken(token.LookupName(name), name, pos), nil
	}

	return token.Token{}, fmt.Errorf("%w: %q at %s", ErrUnrecognizedToken, string(ch), pos)
}

// Tokenize returns all tokens produced by repeated calls to NextToken, not
// including the final EOF.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// ---------------------------------------------------------------------------
// Internal readers — each assumes the opening character(s) have already been
// consumed inside NextToken.
// ---------------------------------------------------------------------------

// readNumberFromFirst parses an integer literal given the already-consumed
// first digit. Digits accumulate into the literal body; a non-digit
// alphanumeric switches to suffix collection, and the finished suffix must be
// exactly u8, u64, or u128. Without a suffix the literal defaults to the
// 64-bit kind. The returned token carries the un-suffixed digit text; range
// checking happens later, when the text is converted to a fixed-width number.
func (l *Lexer) readNumberFromFirst(first byte, pos token.Position) (token.Token, error) {
	num := []byte{first}
	for isDigit(l.ch) {
		num = append(num, l.ch)
		l.advance()
	}
	if !isAlphanumeric(l.ch) {
		return makeToken(token.U64LIT, string(num), pos), nil
	}
	var suffix []byte
	for isAlphanumeric(l.ch) {
		suffix = append(suffix, l.ch)
		l.advance()
	}
	var typ token.Type
	switch string(suffix) {
	case "u8":
		typ = token.U8LIT
	case "u64":
		typ = token.U64LIT
	case "u128":
		typ = token.U128LIT
	default:
		return token.Token{}, fmt.Errorf("%w: %q at %s", ErrInvalidSuffix, string(suffix), pos)
	}
	return makeToken(typ, string(num), pos), nil
}

// readByteStringBody reads the content of a b"..." literal after the opening
// quote. Content must be ASCII (any ASCII byte, NUL included); the token
// literal is the hex encoding of the content bytes.
func (l *Lexer) readByteStringBody(pos token.Position) (token.Token, error) {
	var buf []byte
	for {
		switch {
		case l.eof:
			return token.Token{}, fmt.Errorf("%w: b\"... at %s", ErrUnterminatedString, pos)
		case l.ch == '"':
			l.advance()
			return makeToken(token.BYTES, hex.EncodeToString(buf), pos), nil
		case l.ch >= 0x80:
			return token.Token{}, fmt.Errorf("%w: non-ASCII byte in b\"...\" at %s", ErrUnrecognizedToken, pos)
		default:
			buf = append(buf, l.ch)
			l.advance()
		}
	}
}

// readHexStringBody reads the content of an x"..." literal after the opening
// quote. Content must be hex digits; the token literal is the content
// verbatim.
func (l *Lexer) readHexStringBody(pos token.Position) (token.Token, error) {
	var buf []byte
	for {
		switch {
		case l.eof:
			return token.Token{}, fmt.Errorf("%w: x\"... at %s", ErrUnterminatedString, pos)
		case l.ch == '"':
			l.advance()
			return makeToken(token.BYTES, string(buf), pos), nil
		case isHexDigit(l.ch):
			buf = append(buf, l.ch)
			l.advance()
		default:
			return token.Token{}, fmt.Errorf("%w: %q in x\"...\" at %s", ErrUnrecognizedToken, string(l.ch), pos)
		}
	}
}

// ---------------------------------------------------------------------------
// Character classification helpers
// ---------------------------------------------------------------------------

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F')
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlphanumeric(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// isWhitespace matches ASCII whitespace: space, tab, newline, carriage
// return, and form feed. Vertical tab is not whitespace here.
func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
}
