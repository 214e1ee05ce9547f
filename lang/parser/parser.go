// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package parser implements the recursive-descent grammar for type tags and
// transaction arguments.
//
// Design overview:
//
//   - Each public entry point tokenizes its whole input, drops whitespace,
//     appends an end-of-input marker, runs one grammar routine, and requires
//     that only the marker remains.
//   - Grammar routines carry an explicit nesting depth by value; once the
//     depth reaches types.MaxTypeTagNesting the parse fails, so adversarially
//     deep input cannot exhaust the call stack.
//   - The first error aborts the parse. There is no recovery.
package parser

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/movechain/go-move/common"
	"github.com/movechain/go-move/lang/identifier"
	"github.com/movechain/go-move/lang/lexer"
	"github.com/movechain/go-move/lang/token"
	"github.com/movechain/go-move/lang/types"
)

var (
	// ErrNestingLimit is returned when a type tag nests deeper than
	// types.MaxTypeTagNesting.
	ErrNestingLimit = errors.New("exceeded type tag nesting limit")

	// ErrTrailingInput is returned when tokens remain after a complete parse.
	ErrTrailingInput = errors.New("trailing input after parse")

	// ErrOutOfTokens indicates the cursor advanced past the end-of-input
	// marker. Unreachable with correct grammar use.
	ErrOutOfTokens = errors.New("out of tokens, this should not happen")
)

// Parser is a cursor over a whitespace-filtered token sequence with one-token
// lookahead.
type Parser struct {
	toks []token.Token
	pos  int
}

func newParser(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// next consumes and returns the next token.
func (p *Parser) next() (token.Token, error) {
	if p.pos >= len(p.toks) {
		return token.Token{}, ErrOutOfTokens
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok, nil
}

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Type: token.EOF}
	}
	return p.toks[p.pos]
}

// expect consumes the next token and fails unless it has the given type.
func (p *Parser) expect(typ token.Type) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Type != typ {
		return fmt.Errorf("expected %s, got %s (%q)", typ, tok.Type, tok.Literal)
	}
	return nil
}

// parseCommaList parses a comma-separated list of items, each produced by
// parseItem, up to (but not consuming) the end token. A comma before the end
// token is accepted only when allowTrailing is set.
func parseCommaList[T any](p *Parser, parseItem func(*Parser) (T, error), end token.Type, allowTrailing bool) ([]T, error) {
	var items []T
	if p.peek().Type == end {
		return items, nil
	}
	for {
		item, err := parseItem(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.peek().Type == end {
			break
		}
		if err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		if allowTrailing && p.peek().Type == end {
			break
		}
	}
	return items, nil
}

// parseName consumes a NAME token and returns its text.
func (p *Parser) parseName() (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok.Type != token.NAME {
		return "", fmt.Errorf("unexpected token %s (%q), expected name", tok.Type, tok.Literal)
	}
	return tok.Literal, nil
}

// parseTypeTag parses one type tag at the given nesting depth.
func (p *Parser) parseTypeTag(depth int) (types.TypeTag, error) {
	if depth >= types.MaxTypeTagNesting {
		return nil, fmt.Errorf("%w: depth %d", ErrNestingLimit, depth)
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.U8TYPE:
		return types.U8, nil
	case token.U64TYPE:
		return types.U64, nil
	case token.U128TYPE:
		return types.U128, nil
	case token.BOOLTYPE:
		return types.Bool, nil
	case token.ADDRESSTYPE:
		return types.Address, nil
	case token.SIGNERTYPE:
		return types.Signer, nil
	case token.VECTORTYPE:
		if err := p.expect(token.LT); err != nil {
			return nil, err
		}
		elem, err := p.parseTypeTag(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.GT); err != nil {
			return nil, err
		}
		return &types.VectorTag{Elem: elem}, nil
	case token.ADDRESS:
		return p.parseStructTagBody(tok.Literal, depth)
	default:
		return nil, fmt.Errorf("unexpected token %s (%q), expected type tag", tok.Type, tok.Literal)
	}
}

// parseStructTagBody parses "::Module::Name[<T1, T2, ...>]" after an address
// literal and assembles the struct tag. Address and identifier validation is
// owned by the common and identifier packages; their failures are forwarded.
func (p *Parser) parseStructTagBody(addrLit string, depth int) (*types.StructTag, error) {
	if err := p.expect(token.COLONCOLON); err != nil {
		return nil, err
	}
	moduleName, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.COLONCOLON); err != nil {
		return nil, err
	}
	structName, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var typeParams []types.TypeTag
	if p.peek().Type == token.LT {
		if _, err := p.next(); err != nil {
			return nil, err
		}
		typeParams, err = parseCommaList(p, func(p *Parser) (types.TypeTag, error) {
			return p.parseTypeTag(depth + 1)
		}, token.GT, true)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.GT); err != nil {
			return nil, err
		}
	}

	addr, err := common.FromHexLiteral(addrLit)
	if err != nil {
		return nil, err
	}
	module, err := identifier.New(moduleName)
	if err != nil {
		return nil, err
	}
	name, err := identifier.New(structName)
	if err != nil {
		return nil, err
	}
	return &types.StructTag{
		Address:    addr,
		Module:     module,
		Name:       name,
		TypeParams: typeParams,
	}, nil
}

// parseTransactionArgument parses one literal argument. Single-token
// dispatch, no recursion. A numeric literal overflowing its declared width is
// an error, never a truncation.
func (p *Parser) parseTransactionArgument() (types.TransactionArgument, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.U8LIT:
		v, err := strconv.ParseUint(tok.Literal, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid u8 literal %q: %v", tok.Literal, err)
		}
		return types.U8Argument(v), nil
	case token.U64LIT:
		v, err := strconv.ParseUint(tok.Literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid u64 literal %q: %v", tok.Literal, err)
		}
		return types.U64Argument(v), nil
	case token.U128LIT:
		v, err := uint256.FromDecimal(tok.Literal)
		if err != nil {
			return nil, fmt.Errorf("invalid u128 literal %q: %v", tok.Literal, err)
		}
		if v.BitLen() > 128 {
			return nil, fmt.Errorf("invalid u128 literal %q: value overflows 128 bits", tok.Literal)
		}
		return (*types.U128Argument)(v), nil
	case token.TRUE:
		return types.BoolArgument(true), nil
	case token.FALSE:
		return types.BoolArgument(false), nil
	case token.ADDRESS:
		addr, err := common.FromHexLiteral(tok.Literal)
		if err != nil {
			return nil, err
		}
		return types.AddressArgument(addr), nil
	case token.BYTES:
		b, err := hex.DecodeString(tok.Literal)
		if err != nil {
			return nil, fmt.Errorf("invalid byte string: %v", err)
		}
		return types.U8VectorArgument(b), nil
	default:
		return nil, fmt.Errorf("unexpected token %s (%q), expected transaction argument", tok.Type, tok.Literal)
	}
}

// run tokenizes s, drops whitespace, appends the end-of-input marker, applies
// f, and requires that only the marker remains.
func run[T any](s string, f func(*Parser) (T, error)) (T, error) {
	var zero T
	toks, err := lexer.New(s).Tokenize()
	if err != nil {
		return zero, err
	}
	filtered := make([]token.Token, 0, len(toks)+1)
	for _, tok := range toks {
		if !tok.Type.IsWhitespace() {
			filtered = append(filtered, tok)
		}
	}
	filtered = append(filtered, token.Token{Type: token.EOF})

	p := newParser(filtered)
	res, err := f(p)
	if err != nil {
		return zero, err
	}
	if tok := p.peek(); tok.Type != token.EOF {
		return zero, fmt.Errorf("%w: %s (%q)", ErrTrailingInput, tok.Type, tok.Literal)
	}
	return res, nil
}

// ParseTypeTag parses a single type tag from s.
func ParseTypeTag(s string) (types.TypeTag, error) {
	return run(s, func(p *Parser) (types.TypeTag, error) {
		return p.parseTypeTag(0)
	})
}

// ParseTypeTagList parses a comma-separated list of type tags from s.
// A trailing comma is allowed; empty input yields an empty list.
func ParseTypeTagList(s string) ([]types.TypeTag, error) {
	return run(s, func(p *Parser) ([]types.TypeTag, error) {
		return parseCommaList(p, func(p *Parser) (types.TypeTag, error) {
			return p.parseTypeTag(0)
		}, token.EOF, true)
	})
}

// ParseStructTag parses a single struct tag from s. Input that parses to a
// non-struct type tag is rejected.
func ParseStructTag(s string) (*types.StructTag, error) {
	tag, err := ParseTypeTag(s)
	if err != nil {
		return nil, fmt.Errorf("invalid struct tag: %s, %w", s, err)
	}
	st, ok := tag.(*types.StructTag)
	if !ok {
		return nil, fmt.Errorf("invalid struct tag: %s", s)
	}
	return st, nil
}

// ParseTransactionArgument parses a single transaction-argument literal
// from s.
func ParseTransactionArgument(s string) (types.TransactionArgument, error) {
	return run(s, func(p *Parser) (types.TransactionArgument, error) {
		return p.parseTransactionArgument()
	})
}

// ParseTransactionArgumentList parses a comma-separated list of
// transaction-argument literals from s. A trailing comma is allowed; empty
// input yields an empty list.
func ParseTransactionArgumentList(s string) ([]types.TransactionArgument, error) {
	return run(s, func(p *Parser) ([]types.TransactionArgument, error) {
		return parseCommaList(p, func(p *Parser) (types.TransactionArgument, error) {
			return p.parseTransactionArgument()
		}, token.EOF, true)
	})
}

// ParseNameList parses a comma-separated list of bare names from s.
// A trailing comma is allowed; empty input yields an empty list.
func ParseNameList(s string) ([]string, error) {
	return run(s, func(p *Parser) ([]string, error) {
		return parseCommaList(p, (*Parser).parseName, token.EOF, true)
	})
}
