// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package types defines the on-chain type descriptions used by the MoveChain
// virtual machine: type tags for primitives, vectors, and generic struct
// types, and the literal transaction-argument values passed into a contract
// call.
//
// Design principles:
//   - Tags form a closed recursive sum type; each variant is a small value
//     type implementing the TypeTag interface.
//   - Nesting depth of a tag is bounded by MaxTypeTagNesting, enforced at
//     parse time rather than by the call stack.
//   - Rendering is canonical: parsing the String() form of a tag yields an
//     equal tag.
package types

import (
	"fmt"
	"strings"

	"github.com/movechain/go-move/common"
	"github.com/movechain/go-move/lang/identifier"
)

// MaxTypeTagNesting is the maximum recursive depth of a type tag, counting
// each vector wrap and each level of struct type-argument recursion. Inputs
// nesting deeper than this are rejected while parsing.
const MaxTypeTagNesting = 8

// Kind categorizes the shape of a type tag.
type Kind int

const (
	KindU8 Kind = iota
	KindU64
	KindU128
	KindBool
	KindAddress
	KindSigner
	KindVector
	KindStruct
)

var kindNames = [...]string{
	KindU8:      "u8",
	KindU64:     "u64",
	KindU128:    "u128",
	KindBool:    "bool",
	KindAddress: "address",
	KindSigner:  "signer",
	KindVector:  "vector",
	KindStruct:  "struct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// TypeTag is the interface implemented by all type-tag variants.
type TypeTag interface {
	// Kind returns the category of this tag.
	Kind() Kind

	// String returns the canonical textual rendering.
	String() string

	// Equals reports whether two tags are structurally identical.
	Equals(other TypeTag) bool
}

// ---- Primitive tags --------------------------------------------------------

// primitiveTag is the concrete implementation for all non-recursive variants.
type primitiveTag struct {
	kind Kind
}

func (p *primitiveTag) Kind() Kind     { return p.kind }
func (p *primitiveTag) String() string { return p.kind.String() }

func (p *primitiveTag) Equals(other TypeTag) bool {
	if other == nil {
		return false
	}
	return p.kind == other.Kind()
}

// Pre-allocated singletons for all primitive type tags.
var (
	U8      TypeTag = &primitiveTag{kind: KindU8}
	U64     TypeTag = &primitiveTag{kind: KindU64}
	U128    TypeTag = &primitiveTag{kind: KindU128}
	Bool    TypeTag = &primitiveTag{kind: KindBool}
	Address TypeTag = &primitiveTag{kind: KindAddress}
	Signer  TypeTag = &primitiveTag{kind: KindSigner}
)

// ---- Vector ----------------------------------------------------------------

// VectorTag is vector<Elem>.
type VectorTag struct {
	Elem TypeTag
}

func (v *VectorTag) Kind() Kind     { return KindVector }
func (v *VectorTag) String() string { return fmt.Sprintf("vector<%s>", v.Elem) }

func (v *VectorTag) Equals(other TypeTag) bool {
	o, ok := other.(*VectorTag)
	return ok && v.Elem.Equals(o.Elem)
}

// ---- Struct ----------------------------------------------------------------

// StructTag identifies a user-defined struct type by publishing address,
// module name, struct name, and an ordered list of type parameters.
type StructTag struct {
	Address    common.AccountAddress
	Module     identifier.Identifier
	Name       identifier.Identifier
	TypeParams []TypeTag
}

func (s *StructTag) Kind() Kind { return KindStruct }

// String renders the tag in its canonical short form, e.g.
// "0x1::Coin::Coin<u8, bool>".
func (s *StructTag) String() string {
	var b strings.Builder
	b.WriteString(s.Address.ShortHex())
	b.WriteString("::")
	b.WriteString(string(s.Module))
	b.WriteString("::")
	b.WriteString(string(s.Name))
	if len(s.TypeParams) > 0 {
		parts := make([]string, len(s.TypeParams))
		for i, p := range s.TypeParams {
			parts[i] = p.String()
		}
		b.WriteString("<")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(">")
	}
	return b.String()
}

func (s *StructTag) Equals(other TypeTag) bool {
	o, ok := other.(*StructTag)
	if !ok {
		return false
	}
	if !s.Address.Equal(o.Address) || s.Module != o.Module || s.Name != o.Name {
		return false
	}
	if len(s.TypeParams) != len(o.TypeParams) {
		return false
	}
	for i := range s.TypeParams {
		if !s.TypeParams[i].Equals(o.TypeParams[i]) {
			return false
		}
	}
	return true
}

// Depth returns the nesting depth of t: primitives are depth 1, each vector
// wrap and struct type-argument level adds one.
func Depth(t TypeTag) int {
	switch tag := t.(type) {
	case *VectorTag:
		return 1 + Depth(tag.Elem)
	case *StructTag:
		max := 0
		for _, p := range tag.TypeParams {
			if d := Depth(p); d > max {
				max = d
			}
		}
		return 1 + max
	default:
		return 1
	}
}
