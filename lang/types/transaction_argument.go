// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/movechain/go-move/common"
)

// TransactionArgument is a literal value supplied as input to a contract
// invocation. Variants: U8Argument, U64Argument, U128Argument, BoolArgument,
// AddressArgument, U8VectorArgument.
//
// Every variant renders via String() as a literal the parser accepts back.
type TransactionArgument interface {
	// String returns the canonical literal rendering of the argument.
	String() string

	// Equals reports whether two arguments hold the same variant and value.
	Equals(other TransactionArgument) bool
}

// U8Argument is an unsigned 8-bit integer argument.
type U8Argument uint8

func (u U8Argument) String() string { return strconv.FormatUint(uint64(u), 10) + "u8" }

func (u U8Argument) Equals(other TransactionArgument) bool {
	o, ok := other.(U8Argument)
	return ok && u == o
}

// U64Argument is an unsigned 64-bit integer argument.
type U64Argument uint64

func (u U64Argument) String() string { return strconv.FormatUint(uint64(u), 10) + "u64" }

func (u U64Argument) Equals(other TransactionArgument) bool {
	o, ok := other.(U64Argument)
	return ok && u == o
}

// U128Argument is an unsigned 128-bit integer argument.
//
// Go has no native 128-bit integer, so the payload rides in a uint256.Int;
// the parser guarantees the value fits in 128 bits.
type U128Argument uint256.Int

// NewU128Argument wraps v as a U128Argument. It panics if v does not fit in
// 128 bits; values produced by the parser always do.
func NewU128Argument(v *uint256.Int) *U128Argument {
	if v.BitLen() > 128 {
		panic(fmt.Sprintf("value %s overflows u128", v.Dec()))
	}
	return (*U128Argument)(v.Clone())
}

func (u *U128Argument) String() string { return (*uint256.Int)(u).Dec() + "u128" }

// Value returns the payload as a uint256.Int.
func (u *U128Argument) Value() *uint256.Int { return (*uint256.Int)(u) }

func (u *U128Argument) Equals(other TransactionArgument) bool {
	o, ok := other.(*U128Argument)
	return ok && (*uint256.Int)(u).Eq((*uint256.Int)(o))
}

// BoolArgument is a boolean argument.
type BoolArgument bool

func (b BoolArgument) String() string { return strconv.FormatBool(bool(b)) }

func (b BoolArgument) Equals(other TransactionArgument) bool {
	o, ok := other.(BoolArgument)
	return ok && b == o
}

// AddressArgument is an account-address argument.
type AddressArgument common.AccountAddress

func (a AddressArgument) String() string {
	return common.AccountAddress(a).ShortHex()
}

func (a AddressArgument) Equals(other TransactionArgument) bool {
	o, ok := other.(AddressArgument)
	return ok && common.AccountAddress(a).Equal(common.AccountAddress(o))
}

// U8VectorArgument is a byte-vector argument.
type U8VectorArgument []byte

func (v U8VectorArgument) String() string {
	return `x"` + hex.EncodeToString(v) + `"`
}

func (v U8VectorArgument) Equals(other TransactionArgument) bool {
	o, ok := other.(U8VectorArgument)
	return ok && bytes.Equal(v, o)
}
