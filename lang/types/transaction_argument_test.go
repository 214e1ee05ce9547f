// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package types

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/movechain/go-move/common"
)

func TestArgumentString(t *testing.T) {
	maxU128 := uint256.MustFromDecimal("340282366920938463463374607431768211455")
	cases := []struct {
		arg  TransactionArgument
		want string
	}{
		{U8Argument(0), "0u8"},
		{U8Argument(255), "255u8"},
		{U64Argument(18446744073709551615), "18446744073709551615u64"},
		{NewU128Argument(uint256.NewInt(7)), "7u128"},
		{NewU128Argument(maxU128), "340282366920938463463374607431768211455u128"},
		{BoolArgument(true), "true"},
		{BoolArgument(false), "false"},
		{AddressArgument(common.BytesToAddress([]byte{0xde, 0xad})), "0xdead"},
		{U8VectorArgument{0xde, 0xad, 0xbe, 0xef}, `x"deadbeef"`},
		{U8VectorArgument{}, `x""`},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.arg.String())
	}
}

func TestArgumentEquals(t *testing.T) {
	require.True(t, U8Argument(9).Equals(U8Argument(9)))
	require.False(t, U8Argument(9).Equals(U8Argument(8)))
	// Same numeric value, different width: not equal.
	require.False(t, U8Argument(9).Equals(U64Argument(9)))
	require.False(t, U64Argument(9).Equals(NewU128Argument(uint256.NewInt(9))))

	require.True(t, NewU128Argument(uint256.NewInt(42)).Equals(NewU128Argument(uint256.NewInt(42))))
	require.False(t, NewU128Argument(uint256.NewInt(42)).Equals(NewU128Argument(uint256.NewInt(43))))

	require.True(t, BoolArgument(true).Equals(BoolArgument(true)))
	require.False(t, BoolArgument(true).Equals(BoolArgument(false)))

	a := AddressArgument(common.BytesToAddress([]byte{1}))
	require.True(t, a.Equals(AddressArgument(common.BytesToAddress([]byte{1}))))
	require.False(t, a.Equals(AddressArgument(common.BytesToAddress([]byte{2}))))

	v := U8VectorArgument{1, 2, 3}
	require.True(t, v.Equals(U8VectorArgument{1, 2, 3}))
	require.False(t, v.Equals(U8VectorArgument{1, 2}))
	require.False(t, v.Equals(BoolArgument(true)))
}

func TestNewU128ArgumentBounds(t *testing.T) {
	// 2^128 - 1 is fine.
	max := uint256.MustFromDecimal("340282366920938463463374607431768211455")
	require.Equal(t, max, NewU128Argument(max).Value())

	// 2^128 overflows.
	over := new(uint256.Int).AddUint64(max, 1)
	require.Panics(t, func() { NewU128Argument(over) })
}
