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

	"github.com/stretchr/testify/require"

	"github.com/movechain/go-move/common"
	"github.com/movechain/go-move/lang/identifier"
)

func mustAddr(t *testing.T, literal string) common.AccountAddress {
	t.Helper()
	addr, err := common.FromHexLiteral(literal)
	require.NoError(t, err)
	return addr
}

func mustIdent(t *testing.T, s string) identifier.Identifier {
	t.Helper()
	id, err := identifier.New(s)
	require.NoError(t, err)
	return id
}

func coinTag(t *testing.T, params ...TypeTag) *StructTag {
	t.Helper()
	return &StructTag{
		Address:    mustAddr(t, "0x1"),
		Module:     mustIdent(t, "Coin"),
		Name:       mustIdent(t, "Coin"),
		TypeParams: params,
	}
}

func TestPrimitiveTags(t *testing.T) {
	cases := []struct {
		tag  TypeTag
		kind Kind
		want string
	}{
		{U8, KindU8, "u8"},
		{U64, KindU64, "u64"},
		{U128, KindU128, "u128"},
		{Bool, KindBool, "bool"},
		{Address, KindAddress, "address"},
		{Signer, KindSigner, "signer"},
	}
	for _, c := range cases {
		require.Equal(t, c.kind, c.tag.Kind())
		require.Equal(t, c.want, c.tag.String())
		require.True(t, c.tag.Equals(c.tag))
	}
	require.False(t, U8.Equals(U64))
	require.False(t, U8.Equals(nil))
	require.False(t, Bool.Equals(&VectorTag{Elem: Bool}))
}

func TestVectorTag(t *testing.T) {
	v := &VectorTag{Elem: U8}
	require.Equal(t, KindVector, v.Kind())
	require.Equal(t, "vector<u8>", v.String())
	require.Equal(t, "vector<vector<u8>>", (&VectorTag{Elem: v}).String())

	require.True(t, v.Equals(&VectorTag{Elem: U8}))
	require.False(t, v.Equals(&VectorTag{Elem: U64}))
	require.False(t, v.Equals(U8))
}

func TestStructTagString(t *testing.T) {
	require.Equal(t, "0x1::Coin::Coin", coinTag(t).String())
	require.Equal(t, "0x1::Coin::Coin<u8>", coinTag(t, U8).String())
	require.Equal(t, "0x1::Coin::Coin<u8, bool>", coinTag(t, U8, Bool).String())
	require.Equal(t,
		"0x1::Coin::Coin<vector<0x1::Coin::Coin>>",
		coinTag(t, &VectorTag{Elem: coinTag(t)}).String())

	// Short address form drops leading zeros.
	st := coinTag(t)
	st.Address = mustAddr(t, "0x00000000004")
	require.Equal(t, "0x4::Coin::Coin", st.String())
}

func TestStructTagEquals(t *testing.T) {
	a := coinTag(t, U8, Bool)
	require.True(t, a.Equals(coinTag(t, U8, Bool)))
	require.False(t, a.Equals(coinTag(t, U8)))
	require.False(t, a.Equals(coinTag(t, U8, U64)))
	require.False(t, a.Equals(U8))

	other := coinTag(t, U8, Bool)
	other.Module = mustIdent(t, "Token")
	require.False(t, a.Equals(other))

	moved := coinTag(t, U8, Bool)
	moved.Address = mustAddr(t, "0x2")
	require.False(t, a.Equals(moved))
}

func TestDepth(t *testing.T) {
	require.Equal(t, 1, Depth(U8))
	require.Equal(t, 2, Depth(&VectorTag{Elem: U8}))
	require.Equal(t, 3, Depth(&VectorTag{Elem: &VectorTag{Elem: U8}}))
	require.Equal(t, 1, Depth(coinTag(t)))
	require.Equal(t, 2, Depth(coinTag(t, U8)))
	require.Equal(t, 3, Depth(coinTag(t, &VectorTag{Elem: U8}, Bool)))
}
