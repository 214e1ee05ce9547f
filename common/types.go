// Copyright 2024 The MoveChain Authors
// This file is part of the MoveChain library.
//
// The MoveChain library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package common contains the fixed-width value types shared across the
// MoveChain libraries, most notably the 16-byte account address.
package common

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressLength is the expected length of an account address in bytes.
const AddressLength = 16

var (
	// ErrInvalidAddressLiteral is returned for a hex literal that is not of
	// the form "0x" followed by at least one hex digit.
	ErrInvalidAddressLiteral = errors.New("invalid address hex literal")

	// ErrAddressTooLong is returned when a hex literal encodes more than
	// AddressLength bytes.
	ErrAddressTooLong = errors.New("address literal too long")
)

// AccountAddress represents the 16-byte address of the account under which a
// module is published.
type AccountAddress [AddressLength]byte

// BytesToAddress returns AccountAddress with value b.
// If b is larger than len(a), b will be cropped from the left.
func BytesToAddress(b []byte) AccountAddress {
	var a AccountAddress
	a.SetBytes(b)
	return a
}

// FromHexLiteral parses an address written as a short hex literal, e.g. "0x1"
// or "0Xdead". The literal must carry a 0x/0X prefix and at least one hex
// digit; shorter-than-full-width literals are left-padded with zeros.
func FromHexLiteral(s string) (AccountAddress, error) {
	if !has0xPrefix(s) {
		return AccountAddress{}, fmt.Errorf("%w: missing 0x prefix in %q", ErrInvalidAddressLiteral, s)
	}
	digits := s[2:]
	if !isHex(digits) {
		return AccountAddress{}, fmt.Errorf("%w: %q", ErrInvalidAddressLiteral, s)
	}
	if len(digits) > 2*AddressLength {
		return AccountAddress{}, fmt.Errorf("%w: %q is %d hex digits, max %d", ErrAddressTooLong, s, len(digits), 2*AddressLength)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return AccountAddress{}, fmt.Errorf("%w: %q", ErrInvalidAddressLiteral, s)
	}
	return BytesToAddress(b), nil
}

// IsHexAddress verifies whether a string can represent a valid full-width
// hex-encoded account address.
func IsHexAddress(s string) bool {
	if has0xPrefix(s) {
		s = s[2:]
	}
	return len(s) == 2*AddressLength && isHex(s)
}

// Bytes gets the byte representation of the underlying address.
func (a AccountAddress) Bytes() []byte { return a[:] }

// Equal reports whether two addresses hold the same bytes.
func (a AccountAddress) Equal(other AccountAddress) bool {
	return bytes.Equal(a[:], other[:])
}

// Hex returns the full-width, checksum-cased hex representation of the
// address.
func (a AccountAddress) Hex() string {
	return string(a.checksumHex())
}

// ShortHex returns the canonical short literal form of the address: "0x"
// followed by the hex digits with leading zeros removed. The zero address
// renders as "0x0".
func (a AccountAddress) ShortHex() string {
	s := strings.TrimLeft(hex.EncodeToString(a[:]), "0")
	if s == "" {
		s = "0"
	}
	return "0x" + s
}

// String implements fmt.Stringer.
func (a AccountAddress) String() string {
	return a.Hex()
}

func (a *AccountAddress) checksumHex() []byte {
	buf := a.hex()

	// compute checksum
	sha := sha3.NewLegacyKeccak256()
	sha.Write(buf[2:])
	hash := sha.Sum(nil)
	for i := 2; i < len(buf); i++ {
		hashByte := hash[(i-2)/2]
		if i%2 == 0 {
			hashByte = hashByte >> 4
		} else {
			hashByte &= 0xf
		}
		if buf[i] > '9' && hashByte > 7 {
			buf[i] -= 32
		}
	}
	return buf[:]
}

func (a AccountAddress) hex() []byte {
	var buf [len(a)*2 + 2]byte
	copy(buf[:2], "0x")
	hex.Encode(buf[2:], a[:])
	return buf[:]
}

// Format implements fmt.Formatter.
// AccountAddress supports the %v, %s, %q, %x, %X and %d format verbs.
func (a AccountAddress) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		s.Write([]byte(a.Hex()))
	case 'q':
		q := []byte{'"'}
		s.Write(q)
		s.Write([]byte(a.Hex()))
		s.Write(q)
	case 'x', 'X':
		hexBytes := a.hex()
		if !s.Flag('#') {
			hexBytes = hexBytes[2:]
		}
		if c == 'X' {
			hexBytes = bytes.ToUpper(hexBytes)
		}
		s.Write(hexBytes)
	case 'd':
		fmt.Fprint(s, ([len(a)]byte)(a))
	default:
		fmt.Fprintf(s, "%%!%c(address=%x)", c, a)
	}
}

// SetBytes sets the address to the value of b.
// If b is larger than len(a), b will be cropped from the left.
func (a *AccountAddress) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// MarshalText returns the full-width lowercase hex representation of a.
func (a AccountAddress) MarshalText() ([]byte, error) {
	return a.hex(), nil
}

// UnmarshalText parses an address in full-width hex syntax.
func (a *AccountAddress) UnmarshalText(input []byte) error {
	s := string(input)
	if !IsHexAddress(s) {
		return fmt.Errorf("%w: %q", ErrInvalidAddressLiteral, s)
	}
	a.SetBytes(FromHex(s))
	return nil
}
