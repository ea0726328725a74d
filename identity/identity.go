// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Artledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - registry account identifiers
//
// An identity wraps an ED25519 public key.  The text form is the
// Base58 encoding of the key bytes followed by a four byte SHA3-256
// checksum, so a mistyped identity is detected before it reaches the
// registry.
package identity

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/artledger/galleryd/fault"
)

// Size - number of bytes in the binary form of an identity
const Size = 32

// miscellaneous constants
const (
	checksumLength = 4
)

// Identity - a single account identifier
type Identity [Size]byte

// Zero - the null identity
//
// mint events originate from it; it can never hold assets or value
var Zero Identity

// FromBase58 - decode the checksummed text form
func FromBase58(s string) (Identity, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Zero, fault.ErrCannotDecodeIdentity
	}
	if Size+checksumLength != len(buffer) {
		return Zero, fault.ErrInvalidIdentityLength
	}
	checksum := sha3.Sum256(buffer[:Size])
	if !bytes.Equal(checksum[:checksumLength], buffer[Size:]) {
		return Zero, fault.ErrChecksumMismatch
	}
	var id Identity
	copy(id[:], buffer[:Size])
	return id, nil
}

// FromBytes - construct an identity from a raw public key
func FromBytes(buffer []byte) (Identity, error) {
	if Size != len(buffer) {
		return Zero, fault.ErrInvalidIdentityLength
	}
	var id Identity
	copy(id[:], buffer)
	return id, nil
}

// Named - deterministic identity derived from a label
//
// used for system accounts such as the bid escrow
func Named(label string) Identity {
	digest := sha3.Sum256([]byte(label))
	var id Identity
	copy(id[:], digest[:])
	return id
}

// Bytes - raw public key bytes
func (id Identity) Bytes() []byte {
	return id[:]
}

// IsZero - check for the null identity
func (id Identity) IsZero() bool {
	return Zero == id
}

// String - checksummed Base58 text form
func (id Identity) String() string {
	buffer := make([]byte, 0, Size+checksumLength)
	buffer = append(buffer, id[:]...)
	checksum := sha3.Sum256(id[:])
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an identity to its Base58 JSON form
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert a Base58 JSON form back to an identity
func (id *Identity) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
