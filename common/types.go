// Copyright (C) 2018  MediBloc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>

package common

import (
	"strings"

	"github.com/icon-project/ICONKit/crypto/signature"
	"github.com/icon-project/ICONKit/crypto/signature/algorithm"
	"github.com/icon-project/ICONKit/util/byteutils"
	"golang.org/x/crypto/sha3"
)

// Types' length.
const (
	HashLength = 32

	// AddressBodyLength is the number of bytes of the public key hash kept in an address.
	AddressBodyLength = 20

	AddressPrefix         = "hx"
	ContractAddressPrefix = "cx"
	addressStringLength   = 2 + 2*AddressBodyLength
)

// Hash represents the 32 byte SHA3-256 hash of arbitrary data.
type Hash [HashLength]byte

// BytesToHash converts bytes to Hash.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash converts hex string to Hash.
func HexToHash(s string) (Hash, error) {
	b, err := byteutils.FromHex(s)
	if err != nil || len(b) != HashLength {
		return Hash{}, ErrInvalidHex
	}
	return BytesToHash(b), nil
}

// Bytes returns Hash in bytes format.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns Hash in hex string without prefix.
func (h Hash) Hex() string { return byteutils.Bytes2Hex(h[:]) }

// String returns Hash in 0x prefixed hex string.
func (h Hash) String() string { return "0x" + h.Hex() }

// SetBytes set bytes to Hash.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}

	copy(h[HashLength-len(b):], b)
}

// IsZeroHash checks if hash h is zero hash (0x00000...)
func IsZeroHash(h Hash) bool {
	return h == Hash{}
}

// Address is an EOA address, "hx" followed by 40 hex characters.
type Address string

// ParseAddress validates s and returns it as an Address.
func ParseAddress(s string) (Address, error) {
	if !IsAddress(s) {
		return "", ErrInvalidAddress
	}
	return Address(strings.ToLower(s)), nil
}

// ParseContractAddress validates s as a "cx" address.
func ParseContractAddress(s string) (Address, error) {
	if !IsContractAddress(s) {
		return "", ErrInvalidContractAddress
	}
	return Address(strings.ToLower(s)), nil
}

// IsAddress reports whether s is "hx" followed by exactly 40 hex characters.
func IsAddress(s string) bool {
	return hasBody(s, AddressPrefix)
}

// IsContractAddress reports whether s is "cx" followed by exactly 40 hex characters.
func IsContractAddress(s string) bool {
	return hasBody(s, ContractAddressPrefix)
}

// IsRecipient reports whether s may be used as a transaction recipient.
func IsRecipient(s string) bool {
	return IsAddress(s) || IsContractAddress(s)
}

func hasBody(s, prefix string) bool {
	if len(s) != addressStringLength || !strings.HasPrefix(s, prefix) {
		return false
	}
	return byteutils.IsHex(s[len(prefix):])
}

// BytesToAddress derives an address from a 64 byte raw or 65 byte uncompressed public key.
func BytesToAddress(pub []byte) (Address, error) {
	switch len(pub) {
	case 65:
		pub = pub[1:]
	case 64:
	default:
		return "", ErrInvalidPublicKey
	}
	hash := sha3.Sum256(pub)
	return Address(AddressPrefix + byteutils.Bytes2Hex(hash[HashLength-AddressBodyLength:])), nil
}

// PublicKeyToAddress gets Address from PublicKey.
func PublicKeyToAddress(p signature.PublicKey) (Address, error) {
	switch p.Algorithm() {
	case algorithm.SECP256K1:
		raw, err := p.Raw()
		if err != nil {
			return "", err
		}
		return BytesToAddress(raw)
	default:
		return "", algorithm.ErrInvalidCryptoAlgorithm
	}
}

// String returns the address string.
func (a Address) String() string { return string(a) }

// Equals compares addresses case-insensitively.
func (a Address) Equals(b Address) bool {
	return strings.EqualFold(string(a), string(b))
}
