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

package secp256k1

import (
	"errors"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Lengths of keys, hashes and signatures.
const (
	PrivateKeyLength    = 32
	PublicKeyLength     = 65
	RawPublicKeyLength  = 64
	CompressedKeyLength = 33
	HashLength          = 32
	SignatureLength     = 65

	// compactSigMagicOffset is the header offset of decred compact signatures.
	compactSigMagicOffset = 27
)

// Errors
var (
	ErrInvalidPrivateKey   = errors.New("invalid private key")
	ErrInvalidPublicKey    = errors.New("invalid public key")
	ErrInvalidHashLength   = errors.New("hash must be 32 bytes")
	ErrInvalidSignatureLen = errors.New("invalid signature length")
	ErrInvalidRecoveryID   = errors.New("invalid signature recovery id")
	ErrSignFailed          = errors.New("failed to sign")
)

// SeckeyVerify reports whether seckey is a valid scalar, 0 < k < N.
func SeckeyVerify(seckey []byte) bool {
	if len(seckey) != PrivateKeyLength {
		return false
	}
	var k secp.ModNScalar
	if overflow := k.SetByteSlice(seckey); overflow {
		return false
	}
	return !k.IsZero()
}

// Sign calculates a recoverable ECDSA signature of a 32 byte hash.
//
// The produced signature is in the [R || S || V] format where V is 0 or 1.
// Nonces are derived with RFC6979, so equal inputs give equal signatures.
func Sign(hash, seckey []byte) ([]byte, error) {
	if len(hash) != HashLength {
		return nil, ErrInvalidHashLength
	}
	if !SeckeyVerify(seckey) {
		return nil, ErrInvalidPrivateKey
	}
	priv := secp.PrivKeyFromBytes(seckey)
	defer priv.Zero()

	compact := ecdsa.SignCompact(priv, hash, false)
	if len(compact) != SignatureLength {
		return nil, ErrSignFailed
	}
	sig := make([]byte, SignatureLength)
	copy(sig, compact[1:])
	sig[64] = compact[0] - compactSigMagicOffset
	return sig, nil
}

// RecoverPubkey returns the uncompressed public key that created the given signature.
func RecoverPubkey(hash, sig []byte) ([]byte, error) {
	if len(hash) != HashLength {
		return nil, ErrInvalidHashLength
	}
	if len(sig) != SignatureLength {
		return nil, ErrInvalidSignatureLen
	}
	if sig[64] > 3 {
		return nil, ErrInvalidRecoveryID
	}
	compact := make([]byte, SignatureLength)
	compact[0] = sig[64] + compactSigMagicOffset
	copy(compact[1:], sig[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// VerifySignature checks that the given public key created signature over hash.
// The signature may carry the recovery id or not.
func VerifySignature(pubkey, hash, sig []byte) bool {
	if len(hash) != HashLength {
		return false
	}
	if len(sig) != SignatureLength && len(sig) != SignatureLength-1 {
		return false
	}
	pub, err := secp.ParsePubKey(pubkey)
	if err != nil {
		return false
	}
	var r, s secp.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:64]); overflow || s.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(hash, pub)
}

// CompressPubkey encodes a public key to the 33-byte compressed format.
func CompressPubkey(pubkey []byte) ([]byte, error) {
	pub, err := secp.ParsePubKey(pubkey)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	return pub.SerializeCompressed(), nil
}

// DecompressPubkey parses a public key in the 33-byte compressed format.
func DecompressPubkey(pubkey []byte) ([]byte, error) {
	if len(pubkey) != CompressedKeyLength {
		return nil, ErrInvalidPublicKey
	}
	pub, err := secp.ParsePubKey(pubkey)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	return pub.SerializeUncompressed(), nil
}
