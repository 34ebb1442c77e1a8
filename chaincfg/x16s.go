// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"crypto/sha512"
	"sync"

	"github.com/Qitmeer/qng/crypto/x16rv3/blake"
	"github.com/Qitmeer/qng/crypto/x16rv3/bmw"
	"github.com/Qitmeer/qng/crypto/x16rv3/cubehash"
	"github.com/Qitmeer/qng/crypto/x16rv3/echo"
	"github.com/Qitmeer/qng/crypto/x16rv3/fugue"
	"github.com/Qitmeer/qng/crypto/x16rv3/groestl"
	"github.com/Qitmeer/qng/crypto/x16rv3/hamsi"
	"github.com/Qitmeer/qng/crypto/x16rv3/hash"
	"github.com/Qitmeer/qng/crypto/x16rv3/jh"
	"github.com/Qitmeer/qng/crypto/x16rv3/keccak"
	"github.com/Qitmeer/qng/crypto/x16rv3/luffa"
	"github.com/Qitmeer/qng/crypto/x16rv3/shabal"
	"github.com/Qitmeer/qng/crypto/x16rv3/shavite"
	"github.com/Qitmeer/qng/crypto/x16rv3/simd"
	"github.com/Qitmeer/qng/crypto/x16rv3/skein"
	"github.com/Qitmeer/qng/crypto/x16rv3/whirlpool"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// The sixteen 512-bit hash functions chained by X16S, numbered by the hex
// digit that selects them.
const (
	x16Blake = iota
	x16BMW
	x16Groestl
	x16JH
	x16Keccak
	x16Skein
	x16Luffa
	x16Cubehash
	x16Shavite
	x16SIMD
	x16Echo
	x16Hamsi
	x16Fugue
	x16Shabal
	x16Whirlpool
	x16SHA512

	x16HashCount
)

// x16sPrevBlockOffset is the offset of the previous block hash within a
// serialized block header.
const x16sPrevBlockOffset = 4

// x16sGlobalMtx serializes the hamsi, fugue and shabal primitives, which keep
// their state in package level variables.
var x16sGlobalMtx sync.Mutex

// X16SOrder returns the order in which X16S applies its hash functions to a
// header whose previous block hash is prevBlock, given in serialized byte
// order.  The order starts as 0..15.  Each of the sixteen nibbles of the
// first eight bytes of prevBlock, taken from the last byte back and high
// nibble first, moves the entry at the position it names to the front.
func X16SOrder(prevBlock []byte) [x16HashCount]byte {
	var order [x16HashCount]byte
	for i := range order {
		order[i] = byte(i)
	}
	if len(prevBlock) < x16HashCount/2 {
		return order
	}

	for i := 0; i < x16HashCount; i++ {
		b := prevBlock[(x16HashCount-1-i)>>1]
		digit := b >> 4
		if i&1 == 1 {
			digit = b & 0x0f
		}

		selected := order[digit]
		copy(order[1:digit+1], order[:digit])
		order[0] = selected
	}
	return order
}

// X16SHash returns the X16S hash of a serialized block header.  It is the
// proof of work and identity hash of Reef block headers.  The first function
// hashes the full header and each following one the 64-byte digest of its
// predecessor; the result is the first 32 bytes of the final digest.
func X16SHash(header []byte) chainhash.Hash {
	var prevBlock []byte
	if len(header) >= x16sPrevBlockOffset+chainhash.HashSize {
		prevBlock = header[x16sPrevBlockOffset : x16sPrevBlockOffset+chainhash.HashSize]
	}
	order := X16SOrder(prevBlock)

	var out [sha512.Size]byte
	in := header
	for _, algo := range order {
		x16sRound(algo, in, out[:])
		in = out[:]
	}

	var h chainhash.Hash
	copy(h[:], out[:chainhash.HashSize])
	return h
}

// x16sRound hashes in with the function numbered algo and writes the 64-byte
// digest to out.  in may alias out.
func x16sRound(algo byte, in, out []byte) {
	var digest hash.Digest
	switch algo {
	case x16Blake:
		digest = blake.New()
	case x16BMW:
		digest = bmw.New()
	case x16Groestl:
		digest = groestl.New()
	case x16JH:
		digest = jh.New()
	case x16Keccak:
		digest = keccak.New()
	case x16Skein:
		digest = skein.New()
	case x16Luffa:
		digest = luffa.New()
	case x16Cubehash:
		digest = cubehash.New()
	case x16Shavite:
		digest = shavite.New()
	case x16SIMD:
		digest = simd.New()
	case x16Echo:
		digest = echo.New()

	case x16Hamsi, x16Fugue, x16Shabal:
		src := append([]byte(nil), in...)
		x16sGlobalMtx.Lock()
		switch algo {
		case x16Hamsi:
			hamsi.Sph_hamsi512_process(src, out, uint(len(src)))
		case x16Fugue:
			fugue.Sph_fugue512_process(src, out, uint(len(src)))
		default:
			shabal.Shabal_512_process(src, out, len(src))
		}
		x16sGlobalMtx.Unlock()
		return

	case x16Whirlpool:
		w := whirlpool.New()
		w.Write(in)
		copy(out, w.Sum(nil))
		return

	default:
		sum := sha512.Sum512(in)
		copy(out, sum[:])
		return
	}

	// Writes never fail and out always has room for the full digest.
	_, _ = digest.Write(in)
	_ = digest.Close(out, 0, 0)
}
