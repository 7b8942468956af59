//
// Copyright 2026 The libmicrohttpd-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sha512256 implements the SHA-512/256 hash algorithm as defined in
// FIPS PUB 180-4 (2015).
//
// The package provides a streaming calculation context (Ctx) with an
// init/update/finish lifecycle, a one-shot Sum512256 helper, and a standard
// hash.Hash adapter (New). A context absorbs an arbitrary partition of a byte
// stream and produces the same 32-byte digest as a single-call computation.
//
// Finish unconditionally zeroes the context before returning, so no hashed
// material survives finalization. A finished context must be re-initialized
// with Init before it can be used again.
package sha512256

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size is the size of a SHA-512/256 digest in bytes.
	Size = 32

	// BlockSize is the block size of SHA-512/256 in bytes.
	BlockSize = 128
)

// lenFieldSize is the size in bytes of the big-endian message bit-length
// field appended by padding. See FIPS PUB 180-4 clause 5.1.2.
const lenFieldSize = 16

// countMask keeps the low byte counter within 61 significant bits; the
// overflow is folded into the high counter in units of 2^61 bytes, which
// equal 2^64 bits. Together the two counters cover the full 128-bit
// bit-length field.
const countMask = 1<<61 - 1

// Ctx is a SHA-512/256 calculation context.
//
// A context is created by Init, mutated by any number of Update calls and
// consumed by exactly one Finish call. It is not safe for concurrent use;
// independent contexts share no state.
type Ctx struct {
	h           [8]uint64       // running hash value
	buf         [BlockSize]byte // staged bytes of the current partial block
	count       uint64          // absorbed bytes, low 61 bits
	countBitsHi uint64          // counter overflow, units of 2^61 bytes
}

// Init prepares the context for a new calculation, setting the state words
// to the initial hash values of FIPS PUB 180-4 clause 5.3.6.2 and zeroing
// both length counters. Calling Init on a used context resets it,
// discarding any partially buffered data.
func (c *Ctx) Init() {
	c.h[0] = 0x22312194fc2bf72c
	c.h[1] = 0x9f555fa3c84c64c2
	c.h[2] = 0x2393b86b6f53b151
	c.h[3] = 0x963877195940eabd
	c.h[4] = 0x96283ee2a88effe3
	c.h[5] = 0xbe5e1e2553863992
	c.h[6] = 0x2b0199fc2c85b8aa
	c.h[7] = 0x0eb72ddc81c52ca2

	c.count = 0
	c.countBitsHi = 0
}

// Update absorbs p into the hash state. It may be called any number of
// times between Init and Finish; splitting a stream across calls in any
// way yields the same digest as a single call with the concatenation.
// A nil or empty slice is a no-op. Update never modifies p.
func (c *Ctx) Update(p []byte) {
	if len(p) == 0 {
		return
	}

	have := int(c.count & (BlockSize - 1))

	// Fold the counter on every call, not only at finalization, so it
	// stays valid for arbitrarily long streams.
	c.count += uint64(len(p))
	if hi := c.count >> 61; hi != 0 {
		c.countBitsHi += hi
		c.count &= countMask
	}

	if have != 0 {
		left := BlockSize - have
		if len(p) >= left {
			// Complete the staged block and compress it.
			copy(c.buf[have:], p[:left])
			p = p[left:]
			block(&c.h, c.buf[:])
			have = 0
		}
	}

	// Compress full blocks straight from the caller's buffer.
	for len(p) >= BlockSize {
		block(&c.h, p[:BlockSize])
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		copy(c.buf[have:], p)
	}
}

// Finish pads the absorbed message, writes the 32-byte digest to out and
// zeroes the entire context. The context must not be reused afterwards
// without a fresh Init.
func (c *Ctx) Finish(out *[Size]byte) {
	// The low 64 bits of the message bit length. Safe to compute up
	// front: padding must not change the amount of hashed data.
	numBits := c.count << 3

	have := int(c.count & (BlockSize - 1))

	// A full buffer is always compressed immediately, so there is room
	// for at least the one padding byte.
	c.buf[have] = 0x80
	have++

	if BlockSize-have < lenFieldSize {
		// No room for the length field; pad this block with zeros,
		// compress it and start an empty one.
		for i := have; i < BlockSize; i++ {
			c.buf[i] = 0
		}
		block(&c.h, c.buf[:])
		have = 0
	}

	for i := have; i < BlockSize-lenFieldSize; i++ {
		c.buf[i] = 0
	}

	// 128-bit big-endian bit length: high word from the overflow
	// counter (2^61 bytes == 2^64 bits), low word computed above.
	binary.BigEndian.PutUint64(c.buf[BlockSize-16:], c.countBitsHi)
	binary.BigEndian.PutUint64(c.buf[BlockSize-8:], numBits)
	block(&c.h, c.buf[:])

	// SHA-512/256 truncates the 512-bit state to its leftmost 256 bits.
	binary.BigEndian.PutUint64(out[0:], c.h[0])
	binary.BigEndian.PutUint64(out[8:], c.h[1])
	binary.BigEndian.PutUint64(out[16:], c.h[2])
	binary.BigEndian.PutUint64(out[24:], c.h[3])

	// Erase potentially sensitive data.
	*c = Ctx{}
}

// Sum512256 returns the SHA-512/256 digest of data.
func Sum512256(data []byte) [Size]byte {
	var c Ctx
	c.Init()
	c.Update(data)

	var out [Size]byte
	c.Finish(&out)
	return out
}

// block is the SHA-512/256 compression function. It folds one 128-byte
// block into the 8-word state. All arithmetic is modulo 2^64.
//
// The message schedule uses a 16-word cyclic buffer: only the last 16
// expanded words are ever referenced by the recurrence of FIPS PUB 180-4
// clause 6.4.2, so W[t] can live at W[t mod 16].
func block(h *[8]uint64, p []byte) {
	var w [16]uint64
	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint64(p[t*8:])
	}

	a, b, c, d := h[0], h[1], h[2], h[3]
	e, f, g, hh := h[4], h[5], h[6], h[7]

	for t := 0; t < 80; t++ {
		wt := w[t&15]
		if t >= 16 {
			wt = w[t&15] + sigma0(w[(t-15)&15]) + w[(t-7)&15] + sigma1(w[(t-2)&15])
			w[t&15] = wt
		}

		t1 := hh + bigSigma1(e) + ch(e, f, g) + _K[t] + wt
		t2 := bigSigma0(a) + maj(a, b, c)
		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// Ch and Maj in their widely used reduced forms.
// See FIPS PUB 180-4 formulae 4.8, 4.9.
func ch(x, y, z uint64) uint64  { return z ^ (x & (y ^ z)) }
func maj(x, y, z uint64) uint64 { return (x & y) ^ (z & (x ^ y)) }

// The four Sigma functions of FIPS PUB 180-4 formulae 4.10-4.13.
func bigSigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
}

func bigSigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
}

func sigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
}

func sigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
}

// _K holds the 80 round constants of FIPS PUB 180-4 clause 4.2.3.
var _K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}
