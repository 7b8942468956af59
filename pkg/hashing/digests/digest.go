// Copyright 2026 The libmicrohttpd-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package digests provides the value type for computed hash digests.
//
// A Digest pairs the algorithm name with the raw digest bytes. It is
// effectively immutable: fields are unexported and all constructors and
// accessors copy the underlying bytes defensively.
package digests

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest is a computed message digest.
type Digest struct {
	algorithm string // name of the hash algorithm
	value     []byte // raw digest bytes
}

// NewDigest creates a Digest for the given algorithm name and raw value.
// The value slice is copied, so later mutation of the caller's slice does
// not affect the Digest.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// Algorithm returns the name of the hash algorithm that produced this
// digest. The name carries every parameter that influences the output
// (e.g. "sha512-256"), so a verifier can reconstruct an identical
// computation from it.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal encoding of the digest value.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String returns the digest in "algorithm:hexvalue" form.
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm and value.
// The value comparison runs in constant time; digest values are routinely
// compared against attacker-supplied input (e.g. by an authentication
// layer), and the algorithm name is not secret.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}
	return subtle.ConstantTimeCompare(d.value, other.value) == 1
}
