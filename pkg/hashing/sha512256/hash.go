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

package sha512256

import "hash"

// Verify the adapter implements hash.Hash at compile time.
var _ hash.Hash = (*digest)(nil)

// digest adapts Ctx to the standard hash.Hash interface.
type digest struct {
	ctx Ctx
}

// New returns a new hash.Hash computing the SHA-512/256 checksum.
//
// Unlike Ctx, the returned hash follows the standard library contract:
// Sum does not destroy the state, so Write may continue afterwards.
func New() hash.Hash {
	d := &digest{}
	d.ctx.Init()
	return d
}

// Write absorbs p into the hash state. It never returns an error.
func (d *digest) Write(p []byte) (int, error) {
	d.ctx.Update(p)
	return len(p), nil
}

// Sum appends the current digest to in and returns the result. The
// finalization runs on a copy of the context, so the hash state is left
// intact.
func (d *digest) Sum(in []byte) []byte {
	c := d.ctx
	var out [Size]byte
	c.Finish(&out)
	return append(in, out[:]...)
}

// Reset restores the hash to its initial state.
func (d *digest) Reset() {
	d.ctx.Init()
}

// Size returns the digest size in bytes.
func (d *digest) Size() int { return Size }

// BlockSize returns the hash block size in bytes.
func (d *digest) BlockSize() int { return BlockSize }
