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

// Package memory provides in-memory hash engines over byte streams.
package memory

import (
	"github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/digests"
	hashengines "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines"
	"github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/sha512256"
)

func init() {
	hashengines.MustRegister("sha512-256", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA512x256Engine(nil), nil
	})
}

var _ hashengines.StreamingHashEngine = (*SHA512x256Engine)(nil)

// SHA512x256Engine is a StreamingHashEngine over the from-scratch
// SHA-512/256 implementation in pkg/hashing/sha512256. It drives the
// calculation context directly rather than going through hash.Hash.
type SHA512x256Engine struct {
	ctx sha512256.Ctx
}

// NewSHA512x256Engine constructs a new SHA-512/256 engine.
// If initialData is non-empty, it is absorbed immediately.
func NewSHA512x256Engine(initialData []byte) *SHA512x256Engine {
	e := &SHA512x256Engine{}
	e.ctx.Init()
	e.ctx.Update(initialData)
	return e
}

// Update absorbs more bytes into the hash state.
func (e *SHA512x256Engine) Update(data []byte) {
	e.ctx.Update(data)
}

// Reset clears the hash state and optionally seeds it with new data.
func (e *SHA512x256Engine) Reset(data []byte) {
	e.ctx.Init()
	e.ctx.Update(data)
}

// Compute finalizes a copy of the context and returns the digest. The
// engine itself stays usable, so Compute can be followed by more Update
// calls or another Compute.
func (e *SHA512x256Engine) Compute() (digests.Digest, error) {
	c := e.ctx
	var out [sha512256.Size]byte
	c.Finish(&out)
	return digests.NewDigest(e.DigestName(), out[:]), nil
}

// DigestName returns the algorithm identifier.
func (e *SHA512x256Engine) DigestName() string {
	return "sha512-256"
}

// DigestSize returns the byte length of the produced digest.
func (e *SHA512x256Engine) DigestSize() int {
	return sha512256.Size
}
