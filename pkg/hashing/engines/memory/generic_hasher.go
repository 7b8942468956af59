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

package memory

import (
	"hash"

	"github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/digests"
	hashengines "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc creates a new hash.Hash instance.
type HashFactoryFunc func() (hash.Hash, error)

// GenericHashEngine adapts any hash.Hash implementation to the
// StreamingHashEngine interface. Algorithm-specific engines that have no
// special needs (md5, blake2b, ...) are thin wrappers around it.
type GenericHashEngine struct {
	name    string
	size    int
	factory HashFactoryFunc
	h       hash.Hash
}

// NewGenericHashEngine creates an engine named name producing size-byte
// digests from the hashes built by factory. If initialData is non-empty,
// it is absorbed immediately.
func NewGenericHashEngine(name string, size int, factory HashFactoryFunc, initialData []byte) (*GenericHashEngine, error) {
	h, err := factory()
	if err != nil {
		return nil, err
	}

	engine := &GenericHashEngine{
		name:    name,
		size:    size,
		factory: factory,
		h:       h,
	}
	if len(initialData) > 0 {
		// hash.Hash.Write never returns an error per its contract.
		_, _ = engine.h.Write(initialData)
	}
	return engine, nil
}

// Update absorbs more bytes into the hash state.
func (e *GenericHashEngine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and optionally seeds it with new data.
func (e *GenericHashEngine) Reset(data []byte) {
	e.h.Reset()
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns the digest. hash.Hash.Sum leaves
// the state intact, so the engine stays usable afterwards.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	sum := e.h.Sum(nil)
	return digests.NewDigest(e.name, sum), nil
}

// DigestName returns the algorithm identifier.
func (e *GenericHashEngine) DigestName() string {
	return e.name
}

// DigestSize returns the byte length of the produced digest.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}
