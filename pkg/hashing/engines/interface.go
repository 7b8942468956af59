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

// Package hashengines defines the interfaces for message-digest engines
// and a registry mapping algorithm names to engine factories.
//
// The HashEngine interface covers one-shot digest computation; Streaming
// adds incremental absorption. Concrete engines live in the memory and io
// subpackages.
package hashengines

import (
	"github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/digests"
)

// HashEngine is the core interface for computing a digest.
type HashEngine interface {
	// Compute finalizes the computation and returns the digest.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical algorithm name. The name must
	// encode every parameter that influences the output, and is
	// recorded in the algorithm field of the computed Digest.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine. It must match the Size of the Digest returned by Compute.
	DigestSize() int
}

// Streaming is the interface for feeding data to an engine incrementally.
// It is separate from HashEngine so that one-shot engines (such as file
// hashers) do not have to fake it.
type Streaming interface {
	// Update absorbs additional bytes into the hash state. Splitting a
	// stream across Update calls in any way yields the same digest as
	// a single call with the concatenated bytes.
	Update(data []byte)

	// Reset clears the hash state and, if data is non-empty, absorbs
	// it as the start of a new stream.
	Reset(data []byte)
}

// StreamingHashEngine combines HashEngine and Streaming for engines that
// support incremental hashing.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
