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
	"crypto/sha256"
	"hash"

	hashengines "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister("sha256", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA256Engine(nil)
	})
}

// SHA256 is a GenericHashEngine configured for crypto/sha256. Together
// with md5 and sha512-256 it completes the digest algorithm suite of the
// original HTTP daemon.
type SHA256 = GenericHashEngine

// NewSHA256Engine constructs a new SHA-256 engine.
// If initialData is non-empty, it is absorbed immediately.
func NewSHA256Engine(initialData []byte) (*SHA256, error) {
	return NewGenericHashEngine(
		"sha256",
		sha256.Size,
		func() (hash.Hash, error) {
			return sha256.New(), nil
		},
		initialData,
	)
}
