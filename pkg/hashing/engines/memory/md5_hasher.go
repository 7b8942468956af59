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
	"crypto/md5" // #nosec G501 -- legacy digest-auth compatibility, not collision resistance
	"hash"

	hashengines "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister("md5", func() (hashengines.StreamingHashEngine, error) {
		return NewMD5Engine(nil)
	})
}

// MD5 is a GenericHashEngine configured for crypto/md5. It exists only
// for compatibility with RFC 7616 digest authentication peers that cannot
// negotiate a SHA-2 algorithm.
type MD5 = GenericHashEngine

// NewMD5Engine constructs a new MD5 engine.
// If initialData is non-empty, it is absorbed immediately.
func NewMD5Engine(initialData []byte) (*MD5, error) {
	return NewGenericHashEngine(
		"md5",
		md5.Size,
		func() (hash.Hash, error) {
			return md5.New(), nil
		},
		initialData,
	)
}
