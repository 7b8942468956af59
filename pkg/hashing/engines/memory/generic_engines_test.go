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
	"errors"
	"hash"
	"testing"

	hashengines "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines"
)

// Known "abc" digests for the generic engines.
var genericVectors = []struct {
	algorithm string
	size      int
	want      string
}{
	{
		algorithm: "sha256",
		size:      32,
		want:      "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		algorithm: "md5",
		size:      16,
		want:      "900150983cd24fb0d6963f7d28e17f72",
	},
	{
		algorithm: "blake2b",
		size:      64,
		want: "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d1" +
			"7d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
	},
}

func TestGenericEngines_KnownAnswers(t *testing.T) {
	for _, tc := range genericVectors {
		t.Run(tc.algorithm, func(t *testing.T) {
			e, err := hashengines.Create(tc.algorithm)
			if err != nil {
				t.Fatalf("Create(%s) error = %v", tc.algorithm, err)
			}
			if got := e.DigestSize(); got != tc.size {
				t.Errorf("DigestSize() = %d, want %d", got, tc.size)
			}

			e.Update([]byte("ab"))
			e.Update([]byte("c"))
			d, err := e.Compute()
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if got := d.Hex(); got != tc.want {
				t.Errorf("Compute() = %q, want %q", got, tc.want)
			}
			if got := d.Algorithm(); got != tc.algorithm {
				t.Errorf("Algorithm() = %q, want %q", got, tc.algorithm)
			}
		})
	}
}

func TestGenericEngines_ResetWithInitialData(t *testing.T) {
	e, err := NewSHA256Engine(nil)
	if err != nil {
		t.Fatalf("NewSHA256Engine() error = %v", err)
	}

	e.Update([]byte("junk"))
	e.Reset([]byte("abc"))

	d, err := e.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := d.Hex(); got != want {
		t.Errorf("Compute() after Reset(initial) = %q, want %q", got, want)
	}
}

func TestGenericEngine_FactoryErrorPropagates(t *testing.T) {
	errFactory := errors.New("no such hash")

	_, err := NewGenericHashEngine("broken", 0, func() (hash.Hash, error) {
		return nil, errFactory
	}, nil)
	if !errors.Is(err, errFactory) {
		t.Fatalf("NewGenericHashEngine() error = %v, want %v", err, errFactory)
	}
}
