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
	"testing"

	hashengines "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines"
	"github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/sha512256"
)

// abcDigest is the NIST SHA-512/256 example digest for "abc".
const abcDigest = "53048e2681941ef99b2e29b76b4c7dae244c9fe024964f6947ed20ae499397f7"

func TestSHA512x256_ImplementsStreamingHashEngine(t *testing.T) {
	var _ hashengines.StreamingHashEngine = (*SHA512x256Engine)(nil)
}

func TestSHA512x256_UpdateThenCompute(t *testing.T) {
	h := NewSHA512x256Engine(nil)
	h.Update([]byte("abc"))

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != abcDigest {
		t.Errorf("Compute() = %q, want %q", got, abcDigest)
	}
	if got := d.Algorithm(); got != "sha512-256" {
		t.Errorf("Algorithm() = %q, want %q", got, "sha512-256")
	}
}

func TestSHA512x256_InitialDataConstructor(t *testing.T) {
	h := NewSHA512x256Engine([]byte("abc"))

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != abcDigest {
		t.Errorf("Compute() = %q, want %q", got, abcDigest)
	}
}

func TestSHA512x256_ResetAndRecompute(t *testing.T) {
	h := NewSHA512x256Engine(nil)
	h.Update([]byte("junk"))
	h.Reset(nil)
	h.Update([]byte("abc"))

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != abcDigest {
		t.Errorf("Compute() after Reset() = %q, want %q", got, abcDigest)
	}
}

// Compute must finalize a copy: the engine keeps absorbing afterwards as
// if Compute had not happened.
func TestSHA512x256_ComputeIsNonDestructive(t *testing.T) {
	h := NewSHA512x256Engine(nil)
	h.Update([]byte("ab"))

	if _, err := h.Compute(); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	h.Update([]byte("c"))
	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != abcDigest {
		t.Errorf("Compute() after intermediate Compute() = %q, want %q", got, abcDigest)
	}
}

func TestSHA512x256_MatchesCorePackage(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i)
	}

	h := NewSHA512x256Engine(nil)
	h.Update(data[:129])
	h.Update(data[129:])

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	want := sha512256.Sum512256(data)
	got := d.Value()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("engine digest %x differs from core digest %x", got, want)
		}
	}
}

func TestSHA512x256_RegisteredInRegistry(t *testing.T) {
	e, err := hashengines.Create("sha512-256")
	if err != nil {
		t.Fatalf("Create(sha512-256) error = %v", err)
	}
	if got := e.DigestSize(); got != sha512256.Size {
		t.Errorf("DigestSize() = %d, want %d", got, sha512256.Size)
	}

	e.Update([]byte("abc"))
	d, err := e.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != abcDigest {
		t.Errorf("Compute() = %q, want %q", got, abcDigest)
	}
}
