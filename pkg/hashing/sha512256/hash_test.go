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

import (
	"bytes"
	"crypto/sha512"
	"testing"
)

func TestHashAdapterMatchesStdlib(t *testing.T) {
	data := testPattern(300)

	h := New()
	ref := sha512.New512_256()
	for _, chunk := range [][]byte{data[:100], data[100:129], data[129:]} {
		h.Write(chunk)
		ref.Write(chunk)
	}

	if got, want := h.Sum(nil), ref.Sum(nil); !bytes.Equal(got, want) {
		t.Errorf("Sum() = %x, want %x", got, want)
	}
}

func TestHashAdapterSumIsNonDestructive(t *testing.T) {
	data := testPattern(200)

	h := New()
	h.Write(data[:77])
	first := h.Sum(nil)
	second := h.Sum(nil)
	if !bytes.Equal(first, second) {
		t.Errorf("repeated Sum() differs: %x vs %x", first, second)
	}

	h.Write(data[77:])
	want := Sum512256(data)
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Errorf("Sum() after continued Write = %x, want %x", got, want)
	}
}

func TestHashAdapterSumAppends(t *testing.T) {
	h := New()
	h.Write([]byte("abc"))

	prefix := []byte("prefix")
	out := h.Sum(prefix)
	if !bytes.HasPrefix(out, prefix) {
		t.Fatalf("Sum(prefix) = %x, lost the prefix", out)
	}
	if len(out) != len(prefix)+Size {
		t.Errorf("Sum(prefix) length = %d, want %d", len(out), len(prefix)+Size)
	}
}

func TestHashAdapterReset(t *testing.T) {
	h := New()
	h.Write([]byte("junk"))
	h.Reset()
	h.Write([]byte("abc"))

	want := Sum512256([]byte("abc"))
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Errorf("Sum() after Reset = %x, want %x", got, want)
	}
}

func TestHashAdapterSizes(t *testing.T) {
	h := New()
	if got := h.Size(); got != Size {
		t.Errorf("Size() = %d, want %d", got, Size)
	}
	if got := h.BlockSize(); got != BlockSize {
		t.Errorf("BlockSize() = %d, want %d", got, BlockSize)
	}
}
