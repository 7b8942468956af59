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

package digests

import "testing"

func TestDigestAccessors(t *testing.T) {
	d := NewDigest("sha512-256", []byte{0xde, 0xad, 0xbe, 0xef})

	if got := d.Algorithm(); got != "sha512-256" {
		t.Errorf("Algorithm() = %q, want %q", got, "sha512-256")
	}
	if got := d.Hex(); got != "deadbeef" {
		t.Errorf("Hex() = %q, want %q", got, "deadbeef")
	}
	if got := d.Size(); got != 4 {
		t.Errorf("Size() = %d, want 4", got)
	}
	if got := d.String(); got != "sha512-256:deadbeef" {
		t.Errorf("String() = %q, want %q", got, "sha512-256:deadbeef")
	}
}

func TestDigestImmutability(t *testing.T) {
	raw := []byte{1, 2, 3}
	d := NewDigest("sha256", raw)

	raw[0] = 99
	if got := d.Value(); got[0] != 1 {
		t.Errorf("constructor did not copy its input: value[0] = %d, want 1", got[0])
	}

	v := d.Value()
	v[1] = 99
	if got := d.Value(); got[1] != 2 {
		t.Errorf("Value() exposed internal state: value[1] = %d, want 2", got[1])
	}
}

func TestDigestEqual(t *testing.T) {
	a := NewDigest("sha512-256", []byte{1, 2, 3})
	b := NewDigest("sha512-256", []byte{1, 2, 3})
	c := NewDigest("sha512-256", []byte{1, 2, 4})
	d := NewDigest("sha256", []byte{1, 2, 3})
	e := NewDigest("sha512-256", []byte{1, 2})

	if !a.Equal(b) {
		t.Error("identical digests compare unequal")
	}
	if a.Equal(c) {
		t.Error("digests with different values compare equal")
	}
	if a.Equal(d) {
		t.Error("digests with different algorithms compare equal")
	}
	if a.Equal(e) {
		t.Error("digests with different lengths compare equal")
	}
}
