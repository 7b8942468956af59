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

package hashing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/sha512256"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()

	if got := c.HashAlgorithm(); got != DefaultAlgorithm {
		t.Errorf("HashAlgorithm() = %q, want %q", got, DefaultAlgorithm)
	}
	if got := c.ChunkSize(); got != 0 {
		t.Errorf("ChunkSize() = %d, want 0", got)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestConfigFluentSetters(t *testing.T) {
	c := NewConfig().SetHashAlgorithm("sha256").SetChunkSize(4096)

	if got := c.HashAlgorithm(); got != "sha256" {
		t.Errorf("HashAlgorithm() = %q, want %q", got, "sha256")
	}
	if got := c.ChunkSize(); got != 4096 {
		t.Errorf("ChunkSize() = %d, want 4096", got)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := NewConfig().SetHashAlgorithm("no-such-algo").Validate(); err == nil {
		t.Error("Validate() accepted an unknown algorithm")
	}
	if err := NewConfig().SetChunkSize(-1).Validate(); err == nil {
		t.Error("Validate() accepted a negative chunk size")
	}
}

func TestConfigNewEngine(t *testing.T) {
	e, err := NewConfig().NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if got := e.DigestName(); got != DefaultAlgorithm {
		t.Errorf("DigestName() = %q, want %q", got, DefaultAlgorithm)
	}

	if _, err := NewConfig().SetHashAlgorithm("bogus").NewEngine(); err == nil {
		t.Error("NewEngine() with unknown algorithm returned nil error")
	}
}

func TestConfigNewFileHasher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	content := []byte("some file content")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	h, err := NewConfig().SetChunkSize(4).NewFileHasher(path)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	want := sha512256.Sum512256(content)
	if got := d.Value(); string(got) != string(want[:]) {
		t.Errorf("file digest = %x, want %x", got, want)
	}
}
