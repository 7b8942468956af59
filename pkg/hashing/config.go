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

// Package hashing configures digest computation: which algorithm to use
// and how file contents are streamed into it.
package hashing

import (
	"fmt"

	hashengines "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines"
	hashio "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines/io"

	// Register the built-in engines.
	_ "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines/memory"
)

// DefaultAlgorithm is the algorithm used when none is configured.
const DefaultAlgorithm = "sha512-256"

// Config holds configuration for digest computation.
//
// The zero value is not usable; construct with NewConfig and adjust via
// the fluent setters.
type Config struct {
	// Hash algorithm name, as registered in the engines registry.
	hashAlgorithm string

	// Chunk size for file reading (0 = read the whole file at once).
	chunkSize int
}

// NewConfig creates a hashing configuration with defaults: SHA-512/256,
// whole-file reads.
func NewConfig() *Config {
	return &Config{
		hashAlgorithm: DefaultAlgorithm,
		chunkSize:     0,
	}
}

// SetHashAlgorithm selects the hash algorithm by registry name.
func (c *Config) SetHashAlgorithm(algorithm string) *Config {
	c.hashAlgorithm = algorithm
	return c
}

// SetChunkSize sets the number of bytes read per chunk when hashing
// files. Zero reads the whole file at once.
func (c *Config) SetChunkSize(chunkSize int) *Config {
	c.chunkSize = chunkSize
	return c
}

// HashAlgorithm returns the configured algorithm name.
func (c *Config) HashAlgorithm() string {
	return c.hashAlgorithm
}

// ChunkSize returns the configured chunk size.
func (c *Config) ChunkSize() int {
	return c.chunkSize
}

// Validate checks the configuration against the engines registry.
func (c *Config) Validate() error {
	if c.chunkSize < 0 {
		return fmt.Errorf("chunk size must be non-negative, got %d", c.chunkSize)
	}
	if !hashengines.IsSupported(c.hashAlgorithm) {
		return fmt.Errorf("unsupported hash algorithm: %s (supported: %v)",
			c.hashAlgorithm, hashengines.SupportedAlgorithms())
	}
	return nil
}

// NewEngine creates a streaming engine for the configured algorithm.
func (c *Config) NewEngine() (hashengines.StreamingHashEngine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return hashengines.Create(c.hashAlgorithm)
}

// NewFileHasher creates a file hasher for path using the configured
// algorithm and chunk size.
func (c *Config) NewFileHasher(path string) (hashio.FileHasher, error) {
	engine, err := c.NewEngine()
	if err != nil {
		return nil, err
	}
	return hashio.NewSimpleFileHasher(path, engine, c.chunkSize, "")
}
