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

package options

import (
	"github.com/RaidenTaisha/libmicrohttpd/pkg/hashing"
	"github.com/spf13/cobra"
)

// Interface is implemented by any option group that can register its flags
// on a cobra command.
type Interface interface {
	AddFlags(cmd *cobra.Command)
}

// DigestOptions defines flags for the digest subcommand.
type DigestOptions struct {
	// Algorithm is the registry name of the hash algorithm to use.
	Algorithm string
	// ChunkSize is the number of bytes read per chunk when hashing
	// files. Zero reads each file at once.
	ChunkSize int
	// HexOnly emits only the hex digest, without the algorithm prefix.
	HexOnly bool
}

var _ Interface = (*DigestOptions)(nil)

// AddFlags adds digest flags to the cobra command.
func (o *DigestOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", hashing.DefaultAlgorithm,
		"hash algorithm to use (see the algorithms subcommand)")
	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", 0,
		"bytes read per chunk when hashing files (0 reads each file at once)")
	cmd.Flags().BoolVar(&o.HexOnly, "hex-only", false,
		"print only the hex digest, without the algorithm prefix")
}

// ToConfig builds a hashing configuration from the options.
func (o *DigestOptions) ToConfig() *hashing.Config {
	return hashing.NewConfig().
		SetHashAlgorithm(o.Algorithm).
		SetChunkSize(o.ChunkSize)
}

// AddAllFlags is a helper function to register multiple flag groups at once.
func AddAllFlags(cmd *cobra.Command, flagGroups ...Interface) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}
