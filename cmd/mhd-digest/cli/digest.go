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

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RaidenTaisha/libmicrohttpd/cmd/mhd-digest/cli/options"
	"github.com/RaidenTaisha/libmicrohttpd/pkg/hashing"
	"github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/digests"
	hashio "github.com/RaidenTaisha/libmicrohttpd/pkg/hashing/engines/io"
	"github.com/RaidenTaisha/libmicrohttpd/pkg/tracing"
)

// stdinChunkSize is the read size used when digesting standard input.
const stdinChunkSize = 64 * 1024

// runDigest computes and prints a digest for every named input, with
// tracing. The file hasher is constructed once and re-pointed per file.
func runDigest(cmd *cobra.Command, o *options.DigestOptions, args []string) error {
	cfg := o.ToConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	obs := ro.NewObservability()
	logger := obs.Logger

	ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
	defer cancel()

	attrs := map[string]interface{}{
		"mhd_digest.algorithm":  cfg.HashAlgorithm(),
		"mhd_digest.chunk_size": cfg.ChunkSize(),
		"mhd_digest.inputs":     len(args),
	}
	return tracing.Run(ctx, "Digest", attrs, func(ctx context.Context) error {
		if len(args) == 0 {
			d, err := digestStdin(ctx, cfg)
			if err != nil {
				return err
			}
			printDigest(cmd, o, d, "-")
			return nil
		}

		engine, err := cfg.NewEngine()
		if err != nil {
			return err
		}
		hasher, err := hashio.NewSimpleFileHasher(args[0], engine, cfg.ChunkSize(), "")
		if err != nil {
			return err
		}
		for _, path := range args {
			var d digests.Digest
			if path == "-" {
				d, err = digestStdin(ctx, cfg)
			} else {
				if err = hasher.SetFile(path); err != nil {
					return err
				}
				d, err = hasher.ComputeContext(ctx)
			}
			if err != nil {
				return err
			}
			logger.Debug("digested %s with %s", path, d.Algorithm())
			printDigest(cmd, o, d, path)
		}
		return nil
	})
}

// digestStdin streams standard input through an engine for the configured
// algorithm, honoring context cancellation between reads.
func digestStdin(ctx context.Context, cfg *hashing.Config) (digests.Digest, error) {
	engine, err := cfg.NewEngine()
	if err != nil {
		return digests.Digest{}, err
	}

	buf := make([]byte, stdinChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return digests.Digest{}, err
		}
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			engine.Update(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return digests.Digest{}, fmt.Errorf("read stdin: %w", err)
		}
	}
	return engine.Compute()
}

// printDigest writes one result line in checksum-tool form, either
// "algorithm:hex  path" or, with --hex-only, "hex  path".
func printDigest(cmd *cobra.Command, o *options.DigestOptions, d digests.Digest, path string) {
	if o.HexOnly {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.Hex(), path)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.String(), path)
}

// Digest creates the digest subcommand. It hashes the named files, or
// standard input when no file is given (or when a file is "-").
//
// Returns a *cobra.Command configured for digest computation.
func Digest() *cobra.Command {
	o := &options.DigestOptions{}

	long := `Compute message digests.

Hashes each FILE and prints one line per input in the form
"algorithm:hex  path". With no FILE, or when FILE is -, standard input
is hashed and reported with path "-".

The default algorithm is SHA-512/256. Use --algorithm to select another
registered algorithm, and the algorithms subcommand to list them.`

	cmd := &cobra.Command{
		Use:   "digest [OPTIONS] [FILE...]",
		Short: "Compute message digests of files or standard input.",
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, o, args)
		},
	}

	o.AddFlags(cmd)
	return cmd
}
