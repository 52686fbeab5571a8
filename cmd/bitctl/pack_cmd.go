// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitpack/bitstring/bitstring"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPackCmd() *cobra.Command {
	var output string
	var ppFormat string

	cmd := &cobra.Command{
		Use:   "pack <format>",
		Short: "Build a bitstring from a literal format string and write its bytes",
		Long: "Encodes a comma-separated token list (e.g. \"uint:8=255,hex:16=dead,0b101\") " +
			"into bytes. Odd bit lengths are right-padded with zero bits before writing.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger().Debug("packing", zap.String("format", args[0]))
			b, err := bitstring.ParseAuto(args[0])
			if err != nil {
				return err
			}
			if ppFormat != "" {
				return b.PrettyPrint(cmd.OutOrStdout(), bitstring.PPOptions{Format: ppFormat, GroupSize: 2, Separator: " ", GroupsPerLine: 8})
			}
			bytes, err := bytesForWrite(b)
			if err != nil {
				return err
			}
			if err := writeOutput(output, bytes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bits (%d bytes)\n", b.Len(), len(bytes))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file (\"-\" for stdout; .gz compresses)")
	cmd.Flags().StringVar(&ppFormat, "print", "", "Print instead of writing, in this format (bin|hex|oct)")
	return cmd
}

// bytesForWrite renders b as bytes, right-padding with zero bits to a
// byte boundary when its length isn't already a multiple of 8.
func bytesForWrite(b bitstring.Bits) ([]byte, error) {
	if b.Len()%8 == 0 {
		return b.Bytes()
	}
	out, err := concatForPadding(b, 8-b.Len()%8)
	if err != nil {
		return nil, err
	}
	return out.Bytes()
}

func concatForPadding(b bitstring.Bits, pad int) (bitstring.Bits, error) {
	zeros, err := bitstring.New(bitstring.Uint(uint64(0), pad))
	if err != nil {
		return bitstring.Bits{}, err
	}
	arr := b.Mutable()
	if err := arr.Insert(arr.Len(), zeros); err != nil {
		return bitstring.Bits{}, err
	}
	return arr.Immutable(), nil
}
