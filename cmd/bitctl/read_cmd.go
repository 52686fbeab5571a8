// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitpack/bitstring/bitstring"
	"github.com/spf13/cobra"
)

func newReadCmd() *cobra.Command {
	var fieldsFlag string

	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Read a list of typed fields out of a file's bits in order",
		Long: "--fields takes a comma-separated list of name:length tokens (e.g.\n" +
			"\"uint:8,hex:16,ue\"); a family with no fixed length (ue, se, uie, sie) " +
			"omits the :length suffix.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFieldSpecs(fieldsFlag)
			if err != nil {
				return err
			}
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			b, err := bitstring.New(bitstring.BytesValue(data))
			if err != nil {
				return err
			}
			stream := bitstring.NewConstBitStream(b)
			vals, err := stream.ReadList(fields)
			if err != nil {
				return err
			}
			for i, v := range vals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", fields[i].Name, v)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "consumed %d of %d bits\n", stream.Pos(), stream.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&fieldsFlag, "fields", "", "Comma-separated name:length field list (required)")
	cmd.MarkFlagRequired("fields")
	return cmd
}

// parseFieldSpecs parses a comma-separated "name:length,name,..." list into
// FieldSpecs; a missing :length becomes -1 (variable-length family).
func parseFieldSpecs(s string) ([]bitstring.FieldSpec, error) {
	var specs []bitstring.FieldSpec
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		name, lenStr, hasLen := strings.Cut(tok, ":")
		length := -1
		if hasLen {
			n, err := strconv.Atoi(lenStr)
			if err != nil {
				return nil, fmt.Errorf("invalid field %q: %w", tok, err)
			}
			length = n
		}
		specs = append(specs, bitstring.FieldSpec{Name: name, Length: length})
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("--fields must name at least one field")
	}
	return specs, nil
}
