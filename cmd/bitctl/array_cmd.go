// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/bitpack/bitstring/bitstring"
	"github.com/bitpack/bitstring/internal/dtype"
	"github.com/spf13/cobra"
)

func newArrayCmd(noColor *bool) *cobra.Command {
	var dtypeName string
	var length int
	var valuesFlag string
	var scale float64
	var scaleAuto bool
	var mxfpOverflow string

	cmd := &cobra.Command{
		Use:   "array",
		Short: "Build a homogeneous typed Array from a comma-separated value list and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloatList(valuesFlag)
			if err != nil {
				return err
			}
			overflow, err := parseMXFPOverflow(mxfpOverflow)
			if err != nil {
				return err
			}
			var a bitstring.Array
			if scaleAuto || scale != 0 {
				a, err = bitstring.NewScaledArray(dtypeName, length, values, scale, scaleAuto, overflow)
			} else {
				anyValues, cerr := valuesForDtype(dtypeName, length, values)
				if cerr != nil {
					return cerr
				}
				a, err = bitstring.NewArray(dtypeName, length, anyValues, overflow)
			}
			if err != nil {
				return err
			}
			st := newStyler(*noColor)
			for i := 0; i < a.Count(); i++ {
				v, gerr := a.Get(i)
				if gerr != nil {
					return gerr
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", i, st.render(resultStyle, fmt.Sprintf("%v", v)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dtypeName, "dtype", "t", "uint", "Element dtype family name")
	cmd.Flags().IntVarP(&length, "length", "l", 8, "Element bit length")
	cmd.Flags().StringVar(&valuesFlag, "values", "", "Comma-separated numeric values (required)")
	cmd.Flags().Float64Var(&scale, "scale", 0, "Fixed scale factor (0 disables scaling)")
	cmd.Flags().BoolVar(&scaleAuto, "scale-auto", false, "Resolve the smallest power-of-two scale automatically")
	cmd.Flags().StringVar(&mxfpOverflow, "mxfp-overflow", "saturate", `MXFP overflow policy: "saturate" or "inf"`)
	cmd.MarkFlagRequired("values")
	return cmd
}

// parseMXFPOverflow maps the --mxfp-overflow flag to bitstring's policy enum.
func parseMXFPOverflow(s string) (bitstring.MXFPOverflowPolicy, error) {
	switch strings.ToLower(s) {
	case "saturate":
		return bitstring.MXFPSaturate, nil
	case "inf":
		return bitstring.MXFPOverflowToInf, nil
	default:
		return 0, fmt.Errorf("invalid --mxfp-overflow %q: want \"saturate\" or \"inf\"", s)
	}
}

// valuesForDtype converts the CLI's parsed float64 values into the Go
// type the named dtype family's Encode expects, mirroring the
// conversions bitstring.Array.AsType applies internally.
func valuesForDtype(name string, length int, values []float64) ([]any, error) {
	d, err := dtype.New(name, length, false, false, 0)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(values))
	for i, v := range values {
		switch d.ReturnType() {
		case dtype.ReturnFloat:
			out[i] = v
		case dtype.ReturnBigInt:
			out[i] = big.NewInt(int64(math.Round(v)))
		case dtype.ReturnUint:
			out[i] = uint64(math.Round(v))
		case dtype.ReturnInt:
			out[i] = int64(math.Round(v))
		case dtype.ReturnBool:
			out[i] = v != 0
		default:
			return nil, fmt.Errorf("dtype %q cannot be built from numeric CLI values", name)
		}
	}
	return out, nil
}

func parseFloatList(s string) ([]float64, error) {
	var out []float64
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", tok, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--values must name at least one number")
	}
	return out, nil
}
