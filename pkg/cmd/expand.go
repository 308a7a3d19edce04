// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-cauer/pkg/cauer"
	"github.com/consensys/go-cauer/pkg/input"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags]",
	Short: "print the continued fraction expansion of a transfer function.",
	Long: `Print the quotients of the continued fraction expansion of N(s)/D(s), without
	assigning them to a ladder.  Use --reciprocal to expand D(s)/N(s) instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		var options []cauer.Option
		//
		configureLogging(cmd)
		//
		record := getRecord(cmd)
		//
		if GetFlag(cmd, "reciprocal") {
			record.Num, record.Den = record.Den, record.Num
		}
		//
		if GetFlag(cmd, "sign-normalise") {
			options = append(options, cauer.WithSignNormalisation())
		}
		//
		if err := printExpansion(os.Stdout, record, options...); err != nil {
			exitWith(err)
		}
	},
}

func printExpansion(out io.Writer, record input.Record, options ...cauer.Option) error {
	expansion, err := cauer.Expand(record.Num, record.Den, options...)
	if err != nil {
		return err
	}
	//
	fmt.Fprintln(out, expansion.String())
	//
	if !expansion.Exact() {
		num, den := expansion.Tail()
		fmt.Fprintf(out, "remainder (%s)/(%s)\n", num, den)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.Flags().String("num", "", "numerator N(s)")
	expandCmd.Flags().String("den", "", "denominator D(s)")
	expandCmd.Flags().Bool("reciprocal", false, "expand D(s)/N(s)")
}
