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
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-cauer/pkg/input"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var synthCmd = &cobra.Command{
	Use:   "synth [flags]",
	Short: "synthesise a ladder network for a transfer function.",
	Long: `Synthesise a Cauer ladder network for a transfer function H(s) = N(s)/D(s).
	The numerator and denominator are given either using --num and --den (as
	expressions such as "s^2+4s+3" or ascending coefficients such as "3,4,1"), or
	read from stdin as records "n a0 .. an m b0 .. bm".`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		job := getLadderJob(cmd)
		ctx := context.Background()
		//
		if cmd.Flags().Changed("num") || cmd.Flags().Changed("den") {
			record := getRecord(cmd)
			//
			if err := job.run(ctx, os.Stdout, record, job.outDir); err != nil {
				exitWith(err)
			}
			//
			return
		}
		//
		reader := input.NewReader(os.Stdin)
		// Only prompt an interactive user
		if term.IsTerminal(int(os.Stdin.Fd())) {
			reader.WithPrompt(func(msg string) { fmt.Println(msg) })
		}
		//
		if err := synthesiseEach(ctx, os.Stdout, job, reader); err != nil {
			exitWith(err)
		}
	},
}

// Synthesise every record from a reader in turn, stopping at the first failure.
func synthesiseEach(ctx context.Context, out io.Writer, job *ladderJob, reader *input.Reader) error {
	for {
		record, err := reader.Next()
		//
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		} else if err := job.run(ctx, out, record, job.outDir); err != nil {
			return err
		}
	}
}

// Read a transfer function from the --num and --den flags.
func getRecord(cmd *cobra.Command) input.Record {
	if !cmd.Flags().Changed("num") || !cmd.Flags().Changed("den") {
		fmt.Println("both --num and --den are required")
		os.Exit(2)
	}
	//
	return input.Record{Num: getPolynomial(cmd, "num"), Den: getPolynomial(cmd, "den")}
}

func init() {
	rootCmd.AddCommand(synthCmd)
	addLadderFlags(synthCmd)
	synthCmd.Flags().String("num", "", "numerator N(s)")
	synthCmd.Flags().String("den", "", "denominator D(s)")
}
