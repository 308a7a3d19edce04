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
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-cauer/pkg/input"
	"github.com/consensys/go-cauer/pkg/network"
	"github.com/consensys/go-cauer/pkg/output"
	"github.com/consensys/go-cauer/pkg/synth"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ladderJob encapsulates what should happen to each transfer function read by
// a command.
type ladderJob struct {
	synthesiser *synth.Synthesiser
	// Directory into which files are written, or empty if none are written.
	outDir string
	// Renderer invoked after files are written.
	renderer output.Renderer
	// Print element values for each branch.
	describe bool
}

// Construct a ladder job from the given command's flags.
func getLadderJob(cmd *cobra.Command) *ladderJob {
	var renderer output.Renderer
	//
	outDir := GetString(cmd, "out-dir")
	//
	if cmdline := GetString(cmd, "render"); cmdline != "" {
		if outDir == "" {
			fmt.Println("--render requires --out-dir")
			os.Exit(2)
		}
		//
		renderer = output.NewCommandRenderer(cmdline)
	}
	//
	return &ladderJob{
		synthesiser: synth.NewSynthesiser(getSynthConfig(cmd)),
		outDir:      outDir,
		renderer:    renderer,
		describe:    GetFlag(cmd, "describe"),
	}
}

// Synthesise a ladder for a given record, write it into a given directory
// (unless this is empty) and print it.  Nothing is printed unless the ladder is
// written successfully.  Failure to render is logged, but is not an error.
func (p *ladderJob) run(ctx context.Context, out io.Writer, record input.Record, dir string) error {
	var (
		text  bytes.Buffer
		files []string
	)
	//
	result, err := p.synthesiser.Synthesise(record.Num, record.Den)
	if err != nil {
		return err
	} else if err := printLadder(&text, result, p.describe); err != nil {
		return err
	}
	//
	if dir != "" {
		if files, err = output.NewCSVWriter(dir).Write(result.Ladder); err != nil {
			return err
		}
	}
	//
	if _, err := out.Write(text.Bytes()); err != nil {
		return err
	}
	//
	if dir != "" && p.renderer != nil {
		if err := p.renderer.Render(ctx, dir, files); err != nil {
			log.Warnf("ladder written to %s, but not rendered", dir)
		}
	}
	//
	return nil
}

// Print a synthesised ladder, optionally followed by the values of its
// elements.
func printLadder(out io.Writer, result *synth.Result, describe bool) error {
	fmt.Fprintln(out, result.Ladder.String())
	//
	if !describe {
		return nil
	}
	//
	zs, ys, err := network.DescribeAll(result.Ladder)
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(out, "(%s ladder)\n", result.Direction)
	//
	for i, n := 0, max(len(zs), len(ys)); i < n; i++ {
		if i < len(zs) {
			fmt.Fprintf(out, "Z%d: %s\n", i+1, zs[i])
		}
		//
		if i < len(ys) {
			fmt.Fprintf(out, "Y%d: %s\n", i+1, ys[i])
		}
	}
	//
	return nil
}

func addLadderFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("describe", false, "print element values for each branch")
	cmd.Flags().StringP("out-dir", "o", "", "write Z.csv and Y.csv into this directory")
	cmd.Flags().String("render", "", "command run in the output directory to render each ladder")
}
