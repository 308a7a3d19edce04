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
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/consensys/go-cauer/pkg/input"
	"github.com/consensys/go-cauer/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] [input_file]",
	Short: "synthesise ladder networks for many transfer functions.",
	Long: `Synthesise a ladder network for every record "n a0 .. an m b0 .. bm" in the
	given file (or stdin).  Records are processed concurrently, but reported in
	the order given.  When --out-dir is given, the files for the ith record are
	written into a subdirectory named i.`,
	Run: func(cmd *cobra.Command, args []string) {
		var in io.Reader = os.Stdin
		//
		configureLogging(cmd)
		//
		if len(args) > 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		} else if len(args) == 1 {
			file, err := os.Open(args[0])
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			defer file.Close()
			//
			in = file
		}
		//
		job := getLadderJob(cmd)
		//
		records, err := input.NewReader(in).ReadAll()
		if err != nil {
			exitWith(err)
		}
		//
		outcomes, err := synthesiseAll(context.Background(), job, records, GetUint(cmd, "jobs"))
		if err != nil {
			exitWith(err)
		}
		//
		if code := reportAll(os.Stdout, records, outcomes); code != 0 {
			os.Exit(code)
		}
	},
}

// Outcome of synthesising a single record within a batch.
type outcome struct {
	// Output printed for the record.
	text string
	// Error arising, or nil if synthesis succeeded.
	err error
}

// Synthesise every record concurrently, using at most the given number of
// jobs (or one per CPU when this is zero).  Outcomes are returned in the same
// order as the records.  A failure to synthesise any given record is recorded
// in its outcome, rather than halting the batch.
func synthesiseAll(ctx context.Context, job *ladderJob, records []input.Record, jobs uint) ([]outcome, error) {
	var (
		outcomes  = make([]outcome, len(records))
		group, gc = errgroup.WithContext(ctx)
		stats     = util.NewPerfStats()
	)
	//
	if jobs == 0 {
		jobs = uint(runtime.NumCPU())
	}
	//
	group.SetLimit(int(jobs))
	//
	for i, record := range records {
		i, record := i, record
		// (per-iteration copies: go 1.22 loop variable semantics)
		group.Go(func() error {
			var (
				buf bytes.Buffer
				dir string
			)
			//
			if err := gc.Err(); err != nil {
				return err
			} else if job.outDir != "" {
				dir = filepath.Join(job.outDir, strconv.Itoa(i+1))
			}
			//
			err := job.run(gc, &buf, record, dir)
			outcomes[i] = outcome{buf.String(), err}
			//
			log.Debugf("finished record %d of %d", i+1, len(records))
			//
			return nil
		})
	}
	//
	if err := group.Wait(); err != nil {
		return nil, err
	}
	//
	stats.Log("batch synthesis", uint(len(records)))
	//
	return outcomes, nil
}

// Report the outcome of each record in turn, returning the exit code for the
// batch as a whole.  This is the largest exit code of any record.
func reportAll(out io.Writer, records []input.Record, outcomes []outcome) int {
	code := 0
	//
	for i, o := range outcomes {
		fmt.Fprintf(out, "#%d: (%s)/(%s)\n", i+1, records[i].Num, records[i].Den)
		//
		if o.err != nil {
			log.Debug(o.err)
			fmt.Fprintln(out, errorMessage(o.err))
			code = max(code, exitCode(o.err))
		} else {
			fmt.Fprint(out, o.text)
		}
	}
	//
	return code
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addLadderFlags(batchCmd)
	batchCmd.Flags().UintP("jobs", "j", 0, "maximum number of records synthesised concurrently (0 for one per CPU)")
}
