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
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/consensys/go-cauer/pkg/input"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] input_file",
	Short: "resynthesise whenever an input file changes.",
	Long: `Synthesise a ladder network for every record in a given file, and do so again
	whenever that file is changed.  This runs until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		job := getLadderJob(cmd)
		filename := args[0]
		//
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		//
		watcher, err := newFileWatcher(filename)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		defer watcher.Close()
		//
		resynthesise(ctx, os.Stdout, job, filename)
		//
		if err := watcher.run(ctx, func() { resynthesise(ctx, os.Stdout, job, filename) }); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Synthesise every record in a given file.  Errors are reported, but do not
// stop the watch.
func resynthesise(ctx context.Context, out io.Writer, job *ladderJob, filename string) {
	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	//
	defer file.Close()
	//
	fmt.Fprintf(out, "--- %s\n", filename)
	//
	if err := synthesiseEach(ctx, out, job, input.NewReader(file)); err != nil {
		log.Debug(err)
		fmt.Fprintln(out, errorMessage(err))
	}
}

// fileWatcher reports changes to a single file.  The enclosing directory is
// watched, since editors often replace a file rather than writing it in place.
type fileWatcher struct {
	watcher  *fsnotify.Watcher
	filename string
}

func newFileWatcher(filename string) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	//
	filename = filepath.Clean(filename)
	//
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return nil, err
	}
	//
	return &fileWatcher{watcher, filename}, nil
}

// Run the watcher until the context is cancelled, calling onChange whenever
// the file is written or (re)created.
func (p *fileWatcher) run(ctx context.Context, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-p.watcher.Events:
			if !ok {
				return nil
			} else if filepath.Clean(event.Name) != p.filename {
				continue
			}
			//
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.Debugf("%s changed (%s)", event.Name, event.Op)
				onChange()
			}
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return nil
			}
			//
			return err
		}
	}
}

func (p *fileWatcher) Close() error {
	return p.watcher.Close()
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addLadderFlags(watchCmd)
}
