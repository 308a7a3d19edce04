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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/consensys/go-cauer/pkg/cauer"
	"github.com/consensys/go-cauer/pkg/input"
	"github.com/consensys/go-cauer/pkg/network"
	"github.com/consensys/go-cauer/pkg/synth"
	"github.com/consensys/go-cauer/pkg/util/poly"
	"github.com/google/go-cmp/cmp"
)

func Test_Synthesise_0(t *testing.T) {
	checkOutput(t, newJob(false), "1 1 1\n0 1", "Z = [s]", "Y = [1]")
}

func Test_Synthesise_1(t *testing.T) {
	checkOutput(t, newJob(true), "2 3 4 1\n2 0 2 1",
		"Z = [s]", "Y = [2s+3]", "(around-infinity ladder)", "Z1: L=1H", "Y1: C=2F || R=0.333333Ω")
}

func Test_Synthesise_2(t *testing.T) {
	// Records are processed in turn
	checkOutput(t, newFallbackJob(), "1 0 1\n0 1\n0 1\n1 1 1", "Z = [s]", "Y = []", "Z = []", "Y = [s+1]")
}

func Test_Synthesise_3(t *testing.T) {
	// Without falling back on a stall, 1/(s+1) has no ladder
	var out bytes.Buffer
	//
	err := synthesiseEach(context.Background(), &out, newJob(false), input.NewReader(strings.NewReader("0 1\n1 1 1")))
	//
	if !errors.Is(err, network.ErrInvalidNetwork) {
		t.Errorf("expected invalid network, got %v", err)
	} else if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func Test_Synthesise_Invalid(t *testing.T) {
	var out bytes.Buffer
	//
	err := synthesiseEach(context.Background(), &out, newJob(false), input.NewReader(strings.NewReader("1 1 1\n1 3 2")))
	//
	if !errors.Is(err, network.ErrInvalidNetwork) {
		t.Errorf("expected invalid network, got %v", err)
	} else if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func Test_Synthesise_Files(t *testing.T) {
	var (
		out bytes.Buffer
		dir = t.TempDir()
		job = newJob(false)
	)
	//
	record := input.Record{Num: parse("s^4+3s^2+1"), Den: parse("s^3+2s")}
	//
	if err := job.run(context.Background(), &out, record, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	for name, expected := range map[string]string{"Z.csv": "s,s\n", "Y.csv": "s,s\n"} {
		if data, err := os.ReadFile(filepath.Join(dir, name)); err != nil {
			t.Errorf("unexpected error: %v", err)
		} else if string(data) != expected {
			t.Errorf("%s: expected %q, got %q", name, expected, string(data))
		}
	}
}

func Test_Synthesise_Files_Fail(t *testing.T) {
	var (
		out bytes.Buffer
		dir = filepath.Join(t.TempDir(), "ladder")
	)
	// Output directory cannot be created over an existing file
	if err := os.WriteFile(dir, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	//
	record := input.Record{Num: parse("s+1"), Den: parse("s")}
	//
	if err := newJob(true).run(context.Background(), &out, record, dir); err == nil {
		t.Errorf("expected failure writing into %s", dir)
	} else if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func Test_Expand_0(t *testing.T) {
	var out bytes.Buffer
	//
	if err := printExpansion(&out, input.Record{Num: parse("s+1"), Den: parse("s")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if out.String() != "[1, s]\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func Test_Expand_1(t *testing.T) {
	var out bytes.Buffer
	//
	if err := printExpansion(&out, input.Record{Num: parse("1"), Den: parse("s")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if out.String() != "[]\nremainder (1)/(s)\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func Test_Expand_2(t *testing.T) {
	err := printExpansion(&bytes.Buffer{}, input.Record{Num: parse("s"), Den: parse("0")})
	//
	if !errors.Is(err, cauer.ErrDomain) {
		t.Errorf("expected domain error, got %v", err)
	}
}

func Test_Batch_0(t *testing.T) {
	var (
		records []input.Record
		lines   []string
	)
	// Lots of records, so they complete out of order
	for i := 1; i <= 40; i++ {
		num := parse(fmt.Sprintf("%d s", i))
		records = append(records, input.Record{Num: num, Den: parse("1")})
		lines = append(lines, fmt.Sprintf("Z = [%s]", num))
	}
	//
	outcomes, err := synthesiseAll(context.Background(), newJob(false), records, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	var got []string
	//
	for _, o := range outcomes {
		if o.err != nil {
			t.Fatalf("unexpected error: %v", o.err)
		}
		//
		got = append(got, strings.Split(o.text, "\n")[0])
	}
	//
	if diff := cmp.Diff(lines, got); diff != "" {
		t.Errorf("batch results out of order (-want +got):\n%s", diff)
	}
}

func Test_Batch_1(t *testing.T) {
	var (
		out     bytes.Buffer
		records = []input.Record{
			{Num: parse("s+1"), Den: parse("s")},
			{Num: parse("s+1"), Den: parse("2s+3")},
			{Num: parse("s"), Den: parse("0")},
		}
	)
	//
	outcomes, err := synthesiseAll(context.Background(), newJob(false), records, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	code := reportAll(&out, records, outcomes)
	expected := []string{
		"#1: (s+1)/(s)", "Z = [s]", "Y = [1]",
		"#2: (s+1)/(2s+3)", "Invalid network",
		"#3: (s)/(0)", "Error: division by zero", "",
	}
	//
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	//
	if diff := cmp.Diff(expected, strings.Split(out.String(), "\n")); diff != "" {
		t.Errorf("unexpected report (-want +got):\n%s", diff)
	}
}

func Test_Batch_Files(t *testing.T) {
	var (
		dir     = t.TempDir()
		job     = newFallbackJob()
		records = []input.Record{
			{Num: parse("s"), Den: parse("1")},
			{Num: parse("1"), Den: parse("s+1")},
		}
	)
	//
	job.outDir = dir
	//
	if _, err := synthesiseAll(context.Background(), job, records, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	for i, expected := range []string{"s\n", "s+1\n"} {
		name := "Z.csv"
		if i == 1 {
			name = "Y.csv"
		}
		//
		filename := filepath.Join(dir, fmt.Sprintf("%d", i+1), name)
		//
		if data, err := os.ReadFile(filename); err != nil {
			t.Errorf("unexpected error: %v", err)
		} else if string(data) != expected {
			t.Errorf("%s: expected %q, got %q", filename, expected, string(data))
		}
	}
}

func Test_ExitCode(t *testing.T) {
	checkExitCode(t, nil, 0)
	checkExitCode(t, fmt.Errorf("%w: bad", input.ErrMalformed), 2)
	checkExitCode(t, fmt.Errorf("%w: bad", network.ErrInvalidNetwork), 1)
	checkExitCode(t, cauer.ErrDomain, 1)
	checkExitCode(t, synth.ErrNotRealisable, 1)
}

func Test_Watch(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "input.txt")
		changes  = make(chan struct{}, 16)
	)
	//
	if err := os.WriteFile(filename, []byte("1 1 1\n0 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	//
	watcher, err := newFileWatcher(filename)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	defer watcher.Close()
	//
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	//
	go func() {
		done <- watcher.run(ctx, func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
	}()
	// Changes to other files are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("1"), 0644); err != nil {
		t.Fatal(err)
	} else if err := os.WriteFile(filename, []byte("0 1\n1 1 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	//
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Errorf("change not reported")
	}
	//
	cancel()
	//
	if err := <-done; err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func Test_Resynthesise(t *testing.T) {
	var (
		out      bytes.Buffer
		filename = filepath.Join(t.TempDir(), "input.txt")
	)
	//
	if err := os.WriteFile(filename, []byte("0 1\n1 1 1\n1 1"), 0644); err != nil {
		t.Fatal(err)
	}
	//
	resynthesise(context.Background(), &out, newFallbackJob(), filename)
	//
	lines := strings.Split(out.String(), "\n")
	//
	if len(lines) != 5 || lines[1] != "Z = []" || lines[2] != "Y = [s+1]" ||
		!strings.HasPrefix(lines[3], "Error: input: malformed") {
		t.Errorf("unexpected output %q", out.String())
	}
}

// =========================================================================================

func newJob(describe bool) *ladderJob {
	return &ladderJob{
		synthesiser: synth.NewSynthesiser(synth.Config{}),
		describe:    describe,
	}
}

func newFallbackJob() *ladderJob {
	return &ladderJob{synthesiser: synth.NewSynthesiser(synth.Config{FallbackOnStall: true})}
}

func checkOutput(t *testing.T, job *ladderJob, text string, expected ...string) {
	var out bytes.Buffer
	//
	if err := synthesiseEach(context.Background(), &out, job, input.NewReader(strings.NewReader(text))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if diff := cmp.Diff(append(expected, ""), strings.Split(out.String(), "\n")); diff != "" {
		t.Errorf("unexpected output for %q (-want +got):\n%s", text, diff)
	}
}

func checkExitCode(t *testing.T, err error, expected int) {
	if code := exitCode(err); code != expected {
		t.Errorf("expected exit code %d for %v, got %d", expected, err, code)
	}
}

func parse(text string) poly.Polynomial {
	p, errs := poly.ParseString(text)
	if len(errs) > 0 {
		panic(errs[0].Error())
	}
	//
	return p
}
