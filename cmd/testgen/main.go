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
package main

import (
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"path"
	"strings"

	"github.com/consensys/go-cauer/pkg/cauer"
	util "github.com/consensys/go-cauer/pkg/cmd"
	"github.com/consensys/go-cauer/pkg/input"
	"github.com/consensys/go-cauer/pkg/network"
	"github.com/consensys/go-cauer/pkg/util/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("min-elem", 1, "Minimum element coefficient")
	rootCmd.Flags().Uint("max-elem", 3, "Maximum element coefficient")
	rootCmd.Flags().Uint("min-lines", 1, "Minimum number of ladder elements")
	rootCmd.Flags().Uint("max-lines", 5, "Maximum number of ladder elements")
	rootCmd.Flags().Uint("count", 16, "Number of ladders to generate for each length")
	rootCmd.Flags().Int64("seed", 1, "Seed for the random number generator")
	rootCmd.Flags().String("dir", "testdata", "Directory into which files are written")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Test generation utility for go-cauer.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		var cfg TestGenConfig
		// Lookup model
		cfg.model = findModel(args[0])
		cfg.minElem = util.GetUint(cmd, "min-elem")
		cfg.maxElem = util.GetUint(cmd, "max-elem")
		cfg.minLines = util.GetUint(cmd, "min-lines")
		cfg.maxLines = util.GetUint(cmd, "max-lines")
		cfg.count = util.GetUint(cmd, "count")
		//
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		rng := rand.New(rand.NewSource(seed))
		// Generate & split ladders
		valid, invalid := generateTestRecords(cfg, rng)
		// Write out
		dir := util.GetString(cmd, "dir")
		writeTestRecords(dir, cfg.model, "accepts", valid)
		writeTestRecords(dir, cfg.model, "rejects", invalid)
		os.Exit(0)
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	model    Model
	minElem  uint
	maxElem  uint
	minLines uint
	maxLines uint
	count    uint
}

// RecordFn constructs the record for a transfer function whose Cauer-I
// expansion gives a particular sequence of elements.
type RecordFn = func(num, den poly.Polynomial) input.Record

// Model represents a hard-coded oracle for a given test.  Every generated
// ladder whose elements are all realisable is expected to be accepted, and
// every other ladder rejected.
type Model struct {
	// Name of the model in question
	Name string
	// Constructs the record for a given ladder
	Record RecordFn
}

var models []Model = []Model{
	{"cauer_i", cauerIModel},
	{"cauer_ii", cauerIIModel},
}

func findModel(name string) Model {
	for _, m := range models {
		if m.Name == name {
			return m
		}
	}
	//
	panic(fmt.Sprintf("unknown model \"%s\"", name))
}

// Generate test records, split into those which should be accepted and those
// which should be rejected.  Every element of a generated ladder has degree one,
// so that expansion recovers exactly the same ladder.
func generateTestRecords(cfg TestGenConfig, rng *rand.Rand) ([]input.Record, []input.Record) {
	var valid, invalid []input.Record
	//
	for n := cfg.minLines; n <= cfg.maxLines; n++ {
		for i := uint(0); i < cfg.count; i++ {
			elements := generateLadder(cfg, rng, n)
			num, den := cauer.Fold(elements)
			record := cfg.model.Record(num, den)
			// Check whether ladder is valid or not (according to the oracle)
			if network.AllRealisable(elements) {
				valid = append(valid, record)
			} else {
				invalid = append(invalid, record)
			}
		}
	}
	// Done
	return valid, invalid
}

// Generate a ladder of n elements a*s+b, where a is nonzero.  Roughly one in
// four elements is negated, in which case the ladder is not realisable.
func generateLadder(cfg TestGenConfig, rng *rand.Rand, n uint) []poly.Polynomial {
	elements := make([]poly.Polynomial, n)
	//
	for i := range elements {
		a := generateCoefficient(cfg, rng, max(1, cfg.minElem))
		b := generateCoefficient(cfg, rng, 0)
		elements[i] = poly.New(b, a)
		//
		if rng.Intn(4) == 0 {
			elements[i] = elements[i].Neg()
		}
	}
	//
	return elements
}

func generateCoefficient(cfg TestGenConfig, rng *rand.Rand, lowest uint) *big.Rat {
	highest := max(lowest, cfg.maxElem)
	val := int64(lowest) + rng.Int63n(int64(highest-lowest+1))
	//
	return big.NewRat(val, 1)
}

// The Cauer-I model synthesises N/D directly.
func cauerIModel(num, den poly.Polynomial) input.Record {
	return input.Record{Num: num, Den: den}
}

// The Cauer-II model inverts N/D, such that the Cauer-I expansion makes no
// progress and, when falling back on a stall, the Cauer-II expansion recovers
// the ladder.
func cauerIIModel(num, den poly.Polynomial) input.Record {
	return input.Record{Num: den, Den: num}
}

func writeTestRecords(dir string, model Model, ext string, records []input.Record) {
	var sb strings.Builder
	// Construct filename
	filename := path.Join(dir, fmt.Sprintf("%s.auto.%s", model.Name, ext))
	// Generate lines
	for _, record := range records {
		sb.WriteString(input.FormatRecord(record))
		sb.WriteString("\n")
	}
	// Write the file
	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		panic(err)
	}
	// Log what happened
	log.Infof("Wrote %s (%d records)\n", filename, len(records))
}
