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
package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/consensys/go-cauer/pkg/cauer"
	"github.com/consensys/go-cauer/pkg/input"
	"github.com/consensys/go-cauer/pkg/network"
	"github.com/consensys/go-cauer/pkg/synth"
	"github.com/consensys/go-cauer/pkg/util/poly"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the record files (accepts/rejects) are found.
const TestDir = "../../testdata"

// TestFileConfig identifies a kind of test file, and whether the records it
// contains are expected to be synthesised or not.
type TestFileConfig struct {
	extension string
	expected  bool
}

// TESTFILE_EXTENSIONS identifies the possible file extensions used for test
// files.
var TESTFILE_EXTENSIONS []TestFileConfig = []TestFileConfig{
	{"accepts", true},
	{"auto.accepts", true},
	{"rejects", false},
	{"auto.rejects", false},
}

// GeneralConfig is the default configuration used for tests.
var GeneralConfig = synth.Config{Network: network.Config{Mode: network.General}}

// Check that all records which we expect to be accepted are synthesised using
// the default configuration, and all records that we expect to be rejected are
// rejected.
func Check(t *testing.T, test string) {
	CheckWithConfig(t, test, GeneralConfig)
}

// CheckWithConfig checks that all records which we expect to be accepted are
// synthesised using a given configuration, and all records that we expect to be
// rejected are rejected.
func CheckWithConfig(t *testing.T, test string, cfg synth.Config) {
	var (
		synthesiser = synth.NewSynthesiser(cfg)
		// Record how many tests executed.
		nTests = 0
	)
	// Iterate possible testfile extensions
	for _, ext := range TESTFILE_EXTENSIONS {
		// Construct test filename
		testFilename := fmt.Sprintf("%s/%s.%s", TestDir, test, ext.extension)
		// Read records from file
		records := ReadRecordsFile(t, testFilename)
		//
		for i, record := range records {
			checkRecord(t, synthesiser, fmt.Sprintf("%s#%d", testFilename, i+1), ext.expected, record)
		}
		// Record how many tests we found
		nTests += len(records)
	}
	// Sanity check at least one record found.
	if nTests == 0 {
		t.Fatalf("missing any tests for %s", test)
	}
}

// ReadRecordsFile reads all records from a given file.  A missing file is
// treated as an empty one.
func ReadRecordsFile(t *testing.T, filename string) []input.Record {
	file, err := os.Open(filename)
	//
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		t.Fatal(err)
	}
	//
	defer file.Close()
	//
	records, err := input.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("%s: %v", filename, err)
	}
	//
	return records
}

func checkRecord(t *testing.T, synthesiser *synth.Synthesiser, id string, expected bool, record input.Record) {
	result, err := synthesiser.Synthesise(record.Num, record.Den)
	//
	switch {
	case expected && err != nil:
		t.Errorf("%s: (%s)/(%s) should be accepted, but failed with %v", id, record.Num, record.Den, err)
	case !expected && err == nil:
		t.Errorf("%s: (%s)/(%s) should be rejected, but gave %s ladder\n%s", id, record.Num, record.Den,
			result.Direction, result.Ladder)
	case expected:
		checkRoundTrip(t, id, record, result)
	}
}

// Check that folding the elements of a Cauer-I ladder gives back N/D, and that
// folding those of a Cauer-II ladder gives back D/N.
func checkRoundTrip(t *testing.T, id string, record input.Record, result *synth.Result) {
	var num, den poly.Polynomial
	//
	switch result.Direction {
	case synth.CauerI:
		num, den = cauer.Fold(interleave(result.Z, result.Y))
	case synth.CauerII:
		den, num = cauer.Fold(interleave(result.Y, result.Z))
	default:
		return
	}
	//
	if !record.Num.Mul(den).Equal(num.Mul(record.Den)) {
		t.Errorf("%s: %s ladder for (%s)/(%s) gives (%s)/(%s)", id, result.Direction, record.Num, record.Den,
			num, den)
	}
}

// Interleave two sequences, starting with the first.
func interleave(first []poly.Polynomial, second []poly.Polynomial) []poly.Polynomial {
	var items []poly.Polynomial
	//
	for i, n := 0, max(len(first), len(second)); i < n; i++ {
		if i < len(first) {
			items = append(items, first[i])
		}
		//
		if i < len(second) {
			items = append(items, second[i])
		}
	}
	//
	return items
}
