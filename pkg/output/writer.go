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
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/consensys/go-cauer/pkg/network"
	log "github.com/sirupsen/logrus"
)

// Writer is responsible for persisting a synthesised ladder.
type Writer interface {
	// Write a ladder, returning the files which were written (if any).
	Write(ladder network.Ladder) ([]string, error)
}

// CSVWriter writes the series and shunt tokens of a ladder into the files
// "Z.csv" and "Y.csv" respectively, within a given directory.  Each file holds
// a single comma separated line of tokens.
type CSVWriter struct {
	Dir string
}

// NewCSVWriter constructs a writer for a given output directory.  The directory
// is created on demand.
func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir}
}

// Write implementation for the Writer interface.
func (p *CSVWriter) Write(ladder network.Ladder) ([]string, error) {
	var files []string
	//
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return nil, err
	}
	//
	for _, role := range []network.Role{network.Series, network.Shunt} {
		filename := filepath.Join(p.Dir, fmt.Sprintf("%s.csv", role))
		line := network.Join(ladder.Elements(role), ",", "", "\n")
		//
		if err := os.WriteFile(filename, []byte(line), 0644); err != nil {
			return files, err
		}
		//
		log.Debugf("wrote %s", filename)
		//
		files = append(files, filename)
	}
	//
	return files, nil
}
