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
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-cauer/pkg/cauer"
	"github.com/consensys/go-cauer/pkg/input"
	"github.com/consensys/go-cauer/pkg/network"
	"github.com/consensys/go-cauer/pkg/synth"
	"github.com/consensys/go-cauer/pkg/util/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Configure log level
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Construct the synthesiser configuration from the persistent flags.
func getSynthConfig(cmd *cobra.Command) synth.Config {
	mode, err := network.ParseMode(GetString(cmd, "mode"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return synth.Config{
		Network: network.Config{
			Mode:                mode,
			NormaliseFirstStage: GetFlag(cmd, "normalise"),
		},
		SignNormalise:   GetFlag(cmd, "sign-normalise"),
		Preflight:       GetFlag(cmd, "preflight"),
		FallbackOnStall: GetFlag(cmd, "fallback-on-stall"),
	}
}

// Read a polynomial given as a flag value, exiting on malformed input.
func getPolynomial(cmd *cobra.Command, flag string) poly.Polynomial {
	p, err := input.ParsePolynomial("--"+flag, GetString(cmd, flag))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return p
}

// Determine the exit code appropriate for a given error.  Malformed input is
// distinguished from transfer functions which cannot be synthesised.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, input.ErrMalformed):
		return 2
	default:
		return 1
	}
}

// Report an error and exit with the appropriate code.
func exitWith(err error) {
	log.Debug(err)
	fmt.Println(errorMessage(err))
	os.Exit(exitCode(err))
}

// Determine the message reported for a given error.  The two conditions the
// synthesiser distinguishes are reported using fixed messages.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, network.ErrInvalidNetwork):
		return "Invalid network"
	case errors.Is(err, cauer.ErrDomain):
		return "Error: division by zero"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
