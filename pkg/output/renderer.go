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
	"context"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Renderer produces a drawing of a ladder from the files written for it.
type Renderer interface {
	// Render a ladder whose files were written into a given directory.  Any
	// failure is reported, but does not invalidate the ladder itself.
	Render(ctx context.Context, dir string, files []string) error
}

// CommandRenderer runs an external command (e.g. "python network.py") within
// the output directory.  The files written for the ladder are passed as
// additional arguments.
type CommandRenderer struct {
	Command []string
}

// NewCommandRenderer constructs a renderer from a command line, which is split
// on whitespace.  An empty command line gives a renderer which does nothing.
func NewCommandRenderer(cmdline string) *CommandRenderer {
	return &CommandRenderer{strings.Fields(cmdline)}
}

// Render implementation for the Renderer interface.
func (p *CommandRenderer) Render(ctx context.Context, dir string, files []string) error {
	if len(p.Command) == 0 {
		return nil
	}
	//
	args := append(append([]string{}, p.Command[1:]...), files...)
	cmd := exec.CommandContext(ctx, p.Command[0], args...)
	cmd.Dir = dir
	//
	if out, err := cmd.CombinedOutput(); err != nil {
		log.Warnf("rendering with %s failed: %v", p.Command[0], err)
		//
		if len(out) > 0 {
			log.Debugf("%s", out)
		}
		//
		return err
	}
	//
	log.Debugf("rendered ladder with %s", strings.Join(p.Command, " "))
	//
	return nil
}
