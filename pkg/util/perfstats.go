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
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and memory consumed by some task, starting from
// when it was created.
type PerfStats struct {
	startTime time.Time
	// Total bytes allocated at start
	startMem uint64
	// Number of gc events at start
	startGc uint32
}

// NewPerfStats creates a snapshot of the current time and memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Log (at debug level) the time elapsed and memory allocated since this
// snapshot was created, for a task which processed n items.
func (p *PerfStats) Log(task string, n uint) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	alloc := float64(m.TotalAlloc-p.startMem) / (1024 * 1024)
	gcs := m.NumGC - p.startGc
	elapsed := time.Since(p.startTime)
	//
	log.Debugf("%s of %d item(s) took %s using %0.1f Mb (%d GC events)", task, n, elapsed.Round(time.Millisecond),
		alloc, gcs)
}
