//
// Copyright 2026 The psfs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package proctable reads the OS process table. It offers two consistency
// strategies behind one Provider interface: LiveTable re-reads the table on
// every call, StaticTable works from a one-shot snapshot until Update is
// called again. Callers pick a strategy explicitly.
package proctable

import (
	"errors"
	"time"
)

// ErrNoProcess reports that the requested pid has no live process behind it.
var ErrNoProcess = errors.New("no such process")

// ProcessRecord holds the attributes of one process as observed at read
// time. Records are never mutated after being returned, only re-fetched.
type ProcessRecord struct {
	Pid        int32
	Ppid       int32
	User       string
	Name       string
	Cmdline    []string
	CPUPercent string
	MemPercent string
	Terminal   string
	StartTime  time.Time
	CPUTime    time.Duration
}

// Provider reads the current process table. Implementations make no
// staleness promises beyond "current at call time".
type Provider interface {
	// ListAll returns a record for every process in the table.
	ListAll() ([]ProcessRecord, error)

	// ByIdentifier returns the record for one pid, or ErrNoProcess.
	ByIdentifier(pid int32) (ProcessRecord, error)
}

// Terminator delivers a forceful termination request to a process. The
// request is fire-and-forget: delivery is not verified.
type Terminator interface {
	Terminate(pid int32) error
}
