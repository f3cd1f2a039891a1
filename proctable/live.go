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

package proctable

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// LiveTable is the re-reading Provider: every call goes back to the kernel
// process table, so results track concurrent process churn immediately.
type LiveTable struct {
}

func NewLiveTable() *LiveTable {
	return &LiveTable{}
}

func (t *LiveTable) ListAll() ([]ProcessRecord, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, errors.Wrap(err, "reading process table")
	}

	records := make([]ProcessRecord, 0, len(procs))
	for _, p := range procs {
		rec, err := readRecord(p)
		if err != nil {
			// process exited mid-scan
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (t *LiveTable) ByIdentifier(pid int32) (ProcessRecord, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return ProcessRecord{}, ErrNoProcess
	}
	return readRecord(p)
}

// readRecord materializes a ProcessRecord from one live process. Name and
// parent pid are mandatory; the remaining attributes degrade to placeholder
// values when the kernel withholds them (zombies, kernel threads).
func readRecord(p *process.Process) (ProcessRecord, error) {
	name, err := p.Name()
	if err != nil {
		return ProcessRecord{}, ErrNoProcess
	}
	ppid, err := p.Ppid()
	if err != nil {
		return ProcessRecord{}, ErrNoProcess
	}

	rec := ProcessRecord{
		Pid:        p.Pid,
		Ppid:       ppid,
		Name:       name,
		CPUPercent: "0.0",
		MemPercent: "0.0",
		Terminal:   "?",
	}

	if user, err := p.Username(); err == nil {
		rec.User = user
	}
	if args, err := p.CmdlineSlice(); err == nil && len(args) > 0 {
		rec.Cmdline = args
	} else {
		rec.Cmdline = []string{name}
	}
	if pcpu, err := p.CPUPercent(); err == nil {
		rec.CPUPercent = fmt.Sprintf("%.1f", pcpu)
	}
	if pmem, err := p.MemoryPercent(); err == nil {
		rec.MemPercent = fmt.Sprintf("%.1f", pmem)
	}
	if term, err := p.Terminal(); err == nil && term != "" {
		rec.Terminal = term
	}
	if created, err := p.CreateTime(); err == nil {
		rec.StartTime = time.UnixMilli(created)
	}
	if cpu, err := p.Times(); err == nil {
		rec.CPUTime = time.Duration((cpu.User + cpu.System) * float64(time.Second))
	}
	return rec, nil
}
