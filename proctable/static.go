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
	"sync"
)

// StaticTable is the one-shot Provider: it serves every call from the
// snapshot taken by the last Update and never refreshes on its own. The
// namespace then shows a frozen process tree, which is useful for
// inspecting a tree that is churning too fast to browse live.
type StaticTable struct {
	source Provider

	mu      sync.RWMutex
	records []ProcessRecord
	byPid   map[int32]ProcessRecord
}

func NewStaticTable(source Provider) *StaticTable {
	return &StaticTable{
		source: source,
		byPid:  make(map[int32]ProcessRecord),
	}
}

// Update replaces the held snapshot with a fresh read from the source
// provider.
func (t *StaticTable) Update() error {
	records, err := t.source.ListAll()
	if err != nil {
		return err
	}

	byPid := make(map[int32]ProcessRecord, len(records))
	for _, rec := range records {
		byPid[rec.Pid] = rec
	}

	t.mu.Lock()
	t.records = records
	t.byPid = byPid
	t.mu.Unlock()
	return nil
}

func (t *StaticTable) ListAll() ([]ProcessRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	records := make([]ProcessRecord, len(t.records))
	copy(records, t.records)
	return records, nil
}

func (t *StaticTable) ByIdentifier(pid int32) (ProcessRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.byPid[pid]
	if !ok {
		return ProcessRecord{}, ErrNoProcess
	}
	return rec, nil
}
