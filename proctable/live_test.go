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

package proctable_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanshik/psfs/proctable"
)

func TestLiveTableByIdentifierSelf(t *testing.T) {
	table := proctable.NewLiveTable()

	rec, err := table.ByIdentifier(int32(os.Getpid()))
	if err != nil {
		t.Skip("We cannot read our own process record right now.  Skipping")
	}

	assert.Equal(t, int32(os.Getpid()), rec.Pid)
	assert.Equal(t, int32(os.Getppid()), rec.Ppid)
	assert.NotEmpty(t, rec.Name)
	assert.NotEmpty(t, rec.Cmdline)
	assert.NotEmpty(t, rec.CPUPercent)
	assert.NotEmpty(t, rec.MemPercent)
	assert.NotEmpty(t, rec.Terminal)
}

func TestLiveTableListAllContainsSelf(t *testing.T) {
	table := proctable.NewLiveTable()

	records, err := table.ListAll()
	if err != nil {
		t.Skip("We cannot read the process table right now.  Skipping")
	}
	require.NotEmpty(t, records)

	found := false
	for _, rec := range records {
		if rec.Pid == int32(os.Getpid()) {
			found = true
			break
		}
	}
	assert.True(t, found, "our own pid should be in the table")
}

func TestLiveTableAbsentPid(t *testing.T) {
	table := proctable.NewLiveTable()

	// far beyond any real pid_max
	_, err := table.ByIdentifier(1<<31 - 2)
	assert.ErrorIs(t, err, proctable.ErrNoProcess)
}
