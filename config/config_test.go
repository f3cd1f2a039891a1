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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanshik/psfs/config"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := config.NewConfig("test-guid")

	assert.Equal(t, "test-guid", cfg.Guid)
	assert.Equal(t, int32(config.DefaultRootPid), cfg.RootPid)
	assert.False(t, cfg.StaticTable)
	assert.False(t, cfg.StrictAncestry)
	assert.Empty(t, cfg.Mountpoint)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "psfs.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr bool
		verify      func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "Happy path",
			content: `# psfs configuration
mountpoint /mnt/ps
root_pid 300
static_table true
strict_ancestry true
prometheus_uri http://localhost:9091
`,
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "/mnt/ps", cfg.Mountpoint)
				assert.Equal(t, int32(300), cfg.RootPid)
				assert.True(t, cfg.StaticTable)
				assert.True(t, cfg.StrictAncestry)
				assert.Equal(t, "http://localhost:9091", cfg.PrometheusUri)
			},
		},
		{
			name:    "Comments and blank lines are skipped",
			content: "# nothing but comments\n\n# and blanks\nmountpoint /mnt/ps\n",
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "/mnt/ps", cfg.Mountpoint)
			},
		},
		{
			name:    "Unknown fields are tolerated",
			content: "who_knows maybe\nmountpoint /mnt/ps\n",
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "/mnt/ps", cfg.Mountpoint)
			},
		},
		{
			name:        "Value without field",
			content:     "mountpoint\n",
			expectedErr: true,
		},
		{
			name:        "Bad boolean",
			content:     "static_table definitely\n",
			expectedErr: true,
		},
		{
			name:        "Bad root pid",
			content:     "root_pid zero\n",
			expectedErr: true,
		},
		{
			name:        "Negative root pid fails validation",
			content:     "root_pid -4\n",
			expectedErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig("guid")
			err := cfg.LoadFromFile(writeConfigFile(t, tt.content))
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := config.NewConfig("guid")
	assert.Error(t, cfg.LoadFromFile("/does/not/exist.cfg"))
}
