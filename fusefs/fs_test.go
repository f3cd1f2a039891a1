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

package fusefs

import (
	"syscall"
	"testing"

	"bazil.org/fuse"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/chanshik/psfs/namespace"
)

func TestErrnoMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "Not found maps to ENOENT",
			err:      namespace.ErrNotExist,
			expected: fuse.ENOENT,
		},
		{
			name:     "Wrapped not found maps to ENOENT",
			err:      errors.Wrap(namespace.ErrNotExist, "resolving"),
			expected: fuse.ENOENT,
		},
		{
			name:     "Invalid operation maps to EINVAL",
			err:      namespace.ErrInvalid,
			expected: fuse.Errno(syscall.EINVAL),
		},
		{
			name:     "Anything else maps to EIO",
			err:      errors.New("table exploded"),
			expected: fuse.Errno(syscall.EIO),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errno(tt.err))
		})
	}
}

func TestChildPath(t *testing.T) {
	assert.Equal(t, "/init(1)", childPath("/", "init(1)"))
	assert.Equal(t, "/init(1)/sh(42)", childPath("/init(1)", "sh(42)"))
	assert.Equal(t, "/init(1)/sh(42)/USER", childPath("/init(1)/sh(42)", "USER"))
}
