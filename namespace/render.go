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

package namespace

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/chanshik/psfs/pathenc"
	"github.com/chanshik/psfs/proctable"
)

// renderAttribute fetches the current record for pid and renders one
// attribute as single-line text, without the trailing newline. The fetch
// can race with resolution: a pid that resolved a moment ago may be gone
// now, which reads back as ErrNotExist.
func (o *Ops) renderAttribute(pid int32, kind pathenc.AttributeKind) (string, error) {
	rec, err := o.table.ByIdentifier(pid)
	if err != nil {
		if errors.Is(err, proctable.ErrNoProcess) {
			return "", ErrNotExist
		}
		return "", err
	}
	return RenderAttribute(rec, kind), nil
}

// RenderAttribute converts one ProcessRecord field into its fixed textual
// file representation.
func RenderAttribute(rec proctable.ProcessRecord, kind pathenc.AttributeKind) string {
	switch kind {
	case pathenc.AttrPid:
		return strconv.FormatInt(int64(rec.Pid), 10)
	case pathenc.AttrUser:
		return rec.User
	case pathenc.AttrCPU:
		return rec.CPUPercent
	case pathenc.AttrMem:
		return rec.MemPercent
	case pathenc.AttrTTY:
		return rec.Terminal
	case pathenc.AttrStart:
		return rec.StartTime.Format("15:04")
	case pathenc.AttrTime:
		total := int64(rec.CPUTime / time.Second)
		return fmt.Sprintf("%04d:%02d", total/60, total%60)
	case pathenc.AttrCommand:
		return strings.Join(rec.Cmdline, " ")
	}
	return ""
}
