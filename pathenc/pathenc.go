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

// Package pathenc encodes and decodes the path segments of the process
// namespace. A process directory is addressed as "name(pid)" where pid is
// the authoritative key and name is display-only; the leaf files of a
// process directory come from a closed set of attribute names.
package pathenc

import (
	"fmt"
	"regexp"
	"strconv"

	mapset "github.com/deckarep/golang-set"
)

// AttributeKind identifies one of the per-process attribute files.
type AttributeKind int

const (
	AttrUser AttributeKind = iota
	AttrPid
	AttrCPU
	AttrMem
	AttrTTY
	AttrStart
	AttrTime
	AttrCommand
)

var attributeNames = [...]string{
	AttrUser:    "USER",
	AttrPid:     "PID",
	AttrCPU:     "CPU",
	AttrMem:     "MEM",
	AttrTTY:     "TTY",
	AttrStart:   "START",
	AttrTime:    "TIME",
	AttrCommand: "COMMAND",
}

var attributeSet = mapset.NewSet()

func init() {
	for _, name := range attributeNames {
		attributeSet.Add(name)
	}
}

func (k AttributeKind) String() string {
	if k < 0 || int(k) >= len(attributeNames) {
		return "UNKNOWN"
	}
	return attributeNames[k]
}

// AttributeNames returns the attribute file names in their fixed listing order.
func AttributeNames() []string {
	names := make([]string, len(attributeNames))
	copy(names, attributeNames[:])
	return names
}

// AttributeKindOf matches segment against the closed attribute-name set by
// exact string equality.
func AttributeKindOf(segment string) (AttributeKind, bool) {
	if !attributeSet.Contains(segment) {
		return 0, false
	}
	for kind, name := range attributeNames {
		if name == segment {
			return AttributeKind(kind), true
		}
	}
	return 0, false
}

var segmentRegex = regexp.MustCompile(`^(.+)\((\d+)\)$`)

// DecodeSegment extracts the (name, pid) pair from a "name(pid)" segment.
// A segment that does not carry a parenthesized pid decodes to pid 0, the
// "no such process" sentinel; callers treat that as not-found, not as an
// error condition.
func DecodeSegment(segment string) (string, int32) {
	groups := segmentRegex.FindStringSubmatch(segment)
	if groups == nil {
		return "", 0
	}
	pid, err := strconv.ParseInt(groups[2], 10, 32)
	if err != nil || pid <= 0 {
		return "", 0
	}
	return groups[1], int32(pid)
}

// EncodeSegment is the inverse of DecodeSegment. The name must already be
// segment-safe, see SafeName.
func EncodeSegment(name string, pid int32) string {
	return fmt.Sprintf("%s(%d)", name, pid)
}

// SafeName rewrites a command name so that the encoded segment stays
// decodable: '(', ')' and '/' would break the segment grammar and are
// replaced with underscores. An empty name becomes a single underscore.
func SafeName(name string) string {
	if name == "" {
		return "_"
	}
	safe := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case '(', ')', '/':
			safe = append(safe, '_')
		default:
			safe = append(safe, r)
		}
	}
	return string(safe)
}
