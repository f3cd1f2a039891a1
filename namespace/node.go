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

// Package namespace maps the live process tree onto a hierarchical
// filesystem namespace. Every operation re-derives its answer from the
// process table as observed during that call; nothing is cached between
// calls, so a path that resolved a moment ago may legitimately be gone by
// the next call.
package namespace

import (
	"errors"

	"github.com/chanshik/psfs/pathenc"
)

var (
	// ErrNotExist covers every way a path can fail to denote a live
	// entity: undecodable segment, dead process, or a claimed parent that
	// does not match the live parent. Hosts surface it as ENOENT.
	ErrNotExist = errors.New("entity does not exist")

	// ErrInvalid covers operations the namespace never supports, such as
	// removing the root or opening for write. Hosts surface it as EINVAL.
	ErrInvalid = errors.New("invalid operation")
)

// NodeKind discriminates the three things a path can denote.
type NodeKind int

const (
	KindRoot NodeKind = iota
	KindProcessDir
	KindAttributeFile
)

// Node is the resolved meaning of a path. Nodes are transient views,
// recomputed on every call and never stored.
type Node struct {
	Kind NodeKind
	Pid  int32
	Attr pathenc.AttributeKind
}
