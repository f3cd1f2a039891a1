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
	"strings"

	"github.com/pkg/errors"

	"github.com/chanshik/psfs/pathenc"
	"github.com/chanshik/psfs/proctable"
)

// DefaultRootPid anchors the namespace at the init process.
const DefaultRootPid int32 = 1

// Resolver decides what entity a path denotes and whether it currently
// exists, by re-querying the process table at resolution time.
//
// By default only the immediate parent-child edge named by the path is
// validated against the live table: "/a(1)/b(2)/c(3)" resolves whenever
// pid 3's live parent is 2, without checking that 2's own parent is 1.
// WithStrictAncestry re-validates every edge down from the root instead.
type Resolver struct {
	table   proctable.Provider
	rootPid int32
	strict  bool
}

type ResolverOption func(*Resolver)

// WithRootPid anchors the namespace at a process other than init.
func WithRootPid(pid int32) ResolverOption {
	return func(r *Resolver) {
		r.rootPid = pid
	}
}

// WithStrictAncestry validates the full parent chain named by a path
// instead of only its last edge.
func WithStrictAncestry() ResolverOption {
	return func(r *Resolver) {
		r.strict = true
	}
}

func NewResolver(table proctable.Provider, options ...ResolverOption) *Resolver {
	r := &Resolver{
		table:   table,
		rootPid: DefaultRootPid,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// RootPid returns the pid anchoring the top of the namespace.
func (r *Resolver) RootPid() int32 {
	return r.rootPid
}

// SplitPath breaks a slash-separated path into its non-empty segments.
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Resolve walks the decoded segments of path from the namespace root and
// returns the node the path denotes, or ErrNotExist.
func (r *Resolver) Resolve(path string) (Node, error) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return Node{Kind: KindRoot}, nil
	}

	last := segments[len(segments)-1]
	if kind, ok := pathenc.AttributeKindOf(last); ok {
		dir, err := r.resolveDir(segments[:len(segments)-1])
		if err != nil {
			return Node{}, err
		}
		return Node{Kind: KindAttributeFile, Pid: dir.Pid, Attr: kind}, nil
	}

	return r.resolveDir(segments)
}

// resolveDir resolves a path whose final segment names a process
// directory.
func (r *Resolver) resolveDir(segments []string) (Node, error) {
	if len(segments) == 0 {
		return Node{}, ErrNotExist
	}

	_, pid := pathenc.DecodeSegment(segments[len(segments)-1])
	if pid <= 0 {
		return Node{}, ErrNotExist
	}

	if r.strict {
		return r.resolveChain(segments)
	}

	if len(segments) == 1 {
		if pid == r.rootPid {
			// the root anchor exists unconditionally
			return Node{Kind: KindProcessDir, Pid: pid}, nil
		}
		return r.checkEdge(pid, r.rootPid)
	}

	_, ppid := pathenc.DecodeSegment(segments[len(segments)-2])
	if ppid <= 0 {
		return Node{}, ErrNotExist
	}
	return r.checkEdge(pid, ppid)
}

// checkEdge verifies that pid is live and that its live parent matches the
// parent the path claims. A stale path reusing a pid under a different
// parent fails here.
func (r *Resolver) checkEdge(pid int32, claimedParent int32) (Node, error) {
	rec, err := r.table.ByIdentifier(pid)
	if err != nil {
		if errors.Is(err, proctable.ErrNoProcess) {
			return Node{}, ErrNotExist
		}
		return Node{}, err
	}
	if rec.Ppid != claimedParent {
		return Node{}, ErrNotExist
	}
	return Node{Kind: KindProcessDir, Pid: pid}, nil
}

// resolveChain validates every parent-child edge from the root anchor down
// to the final segment.
func (r *Resolver) resolveChain(segments []string) (Node, error) {
	parent := r.rootPid
	for i, segment := range segments {
		_, pid := pathenc.DecodeSegment(segment)
		if pid <= 0 {
			return Node{}, ErrNotExist
		}
		if i == 0 && pid == r.rootPid {
			parent = pid
			continue
		}
		node, err := r.checkEdge(pid, parent)
		if err != nil {
			return Node{}, err
		}
		parent = node.Pid
	}
	return Node{Kind: KindProcessDir, Pid: parent}, nil
}
