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
	"os"

	log "github.com/sirupsen/logrus"
	pkgerrors "github.com/pkg/errors"

	"github.com/chanshik/psfs/pathenc"
	"github.com/chanshik/psfs/proctable"
)

const (
	// DirMode is reported for the root and every process directory.
	DirMode = os.ModeDir | 0555

	// FileMode is reported for every attribute file.
	FileMode = os.FileMode(0444)
)

// Entry is one name in a directory listing.
type Entry struct {
	Name string
	Mode os.FileMode
}

// Stat describes a resolved node for getattr.
type Stat struct {
	Mode  os.FileMode
	Size  int64
	Nlink uint32
}

// Ops implements the filesystem primitives over the resolver and the
// process table. It is stateless between calls and safe for concurrent
// use.
type Ops struct {
	table  proctable.Provider
	killer proctable.Terminator
	res    *Resolver
}

func NewOps(table proctable.Provider, killer proctable.Terminator, res *Resolver) *Ops {
	return &Ops{
		table:  table,
		killer: killer,
		res:    res,
	}
}

// Resolver exposes the resolver for hosts that need direct resolution.
func (o *Ops) Resolver() *Resolver {
	return o.res
}

// List returns the entries of the directory at path, "." and ".." first.
// The root lists exactly the encoded root-process segment. A process
// directory lists the eight attribute files followed by one directory per
// live child, discovered by scanning the full table and filtering on
// parent pid.
func (o *Ops) List(path string) ([]Entry, error) {
	node, err := o.res.Resolve(path)
	if err != nil {
		return nil, err
	}
	if node.Kind == KindAttributeFile {
		return nil, ErrNotExist
	}

	entries := []Entry{
		{Name: ".", Mode: DirMode},
		{Name: "..", Mode: DirMode},
	}

	if node.Kind == KindRoot {
		entries = append(entries, Entry{
			Name: o.rootSegment(),
			Mode: DirMode,
		})
		return entries, nil
	}

	for _, name := range pathenc.AttributeNames() {
		entries = append(entries, Entry{Name: name, Mode: FileMode})
	}

	children, err := o.childrenOf(node.Pid)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		entries = append(entries, Entry{
			Name: pathenc.EncodeSegment(pathenc.SafeName(child.Name), child.Pid),
			Mode: DirMode,
		})
	}
	return entries, nil
}

// Stat reports mode, size and link count for the node at path.
func (o *Ops) Stat(path string) (Stat, error) {
	node, err := o.res.Resolve(path)
	if err != nil {
		return Stat{}, err
	}

	switch node.Kind {
	case KindRoot:
		return Stat{Mode: DirMode, Nlink: 2}, nil

	case KindProcessDir:
		children, err := o.childrenOf(node.Pid)
		if err != nil {
			return Stat{}, err
		}
		return Stat{Mode: DirMode, Nlink: uint32(2 + len(children))}, nil

	default:
		text, err := o.renderAttribute(node.Pid, node.Attr)
		if err != nil {
			return Stat{}, err
		}
		// +1 for the trailing newline appended on read
		return Stat{Mode: FileMode, Size: int64(len(text)) + 1, Nlink: 1}, nil
	}
}

// Open succeeds only for attribute files opened read-only. Directories are
// never opened as files.
func (o *Ops) Open(path string, write bool) error {
	node, err := o.res.Resolve(path)
	if err != nil {
		return err
	}
	if node.Kind != KindAttributeFile {
		return ErrNotExist
	}
	if write {
		return ErrInvalid
	}
	return nil
}

// Read renders the attribute file at path, appends the newline terminator
// and returns the [offset, offset+size) byte range. The record is
// re-fetched on every call; a process that vanished since resolution
// yields ErrNotExist, never stale data.
func (o *Ops) Read(path string, size int, offset int64) ([]byte, error) {
	node, err := o.res.Resolve(path)
	if err != nil {
		return nil, err
	}
	if node.Kind != KindAttributeFile {
		return nil, ErrNotExist
	}

	text, err := o.renderAttribute(node.Pid, node.Attr)
	if err != nil {
		return nil, err
	}
	data := append([]byte(text), '\n')

	if offset < 0 || offset >= int64(len(data)) {
		return []byte{}, nil
	}
	end := offset + int64(size)
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return data[offset:end], nil
}

// RemoveDirectory translates rmdir on a process directory into a
// termination request addressed to the decoded pid. The request is
// fire-and-forget: the call neither waits for nor verifies the process's
// exit. Removing the root anchor is always rejected.
func (o *Ops) RemoveDirectory(path string) error {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return ErrInvalid
	}

	_, pid := pathenc.DecodeSegment(segments[len(segments)-1])
	if pid <= 0 {
		return ErrInvalid
	}
	if pid == o.res.RootPid() {
		return ErrInvalid
	}

	if err := o.killer.Terminate(pid); err != nil {
		// delivery is best-effort, mirror that in the result
		log.WithFields(log.Fields{
			"pid": pid,
			"err": err,
		}).Warn("Termination request was not delivered")
	}
	return nil
}

// rootSegment encodes the top-level directory name from the root
// process's current command name, falling back to "init" when the record
// cannot be read.
func (o *Ops) rootSegment() string {
	rootPid := o.res.RootPid()
	name := "init"
	if rec, err := o.table.ByIdentifier(rootPid); err == nil {
		name = pathenc.SafeName(rec.Name)
	}
	return pathenc.EncodeSegment(name, rootPid)
}

// childrenOf scans the full current table for processes whose parent is
// pid. Children are discovered by scan, not tracked incrementally.
func (o *Ops) childrenOf(pid int32) ([]proctable.ProcessRecord, error) {
	records, err := o.table.ListAll()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "scanning for children")
	}
	children := records[:0]
	for _, rec := range records {
		if rec.Ppid == pid {
			children = append(children, rec)
		}
	}
	return children, nil
}
