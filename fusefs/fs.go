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

// Package fusefs binds the process namespace to the kernel FUSE
// dispatcher. Nodes carry nothing but their path; every kernel request is
// answered by handing that path back to the namespace operations, so the
// mount stays as fresh as the process table with no cache in between.
package fusefs

import (
	"context"
	"errors"
	"syscall"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/chanshik/psfs/namespace"
)

// FS is the bazil/fuse filesystem serving a namespace.Ops.
type FS struct {
	ops *namespace.Ops
}

func New(ops *namespace.Ops) *FS {
	return &FS{ops: ops}
}

func (f *FS) Root() (fs.Node, error) {
	return &dirNode{ops: f.ops, path: "/"}, nil
}

// errno maps namespace errors onto FUSE errnos.
func errno(err error) error {
	switch {
	case errors.Is(err, namespace.ErrNotExist):
		return fuse.ENOENT
	case errors.Is(err, namespace.ErrInvalid):
		return fuse.Errno(syscall.EINVAL)
	}
	return fuse.Errno(syscall.EIO)
}

func childPath(parent, name string) string {
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}

type dirNode struct {
	ops  *namespace.Ops
	path string
}

var _ fs.Node = (*dirNode)(nil)
var _ fs.NodeStringLookuper = (*dirNode)(nil)
var _ fs.HandleReadDirAller = (*dirNode)(nil)
var _ fs.NodeRemover = (*dirNode)(nil)

func (d *dirNode) Attr(ctx context.Context, a *fuse.Attr) error {
	observe("getattr")
	st, err := d.ops.Stat(d.path)
	if err != nil {
		return errno(err)
	}
	a.Mode = st.Mode
	a.Size = uint64(st.Size)
	a.Nlink = st.Nlink
	// attributes must be re-fetched per request
	a.Valid = 0
	return nil
}

func (d *dirNode) Lookup(ctx context.Context, name string) (fs.Node, error) {
	observe("lookup")
	path := childPath(d.path, name)
	st, err := d.ops.Stat(path)
	if err != nil {
		return nil, errno(err)
	}
	if st.Mode.IsDir() {
		return &dirNode{ops: d.ops, path: path}, nil
	}
	return &fileNode{ops: d.ops, path: path}, nil
}

func (d *dirNode) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	observe("readdir")
	entries, err := d.ops.List(d.path)
	if err != nil {
		return nil, errno(err)
	}

	dirents := make([]fuse.Dirent, 0, len(entries))
	for _, entry := range entries {
		typ := fuse.DT_File
		if entry.Mode.IsDir() {
			typ = fuse.DT_Dir
		}
		dirents = append(dirents, fuse.Dirent{Name: entry.Name, Type: typ})
	}
	return dirents, nil
}

func (d *dirNode) Remove(ctx context.Context, req *fuse.RemoveRequest) error {
	observe("rmdir")
	if !req.Dir {
		return fuse.Errno(syscall.EPERM)
	}
	if err := d.ops.RemoveDirectory(childPath(d.path, req.Name)); err != nil {
		return errno(err)
	}
	return nil
}

type fileNode struct {
	ops  *namespace.Ops
	path string
}

var _ fs.Node = (*fileNode)(nil)
var _ fs.NodeOpener = (*fileNode)(nil)
var _ fs.HandleReader = (*fileNode)(nil)

func (f *fileNode) Attr(ctx context.Context, a *fuse.Attr) error {
	observe("getattr")
	st, err := f.ops.Stat(f.path)
	if err != nil {
		return errno(err)
	}
	a.Mode = st.Mode
	a.Size = uint64(st.Size)
	a.Nlink = st.Nlink
	a.Valid = 0
	return nil
}

func (f *fileNode) Open(ctx context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fs.Handle, error) {
	observe("open")
	write := !req.Flags.IsReadOnly()
	if err := f.ops.Open(f.path, write); err != nil {
		return nil, errno(err)
	}
	// file size tracks the live record, bypass the page cache
	resp.Flags |= fuse.OpenDirectIO
	return f, nil
}

func (f *fileNode) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	observe("read")
	data, err := f.ops.Read(f.path, req.Size, req.Offset)
	if err != nil {
		return errno(err)
	}
	resp.Data = data
	return nil
}
