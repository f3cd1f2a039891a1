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

// tree
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chanshik/psfs/config"
	"github.com/chanshik/psfs/namespace"
	"github.com/chanshik/psfs/utils"
)

var (
	treeDepth      int
	treeRootPid    int32
	treeAttributes bool

	TreeCmd = &cobra.Command{
		Use:   "tree",
		Short: "Print the process namespace without mounting",
		Long:  "Walk the process namespace and print it to stdout, mainly for debugging",
		Run:   treeCmdRun,
	}
)

func init() {
	TreeCmd.Flags().IntVar(&treeDepth, "depth", 3, "Maximum directory depth to descend")
	TreeCmd.Flags().Int32Var(&treeRootPid, "root-pid", config.DefaultRootPid, "Process anchoring the top of the namespace")
	TreeCmd.Flags().BoolVar(&treeAttributes, "attributes", false, "Also print the attribute file contents")
}

func treeCmdRun(cmd *cobra.Command, args []string) {
	cfg := config.NewConfig("")
	cfg.RootPid = treeRootPid

	ops, err := buildNamespace(cfg)
	if err != nil {
		utils.Die(err, "Failed to read the process table")
	}

	if err := printTree(ops, "/", 0); err != nil {
		utils.Die(err, "Failed to walk the namespace")
	}
}

func printTree(ops *namespace.Ops, path string, depth int) error {
	if depth > treeDepth {
		return nil
	}

	entries, err := ops.List(path)
	if err != nil {
		return err
	}

	indent := strings.Repeat("  ", depth)
	for _, entry := range entries {
		if entry.Name == "." || entry.Name == ".." {
			continue
		}

		child := strings.TrimSuffix(path, "/") + "/" + entry.Name
		if entry.Mode.IsDir() {
			fmt.Printf("%s%s/\n", indent, entry.Name)
			if err := printTree(ops, child, depth+1); err != nil {
				// the table can change mid-walk, keep going
				continue
			}
			continue
		}

		if treeAttributes {
			data, err := ops.Read(child, 4096, 0)
			if err != nil {
				continue
			}
			fmt.Printf("%s%s: %s", indent, entry.Name, string(data))
		}
	}
	return nil
}
