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

// mount
package commands

import (
	"context"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chanshik/psfs/config"
	"github.com/chanshik/psfs/fusefs"
	"github.com/chanshik/psfs/namespace"
	"github.com/chanshik/psfs/proctable"
	"github.com/chanshik/psfs/utils"
)

var (
	mountConfigFile    string
	mountRootPid       int32
	mountStatic        bool
	mountStrict        bool
	mountPrometheusUri string

	MountCmd = &cobra.Command{
		Use:   "mount MOUNTPOINT",
		Short: "Mount the process filesystem",
		Long:  "Mount the process filesystem and serve it until interrupted",
		Args:  cobra.MaximumNArgs(1),
		Run:   mountCmdRun,
	}
)

func init() {
	MountCmd.Flags().StringVar(&mountConfigFile, "config", "", "Path to a file containing the config")
	MountCmd.Flags().Int32Var(&mountRootPid, "root-pid", config.DefaultRootPid, "Process anchoring the top of the namespace")
	MountCmd.Flags().BoolVar(&mountStatic, "static", false, "Serve a one-shot snapshot of the process table instead of re-reading it")
	MountCmd.Flags().BoolVar(&mountStrict, "strict-ancestry", false, "Validate the full parent chain of every path")
	MountCmd.Flags().StringVar(&mountPrometheusUri, "prometheus-uri", "", "Push operation metrics to this Prometheus push gateway")
}

func mountCmdRun(cmd *cobra.Command, args []string) {
	guid := uuid.NewV4()
	cfg := config.NewConfig(guid.String())
	if mountConfigFile != "" {
		if err := cfg.LoadFromFile(mountConfigFile); err != nil {
			utils.Die(err, "Failed to load configuration")
		}
	}
	applyMountFlags(cmd, cfg, args)

	if cfg.Mountpoint == "" {
		utils.Die(config.ErrorNoMountpoint, "A mountpoint argument is required")
	}
	log.WithField("guid", guid).Info("Assigned unique identifier")

	ops, err := buildNamespace(cfg)
	if err != nil {
		utils.Die(err, "Failed to read the process table")
	}

	conn, err := fuse.Mount(cfg.Mountpoint,
		fuse.FSName("psfs"),
		fuse.Subtype("psfs"),
		fuse.DefaultPermissions(),
	)
	if err != nil {
		utils.Die(err, "Failed to mount")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.PrometheusUri != "" {
		fusefs.StartMetricsPusher(ctx, cfg.PrometheusUri)
	}

	signalNotify := utils.HandleInterrupts()
	go func() {
		<-signalNotify
		log.Info("Shutdown...")
		if err := fuse.Unmount(cfg.Mountpoint); err != nil {
			log.WithField("err", err).Warn("Unmount failed, is the mountpoint busy?")
		}
	}()

	log.WithFields(log.Fields{
		"mountpoint": cfg.Mountpoint,
		"rootPid":    cfg.RootPid,
		"static":     cfg.StaticTable,
	}).Info("Serving process filesystem")

	err = fs.Serve(conn, fusefs.New(ops))
	conn.Close()
	if err != nil {
		utils.Die(err, "Filesystem serving failed")
	}
}

func applyMountFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.Mountpoint = args[0]
	}
	if cmd.Flags().Changed("root-pid") {
		cfg.RootPid = mountRootPid
	}
	if cmd.Flags().Changed("static") {
		cfg.StaticTable = mountStatic
	}
	if cmd.Flags().Changed("strict-ancestry") {
		cfg.StrictAncestry = mountStrict
	}
	if cmd.Flags().Changed("prometheus-uri") {
		cfg.PrometheusUri = mountPrometheusUri
	}
}

// buildNamespace wires the configured table strategy into the namespace
// operations.
func buildNamespace(cfg *config.Config) (*namespace.Ops, error) {
	var table proctable.Provider

	live := proctable.NewLiveTable()
	if cfg.StaticTable {
		static := proctable.NewStaticTable(live)
		if err := static.Update(); err != nil {
			return nil, err
		}
		table = static
	} else {
		table = live
	}

	options := []namespace.ResolverOption{namespace.WithRootPid(cfg.RootPid)}
	if cfg.StrictAncestry {
		options = append(options, namespace.WithStrictAncestry())
	}
	resolver := namespace.NewResolver(table, options...)

	return namespace.NewOps(table, proctable.NewSigkillTerminator(), resolver), nil
}
