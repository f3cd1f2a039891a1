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

// Package config declares the data structures used for all execution entry points
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/chanshik/psfs/version"
)

var (
	ErrorNoMountpoint = errors.New("No mountpoint is defined")
	ErrorBadRootPid   = errors.New("Root pid must be positive")
)

const (
	DefaultRootPid = 1
)

type Config struct {
	// Mount
	Mountpoint string
	RootPid    int32

	// Table strategy
	StaticTable    bool
	StrictAncestry bool

	// Diagnostics
	PrometheusUri  string
	Guid           string
	ProcessVersion string
}

type configEntry struct {
	Name     string
	ValuePtr interface{}
	Tweak    func()
}

func NewConfig(guid string) *Config {
	cfg := &Config{}
	cfg.Guid = guid
	cfg.RootPid = DefaultRootPid
	cfg.ProcessVersion = version.Version
	return cfg
}

// LoadFromFile populates this Config with the values defined in that file
// and then calls Validate.
func (cfg *Config) LoadFromFile(filepath string) error {
	f, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer f.Close()

	configEntries := cfg.DefineConfigEntries()

	regexComment, _ := regexp.Compile("^#")
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if regexComment.MatchString(line) || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if err := cfg.ParseFields(configEntries, fields); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.WithField("file", filepath).Info("Loaded configuration")
	return nil
}

func (cfg *Config) DefineConfigEntries() []configEntry {
	return []configEntry{
		{
			Name:     "mountpoint",
			ValuePtr: &cfg.Mountpoint,
		},
		{
			Name:     "root_pid",
			ValuePtr: &cfg.RootPid,
		},
		{
			Name:     "static_table",
			ValuePtr: &cfg.StaticTable,
		},
		{
			Name:     "strict_ancestry",
			ValuePtr: &cfg.StrictAncestry,
		},
		{
			Name:     "prometheus_uri",
			ValuePtr: &cfg.PrometheusUri,
		},
	}
}

func (cfg *Config) ParseFields(configEntries []configEntry, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("Invalid fields length: %v", fields)
	}

	for _, entry := range configEntries {
		if entry.Name != fields[0] {
			continue
		}

		switch valuePtr := entry.ValuePtr.(type) {
		case *string:
			*valuePtr = fields[1]
		case *bool:
			parsed, err := strconv.ParseBool(fields[1])
			if err != nil {
				return fmt.Errorf("Invalid boolean in %s : %v", entry.Name, err)
			}
			*valuePtr = parsed
		case *int32:
			parsed, err := strconv.ParseInt(fields[1], 10, 32)
			if err != nil {
				return fmt.Errorf("Invalid integer in %s : %v", entry.Name, err)
			}
			*valuePtr = int32(parsed)
		}

		if entry.Tweak != nil {
			entry.Tweak()
		}
		return nil
	}

	log.WithField("field", fields[0]).Warn("Unsupported configuration field")
	return nil
}

func (cfg *Config) Validate() error {
	if cfg.RootPid <= 0 {
		return ErrorBadRootPid
	}
	return nil
}
