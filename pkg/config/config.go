// Package config loads the folderize configuration.
//
// Configuration is merged from three layers, lowest precedence first:
// embedded defaults, the user config file under the XDG config home, and
// FOLDERIZE_* environment variables. The merged result is a plain value that
// is passed into the conversion core explicitly; nothing in the core reads
// ambient process state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	folderr "github.com/arthur-debert/folderize/pkg/errors"
)

// envPrefix is the prefix for configuration environment variables, e.g.
// FOLDERIZE_HEADLESS=1 or FOLDERIZE_WORKSPACE_REQUIRE=false.
const envPrefix = "FOLDERIZE_"

// WorkspaceConfig controls the workspace-membership guard.
type WorkspaceConfig struct {
	Require bool   `koanf:"require" toml:"require" yaml:"require"`
	Root    string `koanf:"root" toml:"root" yaml:"root"`
}

// TrashConfig controls how delete-bearing strategies dispose of content.
type TrashConfig struct {
	Enabled bool `koanf:"enabled" toml:"enabled" yaml:"enabled"`
}

// Config is the merged folderize configuration.
type Config struct {
	// Headless marks automated/CI execution: prompts are never shown
	// (unanswered prompts count as cancel), the workspace check is relaxed
	// and deletions bypass the trash.
	Headless bool `koanf:"headless" toml:"headless" yaml:"headless"`

	Workspace WorkspaceConfig `koanf:"workspace" toml:"workspace" yaml:"workspace"`
	Trash     TrashConfig     `koanf:"trash" toml:"trash" yaml:"trash"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults ship with the binary; failing to parse them
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	cfg, err := unmarshalConfig(k)
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load merges defaults, the user config file and environment variables.
// configDir overrides the user config location; empty means
// $XDG_CONFIG_HOME/folderize.
func Load(configDir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, folderr.Wrap(err, folderr.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, first match wins
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, "folderize")
	}
	for _, candidate := range []struct {
		name   string
		parser koanf.Parser
	}{
		{"config.toml", toml.Parser()},
		{"config.yaml", yaml.Parser()},
	} {
		path := filepath.Join(configDir, candidate.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), candidate.parser); err != nil {
			return nil, folderr.Wrapf(err, folderr.ErrConfigParse, "failed to load config from %s", path)
		}
		break
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, folderr.Wrap(err, folderr.ErrConfigLoad, "failed to load environment overrides")
	}

	return unmarshalConfig(k)
}

// envToKey maps FOLDERIZE_WORKSPACE_REQUIRE to workspace.require.
func envToKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
}

func unmarshalConfig(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, folderr.Wrap(err, folderr.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
