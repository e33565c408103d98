package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	folderr "github.com/arthur-debert/folderize/pkg/errors"
)

// DefaultPath returns the user config file location for the given format.
func DefaultPath(format string) (string, error) {
	switch format {
	case "", "toml":
		format = "toml"
	case "yaml":
	default:
		return "", folderr.Newf(folderr.ErrInvalidInput, "unknown config format %q (want toml or yaml)", format)
	}
	return filepath.Join(xdg.ConfigHome, "folderize", "config."+format), nil
}

// RenderDefault renders the default configuration in the given format
// ("toml" or "yaml") for the genconfig command.
func RenderDefault(format string) (string, error) {
	cfg := Default()

	switch format {
	case "", "toml":
		out, err := gotoml.Marshal(cfg)
		if err != nil {
			return "", folderr.Wrap(err, folderr.ErrInternal, "failed to render default config")
		}
		return string(out), nil
	case "yaml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return "", folderr.Wrap(err, folderr.ErrInternal, "failed to render default config")
		}
		return string(out), nil
	default:
		return "", folderr.Newf(folderr.ErrInvalidInput, "unknown config format %q (want toml or yaml)", format)
	}
}
