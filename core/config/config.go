// Package config loads the optional falsh configuration file and supplies
// defaults for the rc script, persisted path list and prompt.
package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

const (
	// ConfigurationName is the optional per-user configuration file.
	ConfigurationName = ".falsh.yaml"
	// RCFileName is the startup script replayed at launch.
	RCFileName = ".falshrc"
	// PathFileName is the persisted PATH entry list, one entry per line.
	PathFileName = ".falsh_path"
	// HistoryFileName stores interactive line history.
	HistoryFileName = ".falsh_history"
)

type Configuration struct {
	// PromptSuffix is appended to the working directory in the prompt.
	PromptSuffix string `json:"prompt_suffix" validate:"required"`
	// RCFile is the absolute path of the startup script.
	RCFile string `json:"rc_file" validate:"required"`
	// PathFile is the absolute path of the persisted PATH list.
	PathFile string `json:"path_file" validate:"required"`
	// HistoryFile is the absolute path of the readline history file.
	HistoryFile string `json:"history_file"`
	// NoBanner suppresses the startup banner.
	NoBanner bool `json:"no_banner"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Marshal renders the effective configuration as YAML.
func (c *Configuration) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Default returns the configuration used when no file is present, anchored
// at the given home directory.
func Default(home string) *Configuration {
	return &Configuration{
		PromptSuffix: "> ",
		RCFile:       filepath.Join(home, RCFileName),
		PathFile:     filepath.Join(home, PathFileName),
		HistoryFile:  filepath.Join(home, HistoryFileName),
	}
}

// Load reads the configuration file under home, falling back to defaults
// when the file is absent. Fields left unset in the file keep their default
// values.
func Load(fs afero.Fs, home string) (*Configuration, error) {
	out := Default(home)

	contents, err := afero.ReadFile(fs, filepath.Join(home, ConfigurationName))
	if err != nil {
		// Missing config is the common case.
		return out, nil
	}

	if err := yaml.Unmarshal(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}
