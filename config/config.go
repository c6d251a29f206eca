// Package config reads and writes woc.yaml, the per-project settings file.
package config

import (
	"io/ioutil"
	"os"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/woc", "config")

const FileName = "woc.yaml"

type Config struct {
	Package            string `yaml:"package"`
	Entry              string `yaml:"entry,omitempty"`
	Prompt             string `yaml:"prompt,omitempty"`
	ContinuationPrompt string `yaml:"continuation_prompt,omitempty"`
	HistoryFile        string `yaml:"history_file,omitempty"`
	LogLevel           string `yaml:"log_level,omitempty"`
}

func Default() Config {
	return Config{
		Entry:              "main.woc",
		Prompt:             "> ",
		ContinuationPrompt: ". ",
		HistoryFile:        ".woc_history",
		LogLevel:           "WARNING",
	}
}

// Load overlays the file at path on Default. A missing file is not an
// error; the defaults are returned as they are.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		plog.Debugf("no %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, tracerr.Wrap(err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), tracerr.Wrap(err)
	}

	plog.Infof("loaded configuration for %q from %s", cfg.Package, path)
	return cfg, nil
}

func Write(path string, cfg Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return tracerr.Wrap(err)
	}

	fi, err := os.Create(path)
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer fi.Close()

	if _, err := fi.Write(out); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}
