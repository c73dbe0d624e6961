// Package config loads an abilower project file: a small TOML document
// naming the Language S module to lower and the log level to run at.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ProjectFileName is the name of the project file abilower looks for in a
// project's root directory.
const ProjectFileName = "abilower.toml"

// tomlProject is the on-disk shape of a project file.
type tomlProject struct {
	Name       string `toml:"name"`
	StdlibRoot string `toml:"stdlib-module"`
	LogLevel   string `toml:"log-level"`
}

// Project is the loaded, validated form of a project file.
type Project struct {
	AbsPath    string
	Name       string
	StdlibRoot string
	LogLevel   int
}

var logLevelNames = map[string]int{
	"silent":  0, // report.LogLevelSilent
	"error":   1, // report.LogLevelError
	"warn":    2, // report.LogLevelWarn
	"verbose": 3, // report.LogLevelVerbose
}

// Load reads and validates the project file inside abspath, the absolute
// path to the project's root directory.
func Load(abspath string) (*Project, error) {
	f, err := os.Open(filepath.Join(abspath, ProjectFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to open project file at %q: %w", abspath, err)
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading project file at %q: %w", abspath, err)
	}

	tp := &tomlProject{}
	if err := toml.Unmarshal(buf, tp); err != nil {
		return nil, fmt.Errorf("error parsing project file at %q: %w", abspath, err)
	}

	return validate(abspath, tp)
}

func validate(abspath string, tp *tomlProject) (*Project, error) {
	if tp.Name == "" {
		return nil, fmt.Errorf("project file at %q: missing name", abspath)
	}

	if tp.StdlibRoot == "" {
		tp.StdlibRoot = "Swift"
	}

	logLevel, ok := logLevelNames[tp.LogLevel]
	if !ok {
		if tp.LogLevel != "" {
			return nil, fmt.Errorf("project file at %q: unrecognized log-level %q", abspath, tp.LogLevel)
		}
		logLevel = logLevelNames["verbose"]
	}

	return &Project{
		AbsPath:    abspath,
		Name:       tp.Name,
		StdlibRoot: tp.StdlibRoot,
		LogLevel:   logLevel,
	}, nil
}
