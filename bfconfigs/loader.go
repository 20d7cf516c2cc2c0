package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config", "load config file, may be repeated")

var filenames = []string{
	"taibf.cue",
	".taibf.cue",
	"taibf.toml",
	".taibf.toml",
	"taibf.yaml",
	".taibf.yaml",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	// explicit files first
	paths := append([]string(nil), *configFiles...)

	if mode != modes.ModeDevelopment {
		var dirs []string
		if workingDir, err := os.Getwd(); err == nil {
			dirs = append(dirs, workingDir)
		}
		if configDir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, configDir)
		}
		dirs = append(dirs, "/etc")
		paths = append(paths, discover(dirs)...)
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func discover(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
				paths = append(paths, path)
			}
		}
	}
	return
}
