package chronoconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/chrono/configs"
	"github.com/reusee/chrono/logs"
)

//go:embed schema.cue
var schema string

var fileNames = []string{
	"chrono.cue",
	".chrono.cue",
}

// ConfigsLoader searches the working directory, the user config directory
// and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := findFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return configs.NewLoader(paths, schema)
}

func findFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
