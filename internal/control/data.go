package control

import (
	"os"
	"path"
	"strings"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
}

// EnvDataFromEnvironment reads the environment data, using '$FEATEDIT_HOME' as
// the base directory if set and '~/.config/featedit' otherwise.
func EnvDataFromEnvironment() EnvData {
	home := os.Getenv("FEATEDIT_HOME")
	if home == "" {
		return EnvData{BaseDirPath: path.Join(os.Getenv("HOME"), ".config", "featedit")}
	}
	return EnvData{BaseDirPath: strings.TrimRight(home, "/")}
}

// ConfigFilePath returns the path of the config file.
func (d EnvData) ConfigFilePath() string {
	return path.Join(d.BaseDirPath, "config.yaml")
}
