package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/manav03panchal/gitfiti/internal/errors"
)

// EnvFileName is the dotenv file looked up under the XDG config dirs.
var EnvFileName = filepath.Join("gitfiti", "gitfiti.env")

// FindEnvFile returns the first gitfiti.env in the XDG config search path,
// or "" when there is none.
func FindEnvFile() string {
	path, err := xdg.SearchConfigFile(EnvFileName)
	if err != nil {
		return ""
	}
	return path
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. An empty path looks up FindEnvFile; a
// missing file is not an error.
func LoadEnvFile(path string) (string, error) {
	if path == "" {
		path = FindEnvFile()
		if path == "" {
			return "", nil
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}
	if err := godotenv.Load(path); err != nil {
		return path, errors.NewSystemErrorWithOp("load config", "cannot parse "+path, err)
	}
	return path, nil
}

// Load applies the dotenv file and then environment overrides to Global.
func Load(envFile string) (*RuntimeConfig, error) {
	if _, err := LoadEnvFile(envFile); err != nil {
		return Global, err
	}
	Global.ReloadFromEnv()
	return Global, nil
}
