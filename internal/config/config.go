package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	fileType = "yaml"

	keyDir         = "dir"
	keyFolderIsDir = "folder_is_dir"
)

// Defaults holds the values a config file may supply.
type Defaults struct {
	Dir         string
	FolderIsDir bool
}

// Load reads defaults from path. An empty path yields zero Defaults.
func Load(path string) (*Defaults, error) {
	if path == "" {
		return &Defaults{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return &Defaults{
		Dir:         v.GetString(keyDir),
		FolderIsDir: v.GetBool(keyFolderIsDir),
	}, nil
}
