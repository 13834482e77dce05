// Package branding holds the names python-su shows in help and version
// output. They come from the embedded branding.yaml; a key missing there
// keeps its built-in value.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

type identity struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
}

var current = sync.OnceValue(func() identity {
	id := identity{
		CLIName:     "python-su",
		DisplayName: "Python Setup",
		Description: "Scaffold a minimal Python project",
	}
	// A malformed file leaves the built-in names in place.
	_ = yaml.Unmarshal(rawBranding, &id)
	return id
})

// CLIName is the command name used in usage lines and examples.
func CLIName() string { return current().CLIName }

// DisplayName opens the long help text.
func DisplayName() string { return current().DisplayName }

// Description is the one-line summary shown by --help.
func Description() string { return current().Description }
