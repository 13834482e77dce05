// Package config reads optional project defaults from a YAML file passed with
// --config. Flags given on the command line always take precedence over the
// values loaded here.
package config
