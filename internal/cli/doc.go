// Package cli defines the Cobra root command for python-su. It turns flags
// and the positional project name into a scaffold.Config and delegates
// project creation to the scaffold package. Errors are returned to Execute,
// which prints them with the usage text.
package cli
