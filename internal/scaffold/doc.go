// Package scaffold materializes a new Python project on disk. It resolves the
// target folder from a Config, creating the base directory on demand, and
// writes the <name>.py stub and <name>.bat launcher with exclusive creation
// so an existing project is never overwritten.
package scaffold
