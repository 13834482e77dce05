package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	// ErrNotADirectory is returned when a path that must be a directory
	// names an existing file.
	ErrNotADirectory = errors.New("not a directory")

	// ErrAlreadyExists is returned when the project folder or one of the
	// generated files is already present.
	ErrAlreadyExists = errors.New("already exists")
)

// Config describes the project to create. Empty optional fields are defaulted
// at the point of use.
type Config struct {
	Directory         string // Base directory; empty means the working directory
	Folder            string // Project folder name; empty means ProjectName
	FolderIsDirectory bool   // Write files into the base directory itself
	ProjectName       string
}

// FolderName returns the name of the project folder created under the base
// directory.
func (c Config) FolderName() string {
	if c.Folder != "" {
		return c.Folder
	}
	return c.ProjectName
}

// Result holds the outcome of a project creation.
type Result struct {
	OutputDir string
	Files     []string
}

// Materializer creates project folders and files relative to a working
// directory.
type Materializer struct {
	Cwd    string
	Logger *slog.Logger
}

// New returns a Materializer rooted at cwd. A nil logger discards output.
func New(cwd string, logger *slog.Logger) *Materializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Materializer{Cwd: cwd, Logger: logger}
}

// Create resolves the project folder for cfg and writes the base files into it.
func (m *Materializer) Create(cfg Config) (*Result, error) {
	dir, err := m.CreateFolder(cfg)
	if err != nil {
		return nil, err
	}

	files, err := m.WriteBaseFiles(dir, cfg.ProjectName)
	if err != nil {
		return nil, err
	}

	return &Result{OutputDir: dir, Files: files}, nil
}

// CreateFolder returns the absolute path of the directory that will hold the
// project files, creating it if needed.
func (m *Materializer) CreateFolder(cfg Config) (string, error) {
	base := m.baseDir(cfg.Directory)

	info, err := os.Stat(base)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		m.Logger.Debug("creating base directory", "path", base)
		if err := os.MkdirAll(base, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", base, err)
		}
	case err != nil:
		return "", fmt.Errorf("checking directory %s: %w", base, err)
	case !info.IsDir():
		return "", fmt.Errorf("specified directory %s: %w", base, ErrNotADirectory)
	}

	if cfg.FolderIsDirectory {
		return base, nil
	}

	target := projectDir(base, cfg.FolderName())

	// The project folder must be new, whatever is already at the path.
	info, err = os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		return "", fmt.Errorf("specified folder %s: %w", target, ErrAlreadyExists)
	case err == nil:
		return "", fmt.Errorf("specified folder %s: %w", target, ErrNotADirectory)
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("checking folder %s: %w", target, err)
	}

	m.Logger.Debug("creating project folder", "path", target)
	if err := os.MkdirAll(target, 0755); err != nil {
		return "", fmt.Errorf("creating folder %s: %w", target, err)
	}

	return target, nil
}

// WriteBaseFiles writes <name>.py and <name>.bat into dir and returns the
// names of the files written. Files are created exclusively; a file written
// before a later failure is left in place.
func (m *Materializer) WriteBaseFiles(dir, name string) ([]string, error) {
	files := []struct {
		name    string
		content string
	}{
		{name + ".py", pythonStub(name)},
		{name + ".bat", batchLauncher(name)},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := createExclusive(path, f.content); err != nil {
			return written, err
		}
		m.Logger.Debug("wrote file", "path", path)
		written = append(written, f.name)
	}

	return written, nil
}

func (m *Materializer) baseDir(dir string) string {
	if dir == "" {
		return m.Cwd
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(m.Cwd, dir)
}

// projectDir places folder under base unless folder is itself absolute.
func projectDir(base, folder string) string {
	if filepath.IsAbs(folder) {
		return filepath.Clean(folder)
	}
	return filepath.Join(base, folder)
}

func pythonStub(name string) string {
	return fmt.Sprintf("# %s.py\n", name)
}

func batchLauncher(name string) string {
	return fmt.Sprintf("python %s.py\npause", name)
}

// createExclusive creates path with content, failing if anything exists there.
func createExclusive(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("file %s: %w", path, ErrAlreadyExists)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
