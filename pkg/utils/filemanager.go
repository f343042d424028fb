// =============================================================================
// Theatre Statements - File Manager Utility
// =============================================================================
//
// This module persists rendered statements to disk:
//   - Directory management (the statements directory is created on demand)
//   - File naming (Extrato_<YYYYMMDD_HHMMSS>.<ext>)
//   - Scoped writes (open, write, sync, close on every path)
//
// WRITE STRATEGY:
//   - Content is written to a temporary file in the target directory
//   - The temporary file is renamed into place once fully written
//   - A failed write never leaves a truncated statement behind
//   - Two statements saved within the same second share a name; the later
//     one replaces the earlier one
//
// =============================================================================

package utils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultStatementsDir is the directory statements are written to.
const DefaultStatementsDir = "Extratos"

// statementFilePrefix starts every persisted statement's file name.
const statementFilePrefix = "Extrato_"

// timestampLayout renders YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for persisted statements.
type FileManager struct {
	// OutputDir is the directory statements are written to.
	OutputDir string

	// Now is the clock used for file names. Defaults to time.Now.
	Now func() time.Time

	// FileMode is the permission of written statements.
	FileMode os.FileMode
}

// NewFileManager creates a new FileManager writing under outputDir.
// An empty outputDir selects DefaultStatementsDir.
func NewFileManager(outputDir string) *FileManager {
	if outputDir == "" {
		outputDir = DefaultStatementsDir
	}
	return &FileManager{
		OutputDir: outputDir,
		Now:       time.Now,
		FileMode:  0644,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates the statements directory if it doesn't exist.
func (fm *FileManager) EnsureDirectories() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", fm.OutputDir)
	}
	return nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// StatementFileName returns the file name for a statement saved at t.
//
// EXAMPLE:
//   t:   2024-01-15 14:30:22
//   ext: "xml"
//   out: "Extrato_20240115_143022.xml"
func StatementFileName(t time.Time, ext string) string {
	return fmt.Sprintf("%s%s.%s", statementFilePrefix, t.Format(timestampLayout), strings.TrimPrefix(ext, "."))
}

// StatementPath returns the full path a statement saved now would get.
func (fm *FileManager) StatementPath(ext string) string {
	return filepath.Join(fm.OutputDir, StatementFileName(fm.now(), ext))
}

// =============================================================================
// STATEMENT PERSISTENCE
// =============================================================================

// Save writes content to a new statement file and returns its path.
//
// PARAMETERS:
//   - ctx: Checked before any file is touched.
//   - content: The rendered statement.
//   - ext: The file extension ("xml" or "txt").
//
// RETURNS:
//   - The path of the written file. It is also returned alongside an error
//     so callers can report which file failed.
//   - An error if the directory or file cannot be written.
func (fm *FileManager) Save(ctx context.Context, content, ext string) (string, error) {
	path := fm.StatementPath(ext)

	if err := ctx.Err(); err != nil {
		return path, err
	}
	if err := fm.EnsureDirectories(); err != nil {
		return path, err
	}
	if err := fm.writeFile(path, content); err != nil {
		return path, err
	}

	return path, nil
}

// writeFile writes content to a temporary sibling of path and renames it
// into place.
func (fm *FileManager) writeFile(path, content string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create statement file")
	}
	tmpName := tmp.Name()

	defer func() {
		// Second close after the explicit one below is a no-op.
		tmp.Close()
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return errors.Wrap(err, "failed to write statement file")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "failed to sync statement file")
	}
	if err = tmp.Chmod(fm.fileMode()); err != nil {
		return errors.Wrap(err, "failed to set statement file mode")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close statement file")
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "failed to move statement file into place")
	}

	return nil
}

func (fm *FileManager) now() time.Time {
	if fm.Now == nil {
		return time.Now()
	}
	return fm.Now()
}

func (fm *FileManager) fileMode() os.FileMode {
	if fm.FileMode == 0 {
		return 0644
	}
	return fm.FileMode
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// ListStatements returns the persisted statements in the output directory,
// oldest first.
func (fm *FileManager) ListStatements() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(fm.OutputDir, statementFilePrefix+"*"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan statements directory")
	}
	return files, nil
}
