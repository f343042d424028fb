package utils_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.January, 15, 14, 30, 22, 0, time.Local)
}

func TestStatementFileName(t *testing.T) {
	assert.Equal(t, "Extrato_20240115_143022.xml", utils.StatementFileName(fixedClock(), "xml"))
	assert.Equal(t, "Extrato_20240115_143022.txt", utils.StatementFileName(fixedClock(), ".txt"))
}

func TestNewFileManager_DefaultsDirectory(t *testing.T) {
	fm := utils.NewFileManager("")
	assert.Equal(t, utils.DefaultStatementsDir, fm.OutputDir)
}

func TestSave_CreatesDirectoryAndWritesContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Extratos")
	fm := utils.NewFileManager(dir)
	fm.Now = fixedClock

	path, err := fm.Save(context.Background(), "<Statement/>", "xml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Extrato_20240115_143022.xml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<Statement/>", string(data))

	files, err := fm.ListStatements()
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestSave_CancelledContextWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Extratos")
	fm := utils.NewFileManager(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fm.Save(ctx, "content", "xml")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, utils.FileExists(dir))
}

func TestSave_DirectoryBlockedByFile(t *testing.T) {
	base := t.TempDir()
	blocked := filepath.Join(base, "Extratos")
	require.NoError(t, os.WriteFile(blocked, []byte("not a dir"), 0644))

	fm := utils.NewFileManager(blocked)
	_, err := fm.Save(context.Background(), "content", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
	assert.NotNil(t, errors.GetReportableStackTrace(err))

	var pathErr *os.PathError
	assert.True(t, errors.As(err, &pathErr))
}
