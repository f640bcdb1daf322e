package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rotatedName = regexp.MustCompile(`^rockfall-\d{8}-\d{6}\.log$`)

// inTempDir runs the test from an empty directory and restores the standard logger
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	flags := log.Flags()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
}

func readLog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	return string(data)
}

// oversizeLog leaves a log file just past the rotation threshold
func oversizeLog(t *testing.T) {
	t.Helper()
	require.NoError(t, os.MkdirAll(logDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(logDir, logFileName), make([]byte, maxLogSize+1), 0644))
}

func TestSetupLogging_OffDiscards(t *testing.T) {
	inTempDir(t)

	assert.Nil(t, setupLogging(false))
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log directory without debug")
}

func TestSetupLogging_WritesBanner(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()
	assert.Equal(t, io.Writer(f), log.Writer())

	log.Printf("Level %d loaded", 3)

	out := readLog(t)
	assert.Contains(t, out, fmt.Sprintf("===== rockfall started (pid %d) =====", os.Getpid()))
	assert.Contains(t, out, "Level 3 loaded")
	assert.Contains(t, out, "logging_test.go", "entries carry the calling file")
}

func TestSetupLogging_AppendsAcrossRuns(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	require.NotNil(t, f)
	log.Print("first run")
	f.Close()

	f = setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	out := readLog(t)
	assert.Contains(t, out, "first run")
	assert.Equal(t, 2, strings.Count(out, "rockfall started"))
}

func TestSetupLogging_RotatesOversizedLog(t *testing.T) {
	inTempDir(t)
	oversizeLog(t)

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	var rotated []string
	for _, e := range entries {
		if rotatedName.MatchString(e.Name()) {
			rotated = append(rotated, e.Name())
		}
	}
	require.Len(t, rotated, 1)

	info, err := os.Stat(filepath.Join(logDir, rotated[0]))
	require.NoError(t, err)
	assert.Equal(t, int64(maxLogSize+1), info.Size(), "old content moves to the rotated file")

	assert.True(t, strings.HasPrefix(readLog(t), "20"), "fresh log starts with the banner line")
}

func TestSetupLogging_FailedRotationKeepsAppending(t *testing.T) {
	inTempDir(t)
	oversizeLog(t)

	// Occupy every rotation name the call can pick so the rename fails
	now := time.Now()
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("rockfall-%s.log", now.Add(time.Duration(i)*time.Second).Format("20060102-150405"))
		require.NoError(t, os.MkdirAll(filepath.Join(logDir, name, "busy"), 0755))
	}

	f := setupLogging(true)
	require.NotNil(t, f, "logging stays on when rotation fails")
	defer f.Close()

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(maxLogSize+1))
	assert.Contains(t, readLog(t), "rockfall started")
}

func TestSetupLogging_UnusableDirDiscards(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile(logDir, []byte("not a directory"), 0644))

	assert.Nil(t, setupLogging(true))
	assert.Equal(t, io.Discard, log.Writer())
}
