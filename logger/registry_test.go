package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/logsift/logger"
)

func TestRegistry_MemoizesByName(t *testing.T) {
	t.Parallel()

	reg := logger.NewRegistry(logger.Config{Dir: t.TempDir()})

	first, err := reg.Get("main")
	require.NoError(t, err)
	second, err := reg.Get("main")
	require.NoError(t, err)

	assert.Same(t, first, second, "same name must return the registered instance")
}

func TestRegistry_DistinctNamesDistinctLoggers(t *testing.T) {
	t.Parallel()

	reg := logger.NewRegistry(logger.Config{Dir: t.TempDir()})

	mainLog, err := reg.Get("main")
	require.NoError(t, err)
	authLog, err := reg.Get("auth")
	require.NoError(t, err)

	assert.NotSame(t, mainLog, authLog)
}

func TestRegistry_LoggersShareOneFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reg := logger.NewRegistry(logger.Config{Dir: dir})

	mainLog, err := reg.Get("main")
	require.NoError(t, err)
	authLog, err := reg.Get("auth")
	require.NoError(t, err)

	mainLog.Info("from main")
	authLog.Info("from auth")
	require.NoError(t, reg.Sync())

	data, err := os.ReadFile(filepath.Join(dir, logger.DefaultFilename))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "[main] from main")
	assert.Contains(t, content, "[auth] from auth")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "registry must write a single active file")
}

func TestRegistry_LazyDirectoryCreation(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "lazy-logs")
	reg := logger.NewRegistry(logger.Config{Dir: dir})

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "NewRegistry must not touch the filesystem")

	_, err := reg.Get("main")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRegistry_ConcurrentGet(t *testing.T) {
	t.Parallel()

	reg := logger.NewRegistry(logger.Config{Dir: t.TempDir()})

	const goroutines = 16
	results := make([]logger.Logger, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, err := reg.Get("shared")
			if err != nil {
				t.Errorf("Get failed: %v", err)
				return
			}
			results[i] = l
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i], "concurrent Get must hand out one instance")
	}
}

func TestRegistry_GetErrorOnUnwritableDir(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	reg := logger.NewRegistry(logger.Config{Dir: filepath.Join(parent, "logs")})

	_, err := reg.Get("main")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "create log directory"))
}
