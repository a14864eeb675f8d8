package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, "plan.svg")
	other := filepath.Join(dir, "other.svg")
	require.NoError(t, os.WriteFile(plan, []byte("<svg/>"), 0644))

	fw, err := NewFileWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	var calls atomic.Int32
	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{plan}, func(path string) {
		calls.Add(1)
		changed <- path
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(plan, []byte("<svg width='1'/>"), 0644))
	}
	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(other, []byte("<svg/>"), 0644))

	select {
	case path := <-changed:
		abs, _ := filepath.Abs(plan)
		assert.Equal(t, abs, path)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUnwatch(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, "plan.svg")
	require.NoError(t, os.WriteFile(plan, []byte("<svg/>"), 0644))

	fw, err := NewFileWatcher(10 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.Watch([]string{plan}, func(string) {}))
	require.NoError(t, fw.Unwatch(plan))
	require.NoError(t, fw.Unwatch(plan))
	assert.Empty(t, fw.callbacks)
	assert.Empty(t, fw.dirs)
}
