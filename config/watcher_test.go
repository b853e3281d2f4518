package config

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "navbar.yml", "home_url: https://one.test\n")

	var mu sync.Mutex
	var reloaded []*Config
	w, err := NewWatcher(path, 20*time.Millisecond, nil, func(cfg *Config) {
		mu.Lock()
		reloaded = append(reloaded, cfg)
		mu.Unlock()
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	require.NoError(t, os.WriteFile(path, []byte("home_url: https://two.test\n"), 0644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(reloaded) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "https://two.test", reloaded[len(reloaded)-1].HomeURL)
}

func TestWatcherSkipsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "navbar.yml", "home_url: https://one.test\n")

	calls := make(chan *Config, 4)
	w, err := NewWatcher(path, 10*time.Millisecond, nil, func(cfg *Config) { calls <- cfg })
	require.NoError(t, err)
	defer w.Close()

	w.reload()
	require.Len(t, calls, 1)
	<-calls

	require.NoError(t, os.WriteFile(path, []byte("bar:\n  bypass_cache_modifier: hyper\n"), 0644))
	w.reload()
	assert.Len(t, calls, 0)
}
