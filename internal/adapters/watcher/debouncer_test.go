package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/codereq/internal/adapters/watcher"
)

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/work/request.json")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/work/request.json"}, calls[0])
	})
}

func TestDebouncer_Add_BurstCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/work/request.yaml")
		time.Sleep(50 * time.Millisecond)
		d.Add("/work/request.json")
		time.Sleep(50 * time.Millisecond)
		d.Add("/work/request.json")

		synctest.Wait()
		assert.Empty(t, calls, "window restarts on every event")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/work/request.json", "/work/request.yaml"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			calls++
			mu.Unlock()
		})

		d.Add("/work/request.json")
		time.Sleep(150 * time.Millisecond)
		d.Add("/work/request.json")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, calls)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/work/request.json")
		d.Flush()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/work/request.json"}, calls[0])

		// Nothing pending: the timer was stopped and the set cleared.
		time.Sleep(2 * time.Hour)
		synctest.Wait()
		assert.Len(t, calls, 1)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Millisecond, func([]string) { called = true })

	d.Flush()
	assert.False(t, called)
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)

		assert.NotPanics(t, func() {
			d.Add("/work/request.json")
			time.Sleep(20 * time.Millisecond)
			synctest.Wait()
			d.Flush()
		})
	})
}
