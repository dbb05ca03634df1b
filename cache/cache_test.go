package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/matryer/is"

	"github.com/twiby/rsScrabble/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	var calls atomic.Int32
	load := func(cfg *config.Config, key string) (interface{}, error) {
		calls.Add(1)
		return "obj:" + key, nil
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obj, err := Load(cfg, "test-load-once", load)
			is.NoErr(err)
			is.Equal(obj, "obj:test-load-once")
		}()
	}
	wg.Wait()
	is.Equal(calls.Load(), int32(1))

	Evict("test-load-once")
	_, err := Load(cfg, "test-load-once", load)
	is.NoErr(err)
	is.Equal(calls.Load(), int32(2))
}

func TestLoadErrorNotCached(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	fail := true
	load := func(cfg *config.Config, key string) (interface{}, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return 42, nil
	}
	_, err := Load(cfg, "test-error", load)
	is.True(err != nil)
	fail = false
	obj, err := Load(cfg, "test-error", load)
	is.NoErr(err)
	is.Equal(obj, 42)
}
