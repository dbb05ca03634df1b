// Package cache keeps large immutable objects, such as dictionaries, so that
// every word finder in a process shares one copy of each.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/twiby/rsScrabble/config"
)

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

type loadFunc func(cfg *config.Config, key string) (interface{}, error)

// GlobalObjectCache is the process-wide cache.
var GlobalObjectCache *cache
var createOnce sync.Once

func (c *cache) get(cfg *config.Config, key string, load loadFunc) (interface{}, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := load(cfg, key)
	if err != nil {
		// failures are not cached; the next call tries again.
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]interface{})}
	})
}

// Load returns the object stored under key, calling loadFunc the first time.
func Load(cfg *config.Config, key string, loadFunc loadFunc) (interface{}, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(cfg, key, loadFunc)
}

// Evict forgets the object stored under key.
func Evict(key string) {
	CreateGlobalObjectCache()
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	delete(GlobalObjectCache.objects, key)
}
