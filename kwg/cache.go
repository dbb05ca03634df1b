package kwg

import (
	"errors"
	"strings"

	"github.com/twiby/rsScrabble/cache"
	"github.com/twiby/rsScrabble/config"
	"github.com/twiby/rsScrabble/tilemapping"
)

const (
	CacheKeyPrefix = "kwg:"
)

// CacheLoadFunc is the function that loads a word list into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	filename := strings.TrimPrefix(key, CacheKeyPrefix)
	ld, err := tilemapping.NamedLetterDistribution(cfg, cfg.GetString(config.ConfigLetterDistribution))
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	return LoadFromFile(filename, ld.TileMapping())
}

// Get loads the KWG for a word list from the cache or from the file. The
// same file is only read once per process.
func Get(cfg *config.Config, filename string) (*KWG, error) {
	key := CacheKeyPrefix + filename
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*KWG)
	if !ok {
		return nil, errors.New("could not read kwg from cache")
	}
	return ret, nil
}
