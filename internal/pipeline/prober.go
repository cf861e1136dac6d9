package pipeline

import (
	"github.com/backmassage/muxshape/internal/config"
	"github.com/backmassage/muxshape/internal/probe"
	"github.com/pkg/errors"
)

// NewProber builds the prober selected by cfg.Prober, wrapped in the cache
// selected by cfg.Cache. onCacheError receives non-fatal cache failures.
// The returned close function releases the cache connection.
func NewProber(cfg *config.Config, onCacheError func(error)) (probe.Prober, func() error, error) {
	ff := probe.FFprobe{Timeout: cfg.ProbeTimeout}

	var p probe.Prober
	switch cfg.Prober {
	case config.ProberFFprobe:
		p = ff
	case config.ProberMP4:
		p = probe.MP4{}
	case config.ProberAuto:
		p = probe.NewAuto(ff)
	default:
		return nil, nil, errors.Errorf("unknown prober %q", cfg.Prober)
	}

	noop := func() error { return nil }
	switch cfg.Cache {
	case config.CacheNone:
		return p, noop, nil
	case config.CacheMemory:
		return probe.Cached{Inner: p, Store: probe.NewMemoryCache(), OnError: onCacheError}, noop, nil
	case config.CacheRedis:
		rc, err := probe.NewRedisCache(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return probe.Cached{Inner: p, Store: rc, OnError: onCacheError}, rc.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown cache %q", cfg.Cache)
	}
}
