package source

import (
	"context"
	"errors"
	"sync"
	"time"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
	"quality-metrics/src/util"
)

// ErrNoSource is returned when neither a model path nor a front-end URL is configured
var ErrNoSource = errors.New("no model source configured")

// Provider supplies the structural model with caching.
// A configured file path takes precedence over the front-end URL.
type Provider struct {
	cfg              config.SourceConfig
	cache            config.CacheConfig
	includeSynthetic bool
	client           *Client

	mu       sync.RWMutex
	project  *model.Project
	loadedAt time.Time
}

// NewProvider creates a model provider from configuration
func NewProvider(cfg *config.Config) *Provider {
	p := &Provider{
		cfg:              cfg.Source,
		cache:            cfg.Cache,
		includeSynthetic: cfg.Engine.IncludeSynthetic,
	}
	if cfg.Source.Path == "" && cfg.Source.URL != "" {
		p.client = NewClient(cfg.Source)
	}
	return p
}

// Project returns the structural model, loading it on first use
func (p *Provider) Project(ctx context.Context) (*model.Project, error) {
	p.mu.RLock()
	if p.fresh() {
		defer p.mu.RUnlock()
		util.Debug("Returning cached model with %d classes", len(p.project.Classes))
		return p.project, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	if p.fresh() {
		util.Debug("Returning cached model (after lock upgrade)")
		return p.project, nil
	}

	project, err := p.load(ctx)
	if err != nil {
		util.Error("Failed to load structural model: %v", err)
		return nil, err
	}

	util.Info("Loaded structural model %s with %d classes", project.Name, len(project.Classes))
	if p.cache.Enabled {
		p.project = project
		p.loadedAt = time.Now()
		util.Debug("Structural model cached")
	}

	return project, nil
}

// Invalidate drops the cached model
func (p *Provider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.project = nil
}

func (p *Provider) fresh() bool {
	if p.project == nil {
		return false
	}
	return p.cache.TTL <= 0 || time.Since(p.loadedAt) < p.cache.TTL
}

func (p *Provider) load(ctx context.Context) (*model.Project, error) {
	switch {
	case p.cfg.Path != "":
		util.Debug("Loading structural model from %s", p.cfg.Path)
		project, err := LoadFile(p.cfg.Path)
		if err != nil {
			return nil, err
		}
		if p.cfg.Project != "" {
			project.Name = p.cfg.Project
		}
		return project, nil
	case p.client != nil:
		return p.client.FetchModel(ctx, p.cfg.Project, p.includeSynthetic)
	default:
		return nil, ErrNoSource
	}
}
