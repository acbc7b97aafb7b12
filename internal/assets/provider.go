// Package assets loads text-art sprites and WAV sound effects from an asset
// directory. Loading never fails: a missing or broken image yields nil so
// callers draw a solid block, and a missing sound yields a silent stub.
package assets

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Provider loads and caches assets from one directory.
type Provider struct {
	dir    string
	logger *log.Logger

	mu     sync.Mutex
	art    map[string]*artFile // nil entry records a failed load
	images map[imageKey]*Image
	sounds map[string]Sound
	audio  *audio
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger reports fallbacks to l.
func WithLogger(l *log.Logger) Option {
	return func(p *Provider) {
		p.logger = l
	}
}

// New creates a provider reading from dir. An empty dir disables file
// loading entirely.
func New(dir string, opts ...Option) *Provider {
	p := &Provider{
		dir:    dir,
		logger: log.New(io.Discard),
		art:    make(map[string]*artFile),
		images: make(map[imageKey]*Image),
		sounds: make(map[string]Sound),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dir returns the asset directory.
func (p *Provider) Dir() string {
	return p.dir
}

// Close stops audio playback if it was enabled.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.audio != nil {
		p.audio.close()
		p.audio = nil
	}
}
