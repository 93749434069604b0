// Package builder resolves net files to the service that loads them.
package builder

import (
	"context"
	"errors"
	"fmt"
	"github.com/jt05610/pnet"
	"github.com/jt05610/pnet/pnml"
	"github.com/jt05610/pnet/yaml"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown format")

type Builder struct {
	SearchDirs []string
	seen       map[string]*pnet.Net
	services   map[string]pnet.Service
}

func NewBuilder(services map[string]pnet.Service, dirs ...string) *Builder {
	if dirs == nil {
		dirs = []string{"."}
	}
	return &Builder{
		SearchDirs: dirs,
		seen:       make(map[string]*pnet.Net),
		services:   services,
	}
}

// Default returns a builder with the pnml and yaml services
// registered under their usual extensions. Files without an extension
// are treated as pnml.
func Default(dirs ...string) *Builder {
	return NewBuilder(nil, dirs...).
		WithService("pnml", &pnml.Service{}).
		WithService("xml", &pnml.Service{}).
		WithService("yaml", &yaml.Service{}).
		WithService("yml", &yaml.Service{})
}

func (b *Builder) WithService(ext string, srv pnet.Service) *Builder {
	if b.services == nil {
		b.services = make(map[string]pnet.Service)
	}
	b.services[strings.Trim(ext, ".")] = srv
	return b
}

func (b *Builder) WithSearchDirs(dirs ...string) *Builder {
	b.SearchDirs = append(b.SearchDirs, dirs...)
	return b
}

func (b *Builder) service(f string) pnet.Service {
	ext := filepath.Ext(f)
	if ext == "" {
		ext = ".pnml"
	}
	return b.services[strings.Trim(ext, ".")]
}

func (b *Builder) load(ctx context.Context, srv pnet.Service, path string) (*pnet.Net, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	n, err := srv.Load(ctx, file)
	cerr := file.Close()
	if err != nil {
		return nil, err
	}
	if cerr != nil {
		return nil, cerr
	}
	return n, nil
}

// Build finds f in the search dirs and loads it with the service
// registered for its extension. Absolute paths are opened directly.
// Loaded nets are cached by file name.
func (b *Builder) Build(ctx context.Context, f string) (*pnet.Net, error) {
	if n, ok := b.seen[f]; ok {
		return n, nil
	}
	srv := b.service(f)
	if srv == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if filepath.IsAbs(f) {
		n, err := b.load(ctx, srv, f)
		if err != nil {
			return nil, err
		}
		b.seen[f] = n
		return n, nil
	}
	for _, dir := range b.SearchDirs {
		n, err := b.load(ctx, srv, filepath.Join(dir, f))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		b.seen[f] = n
		return n, nil
	}
	return nil, os.ErrNotExist
}
