// Package faces maps named UI faces onto palette colors. A face declares
// which palette names it draws from plus its attribute flags; resolving a
// face yields concrete colors for the current theme at a display tier.
package faces

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/WhatDothLife/emacs-doom-themes/internal/cachemanager"
	"github.com/WhatDothLife/emacs-doom-themes/internal/log"
	"github.com/WhatDothLife/emacs-doom-themes/internal/theme"
)

// Spec declares a face against palette names. Empty color fields mean the
// face leaves that channel unstyled.
type Spec struct {
	Name       string
	Foreground string // palette name
	Background string // palette name
	Bold       bool
	Italic     bool
	Underline  bool
}

// Face is a resolved spec: concrete hex colors for one theme activation at
// one display tier. A color absent at the resolved tier comes back empty.
type Face struct {
	Name       string
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
}

// Style renders the face as a lipgloss style.
func (f Face) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if f.Foreground != "" {
		s = s.Foreground(lipgloss.Color(f.Foreground))
	}
	if f.Background != "" {
		s = s.Background(lipgloss.Color(f.Background))
	}
	if f.Bold {
		s = s.Bold(true)
	}
	if f.Italic {
		s = s.Italic(true)
	}
	if f.Underline {
		s = s.Underline(true)
	}
	return s
}

type faceQuery struct {
	spec Spec
	tier int
}

// Mapper resolves face specs against a theme registry. Resolved faces are
// memoized per activation: the cache key carries the activation ID, so a
// theme switch naturally invalidates every stale entry.
type Mapper struct {
	registry *theme.Registry
	specs    map[string]Spec
	names    []string
	cache    *cachemanager.ReadThroughCache[string, Face, faceQuery]
}

const cacheTTL = 30 * time.Minute

// NewMapper creates a mapper over the given registry and face specs.
func NewMapper(registry *theme.Registry, specs []Spec) *Mapper {
	return newMapper(registry, specs, false)
}

// NewUncachedMapper creates a mapper that recomputes every face on each
// lookup. Useful when chasing stale-style reports.
func NewUncachedMapper(registry *theme.Registry, specs []Spec) *Mapper {
	return newMapper(registry, specs, true)
}

func newMapper(registry *theme.Registry, specs []Spec, skipCache bool) *Mapper {
	m := &Mapper{
		registry: registry,
		specs:    make(map[string]Spec, len(specs)),
	}
	for _, spec := range specs {
		if _, exists := m.specs[spec.Name]; !exists {
			m.names = append(m.names, spec.Name)
		}
		m.specs[spec.Name] = spec
	}
	backing := cachemanager.NewInMemoryCacheManager[string, Face](
		"face-styles", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	m.cache = cachemanager.NewReadThroughCache[string, Face, faceQuery](
		backing, m.compute, skipCache)
	return m
}

// Resolve materializes a face at the given display tier. Unknown face names
// report false; palette names the active theme does not define simply leave
// the channel unstyled.
func (m *Mapper) Resolve(ctx context.Context, name string, tier int) (Face, bool) {
	spec, ok := m.specs[name]
	if !ok {
		log.Debug(log.CatFaces, "unknown face", "face", name)
		return Face{}, false
	}

	key := fmt.Sprintf("%s:%s:%d", m.registry.ActivationID(), name, tier)
	face, err := m.cache.Get(ctx, key, faceQuery{spec: spec, tier: tier}, cacheTTL)
	if err != nil {
		// compute never fails, but the cache contract surfaces errors
		log.ErrorErr(log.CatFaces, "face resolution failed", err, "face", name)
		return Face{}, false
	}
	return face, true
}

// ResolveAll materializes every known face at the given tier, in
// declaration order.
func (m *Mapper) ResolveAll(ctx context.Context, tier int) []Face {
	out := make([]Face, 0, len(m.names))
	for _, name := range m.names {
		if face, ok := m.Resolve(ctx, name, tier); ok {
			out = append(out, face)
		}
	}
	return out
}

// Names returns the face names in declaration order.
func (m *Mapper) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

func (m *Mapper) compute(_ context.Context, q faceQuery) (Face, error) {
	face := Face{
		Name:      q.spec.Name,
		Bold:      q.spec.Bold && m.registry.BoldEnabled(),
		Italic:    q.spec.Italic && m.registry.ItalicEnabled(),
		Underline: q.spec.Underline,
	}
	if q.spec.Foreground != "" {
		if c, ok := m.registry.Resolve(q.spec.Foreground, q.tier); ok {
			face.Foreground = c
		}
	}
	if q.spec.Background != "" {
		if c, ok := m.registry.Resolve(q.spec.Background, q.tier); ok {
			face.Background = c
		}
	}
	return face, nil
}
