package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/WhatDothLife/emacs-doom-themes/internal/blend"
	"github.com/WhatDothLife/emacs-doom-themes/internal/log"
)

// ErrConstruction wraps any error raised while a palette table is being
// built. A failed activation never replaces the previously active table.
var ErrConstruction = errors.New("palette construction failed")

// Def binds a palette name to its color expression.
type Def struct {
	Name string
	Expr Expr
}

// Theme is an ordered palette definition plus the attribute flags that the
// face mapping layer consumes.
type Theme struct {
	Name         string
	Colors       []Def
	EnableBold   bool
	EnableItalic bool
}

// New creates a theme with bold and italic rendering enabled, the default.
func New(name string, colors []Def) Theme {
	return Theme{
		Name:         name,
		Colors:       colors,
		EnableBold:   true,
		EnableItalic: true,
	}
}

// tierIndex maps a requested capability tier value to an index into a
// tiered sequence. The mapping is historical and load-bearing: themes are
// written against it, so it is a fixed contract rather than something to
// tidy up. Unknown tier values select the most capable entry.
var tierIndex = map[int]int{
	256: 0,
	1:   1,
	16:  2,
	2:   3,
	8:   4,
	3:   5,
}

// TierIndex returns the sequence index for a capability tier value.
func TierIndex(tier int) int {
	if i, ok := tierIndex[tier]; ok {
		return i
	}
	return 0
}

// Builder accumulates palette definitions in declaration order. Later
// definitions may reference earlier ones by name.
type Builder struct {
	names []string
	table map[string]blend.Value
}

// NewBuilder returns an empty palette builder.
func NewBuilder() *Builder {
	return &Builder{table: make(map[string]blend.Value)}
}

// Define evaluates expr against the definitions made so far and stores the
// result under name. On error the builder is left exactly as it was.
func (b *Builder) Define(name string, expr Expr) error {
	v, err := expr.eval(b)
	if err != nil {
		return fmt.Errorf("define %q: %w", name, err)
	}
	if _, exists := b.table[name]; !exists {
		b.names = append(b.names, name)
	}
	b.table[name] = v
	return nil
}

func (b *Builder) lookup(name string) (blend.Value, bool) {
	v, ok := b.table[name]
	return v, ok
}

// build promotes the accumulated definitions to an immutable table.
func (b *Builder) build() *Table {
	names := make([]string, len(b.names))
	copy(names, b.names)
	table := make(map[string]blend.Value, len(b.table))
	for k, v := range b.table {
		table[k] = v
	}
	return &Table{names: names, colors: table}
}

// Table is an immutable name-to-color mapping produced by a successful
// activation. Resolution never mutates it.
type Table struct {
	names  []string
	colors map[string]blend.Value
}

// Resolve looks up a palette name at the given capability tier. Scalar
// colors resolve the same at every tier. Tiered colors map the tier value
// through the fallback table, clamping to the least capable entry when the
// index runs past the end of the sequence. Undefined names resolve to
// absent, never an error.
func (t *Table) Resolve(name string, tier int) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.colors[name]
	if !ok || v.IsAbsent() {
		return "", false
	}
	if !v.IsSequence() {
		return v.Hex(), true
	}
	c := v.At(TierIndex(tier))
	return c, c != ""
}

// Names returns the palette names in declaration order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Registry holds the active palette table. Activation builds a fresh table
// from a theme definition and swaps it in atomically; resolution reads the
// active table without ever observing a half-built one.
type Registry struct {
	mu           sync.RWMutex
	active       *Table
	theme        string
	activationID string
	enableBold   bool
	enableItalic bool
}

// NewRegistry returns a registry with no active theme. Resolve on a fresh
// registry reports every name as absent.
func NewRegistry() *Registry {
	return &Registry{enableBold: true, enableItalic: true}
}

// Activate builds the theme's palette table and makes it the active one.
// Any definition error aborts the activation and leaves the previously
// active table (if any) untouched.
func (r *Registry) Activate(t Theme) error {
	b := NewBuilder()
	for _, def := range t.Colors {
		if err := b.Define(def.Name, def.Expr); err != nil {
			log.ErrorErr(log.CatTheme, "Theme activation failed", err, "theme", t.Name)
			return fmt.Errorf("%w: theme %q: %v", ErrConstruction, t.Name, err)
		}
	}
	table := b.build()
	id := uuid.NewString()

	r.mu.Lock()
	r.active = table
	r.theme = t.Name
	r.activationID = id
	r.enableBold = t.EnableBold
	r.enableItalic = t.EnableItalic
	r.mu.Unlock()

	log.Info(log.CatTheme, "Theme activated",
		"theme", t.Name, "colors", len(t.Colors), "activation", id)
	return nil
}

// Resolve answers the sole query interface: palette name plus capability
// tier to concrete color. Absent when no theme is active, the name is
// undefined, or the color has no representation at the selected tier.
func (r *Registry) Resolve(name string, tier int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active.Resolve(name, tier)
}

// Names returns the active palette's names in declaration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active.Names()
}

// Active reports whether a theme has been successfully activated.
func (r *Registry) Active() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active != nil
}

// ThemeName returns the name of the active theme, or "".
func (r *Registry) ThemeName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

// ActivationID identifies the current activation; it changes every time a
// theme is (re)activated, which makes it a usable cache epoch.
func (r *Registry) ActivationID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activationID
}

// BoldEnabled reports whether faces may render bold.
func (r *Registry) BoldEnabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enableBold
}

// ItalicEnabled reports whether faces may render italics.
func (r *Registry) ItalicEnabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enableItalic
}
