// Package theme holds palette definitions and the registry that resolves
// named colors at display capability tiers.
package theme

import (
	"errors"
	"fmt"

	"github.com/WhatDothLife/emacs-doom-themes/internal/blend"
)

// ErrUndefinedReference is returned when a color expression refers to a
// palette name that has not been defined yet. Definitions are evaluated in
// declaration order; forward references are malformed.
var ErrUndefinedReference = errors.New("undefined palette reference")

// Expr is a color expression evaluated while a palette table is built.
// Expressions may reference names defined earlier in the same palette.
type Expr interface {
	eval(b *Builder) (blend.Value, error)
}

type hexExpr struct {
	color string
}

// Hex is a scalar color literal, either a hex string or a recognized name.
func Hex(color string) Expr {
	return hexExpr{color: color}
}

func (e hexExpr) eval(*Builder) (blend.Value, error) {
	if _, err := blend.Normalize(e.color); err != nil {
		return blend.Value{}, err
	}
	return blend.Scalar(e.color), nil
}

type tieredExpr struct {
	colors []string
}

// Tiered is a sequence literal holding one color per capability tier, most
// capable first. An empty element means the color has no representation at
// that tier.
func Tiered(colors ...string) Expr {
	return tieredExpr{colors: colors}
}

func (e tieredExpr) eval(*Builder) (blend.Value, error) {
	for _, c := range e.colors {
		if c == "" {
			continue
		}
		if _, err := blend.Normalize(c); err != nil {
			return blend.Value{}, err
		}
	}
	return blend.Sequence(e.colors...), nil
}

type refExpr struct {
	name string
}

// Ref references a name defined earlier in the palette.
func Ref(name string) Expr {
	return refExpr{name: name}
}

func (e refExpr) eval(b *Builder) (blend.Value, error) {
	v, ok := b.lookup(e.name)
	if !ok {
		return blend.Value{}, fmt.Errorf("%w: %q", ErrUndefinedReference, e.name)
	}
	return v, nil
}

type blendExpr struct {
	a, b  Expr
	alpha float64
}

// Blend interpolates two expressions; alpha is the weight of the first.
func Blend(a, b Expr, alpha float64) Expr {
	return blendExpr{a: a, b: b, alpha: alpha}
}

func (e blendExpr) eval(b *Builder) (blend.Value, error) {
	va, err := e.a.eval(b)
	if err != nil {
		return blend.Value{}, err
	}
	vb, err := e.b.eval(b)
	if err != nil {
		return blend.Value{}, err
	}
	return blend.Blend(va, vb, e.alpha), nil
}

type darkenExpr struct {
	x     Expr
	alpha float64
}

// Darken blends an expression toward black by alpha.
func Darken(x Expr, alpha float64) Expr {
	return darkenExpr{x: x, alpha: alpha}
}

func (e darkenExpr) eval(b *Builder) (blend.Value, error) {
	v, err := e.x.eval(b)
	if err != nil {
		return blend.Value{}, err
	}
	return blend.Darken(v, e.alpha), nil
}

type lightenExpr struct {
	x     Expr
	alpha float64
}

// Lighten blends an expression toward white by alpha.
func Lighten(x Expr, alpha float64) Expr {
	return lightenExpr{x: x, alpha: alpha}
}

func (e lightenExpr) eval(b *Builder) (blend.Value, error) {
	v, err := e.x.eval(b)
	if err != nil {
		return blend.Value{}, err
	}
	return blend.Lighten(v, e.alpha), nil
}
