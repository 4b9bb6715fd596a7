// Package tower is the public surface of the generic-operation dispatch
// system. A Tower owns an operation table, the packages installed into it,
// and the generic entry points that dispatch through it.
//
// Packages plug in additively: each registers its implementations under its
// own tags and nothing else changes. Mixed-type calls (say, a rational plus a
// complex) have no registered method and fail with a NoMethodError; no
// coercion is attempted.
package tower

import (
	"go.uber.org/zap"

	"github.com/funvibe/numtower/internal/config"
	"github.com/funvibe/numtower/internal/dispatch"
	"github.com/funvibe/numtower/internal/logging"
	"github.com/funvibe/numtower/internal/object"
	"github.com/funvibe/numtower/internal/packages"
	"github.com/funvibe/numtower/internal/registry"
)

// Re-exported types so callers outside the module can name them.
type (
	Object = object.Object
	Tag    = object.Tag

	BadTaggedDatumError = object.BadTaggedDatumError
	NoMethodError       = dispatch.NoMethodError
	DivisionByZeroError = packages.DivisionByZeroError
)

const (
	SchemeNumberTag = object.SchemeNumberTag
	RationalTag     = object.RationalTag
	ComplexTag      = object.ComplexTag
	RectangularTag  = object.RectangularTag
	PolarTag        = object.PolarTag
)

// TypeTag returns the outer tag of a value produced by this system.
func TypeTag(v Object) (Tag, error) { return object.TypeTag(v) }

// Contents strips one tag level from a value produced by this system.
func Contents(v Object) (Object, error) { return object.Contents(v) }

// Tower is the composition root: it owns the operation table and exposes the
// generic entry points. Install packages first, then call operations; the
// table is not torn down for the life of the tower.
type Tower struct {
	table *registry.Table
	log   *logging.Logger
}

type Option func(*Tower)

// WithLogger enables debug-level dispatch tracing.
func WithLogger(l *logging.Logger) Option {
	return func(tw *Tower) { tw.log = l }
}

// New returns a tower with every shipped package installed.
func New(opts ...Option) *Tower {
	tw := NewEmpty(opts...)
	packages.InstallAll(tw.table)
	return tw
}

// NewEmpty returns a tower with an empty table. Callers compose their own
// package set through the Install* methods.
func NewEmpty(opts ...Option) *Tower {
	tw := &Tower{table: registry.NewTable(), log: logging.NewNop()}
	for _, opt := range opts {
		opt(tw)
	}
	return tw
}

// Install methods are idempotent: the table keeps the first registration for
// any (operation, signature) key, so installing a package twice is a no-op.

func (tw *Tower) InstallSchemeNumberPackage() { tw.install(config.SchemeNumberPackage) }
func (tw *Tower) InstallRationalPackage()     { tw.install(config.RationalPackage) }
func (tw *Tower) InstallRectangularPackage()  { tw.install(config.RectangularPackage) }
func (tw *Tower) InstallPolarPackage()        { tw.install(config.PolarPackage) }
func (tw *Tower) InstallComplexPackage()      { tw.install(config.ComplexPackage) }

// InstallPackage installs a shipped package by name. It reports false for an
// unknown name.
func (tw *Tower) InstallPackage(name string) bool {
	install, ok := packages.Installers[name]
	if !ok {
		return false
	}
	install(tw.table)
	tw.log.Debug("package installed", zap.String("package", name))
	return true
}

func (tw *Tower) install(name string) {
	packages.Installers[name](tw.table)
	tw.log.Debug("package installed", zap.String("package", name))
}

func (tw *Tower) apply(op string, args ...Object) (Object, error) {
	res, err := dispatch.Apply(tw.table, op, args...)
	if err != nil {
		tw.log.Debug("dispatch failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return res, nil
}

// Generic arithmetic entry points.

func (tw *Tower) Add(x, y Object) (Object, error) { return tw.apply(config.AddOp, x, y) }
func (tw *Tower) Sub(x, y Object) (Object, error) { return tw.apply(config.SubOp, x, y) }
func (tw *Tower) Mul(x, y Object) (Object, error) { return tw.apply(config.MulOp, x, y) }
func (tw *Tower) Div(x, y Object) (Object, error) { return tw.apply(config.DivOp, x, y) }

// Generic accessor entry points. On a complex value these dispatch twice:
// once on the complex tag, then on the inner representation tag.

func (tw *Tower) RealPart(z Object) (Object, error)  { return tw.apply(config.RealPartOp, z) }
func (tw *Tower) ImagPart(z Object) (Object, error)  { return tw.apply(config.ImagPartOp, z) }
func (tw *Tower) Magnitude(z Object) (Object, error) { return tw.apply(config.MagnitudeOp, z) }
func (tw *Tower) Angle(z Object) (Object, error)     { return tw.apply(config.AngleOp, z) }

// Constructors bypass the dispatcher: there is no tagged argument to dispatch
// on, so they look the registered constructor up directly under the single
// tag of the package that owns it.

func (tw *Tower) construct(op string, tag Tag, args ...Object) (Object, error) {
	sig := []Tag{tag}
	impl, ok := tw.table.Get(op, sig)
	if !ok {
		return nil, &NoMethodError{Op: op, Tags: sig}
	}
	return impl(args...)
}

// MakeSchemeNumber wraps a host float as a tagged ordinary number.
func (tw *Tower) MakeSchemeNumber(v float64) (Object, error) {
	return tw.construct(config.MakeOp, SchemeNumberTag, &object.Number{Value: v})
}

// MakeRational builds a tagged rational reduced to lowest terms. A zero
// denominator fails with DivisionByZeroError.
func (tw *Tower) MakeRational(n, d int64) (Object, error) {
	return tw.construct(config.MakeOp, RationalTag, &object.Integer{Value: n}, &object.Integer{Value: d})
}

// MakeComplexFromRealImag builds a tagged complex from (real, imag).
func (tw *Tower) MakeComplexFromRealImag(x, y float64) (Object, error) {
	return tw.construct(config.MakeFromRealImagOp, ComplexTag, &object.Number{Value: x}, &object.Number{Value: y})
}

// MakeComplexFromMagAng builds a tagged complex from (magnitude, angle).
func (tw *Tower) MakeComplexFromMagAng(r, a float64) (Object, error) {
	return tw.construct(config.MakeFromMagAngOp, ComplexTag, &object.Number{Value: r}, &object.Number{Value: a})
}
