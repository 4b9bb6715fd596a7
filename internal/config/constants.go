package config

// Generic operation names shared by the packages, the dispatcher and the
// public entry points. Implementations are registered and looked up under
// these names together with an ordered tag signature.
const (
	AddOp = "add"
	SubOp = "sub"
	MulOp = "mul"
	DivOp = "div"

	RealPartOp  = "real-part"
	ImagPartOp  = "imag-part"
	MagnitudeOp = "magnitude"
	AngleOp     = "angle"

	MakeOp             = "make"
	MakeFromRealImagOp = "make-from-real-imag"
	MakeFromMagAngOp   = "make-from-mag-ang"
)

// Installable package names, as accepted by the driver config.
const (
	SchemeNumberPackage = "scheme-number"
	RationalPackage     = "rational"
	RectangularPackage  = "rectangular"
	PolarPackage        = "polar"
	ComplexPackage      = "complex"
)
