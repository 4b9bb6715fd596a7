package packages

import (
	"github.com/funvibe/numtower/internal/config"
	"github.com/funvibe/numtower/internal/registry"
)

// Installers maps package names to install functions, in no particular
// order: packages register under distinct tags, so installation order across
// them does not matter.
var Installers = map[string]func(*registry.Table){
	config.SchemeNumberPackage: InstallSchemeNumberPackage,
	config.RationalPackage:     InstallRationalPackage,
	config.RectangularPackage:  InstallRectangularPackage,
	config.PolarPackage:        InstallPolarPackage,
	config.ComplexPackage:      InstallComplexPackage,
}

// InstallAll installs every package shipped with the module. Safe to call
// more than once: re-registration keeps the first implementation.
func InstallAll(t *registry.Table) {
	InstallSchemeNumberPackage(t)
	InstallRationalPackage(t)
	InstallRectangularPackage(t)
	InstallPolarPackage(t)
	InstallComplexPackage(t)
}
