package pulse

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Family -trimprefix=Family

// Family groups platforms by how a vulkan instance must be created on them.
type Family uint8

const (
	// FamilyGeneric platforms ship a conformant vulkan driver.
	FamilyGeneric Family = iota

	// FamilyPortability platforms only offer a portability implementation
	// (e.g. MoltenVK on apple devices) that must be opted into explicitly.
	FamilyPortability
)

// ResolveFamily maps the configured platform mode to a Family. The mode
// "auto" (or an empty string) picks the family of the given GOOS.
func ResolveFamily(mode string, goos string) (Family, error) {
	switch strings.ToLower(mode) {
	case "", "auto":
		return familyOf(goos), nil
	case "generic":
		return FamilyGeneric, nil
	case "portability":
		return FamilyPortability, nil
	default:
		return FamilyGeneric, fmt.Errorf("unknown platform %q", mode)
	}
}

func familyOf(goos string) Family {
	switch goos {
	case "darwin", "ios":
		return FamilyPortability
	default:
		return FamilyGeneric
	}
}
