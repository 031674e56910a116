package pulse

import (
	"errors"
	"fmt"
	"slices"

	vk "github.com/vulkan-go/vulkan"
)

const (
	ValidationLayer = "VK_LAYER_KHRONOS_validation"

	PortabilityEnumerationExtension    = "VK_KHR_portability_enumeration"
	PhysicalDeviceProperties2Extension = "VK_KHR_get_physical_device_properties2"

	// InstanceCreateEnumeratePortability is VK_INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR
	InstanceCreateEnumeratePortability vk.InstanceCreateFlags = 0x00000001
)

// ValidationLayers returns the layers to enable on the instance.
func ValidationLayers(enabled bool) []string {
	if !enabled {
		return nil
	}

	return []string{ValidationLayer}
}

// RequiredExtensions computes the instance extensions for the given display.
// The result only depends on the family and what the display reports.
func RequiredExtensions(family Family, display Display) ([]string, error) {
	platform, err := display.RequiredInstanceExtensions()
	if err != nil {
		return nil, fmt.Errorf("query platform extensions: %w", err)
	}

	if len(platform) == 0 {
		return nil, errors.New("query platform extensions: display reported none")
	}

	extensions := slices.Clone(platform)

	if family == FamilyPortability {
		extensions = appendUnique(extensions,
			PortabilityEnumerationExtension,
			PhysicalDeviceProperties2Extension,
		)
	}

	return extensions, nil
}

// CreationFlags returns the instance creation flags for the given family.
func CreationFlags(family Family) vk.InstanceCreateFlags {
	if family == FamilyPortability {
		return InstanceCreateEnumeratePortability
	}

	return 0
}

func appendUnique(values []string, extra ...string) []string {
	for _, value := range extra {
		if !slices.Contains(values, value) {
			values = append(values, value)
		}
	}

	return values
}
