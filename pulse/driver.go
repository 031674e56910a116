package pulse

import (
	"errors"
	"fmt"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// driver is the slice of the vulkan api needed to bootstrap an instance.
type driver interface {
	Load(getInstanceProcAddr unsafe.Pointer) error
	CreateInstance(info *vk.InstanceCreateInfo) (vk.Instance, error)
	DestroyInstance(instance vk.Instance)
}

type vulkanDriver struct{}

func (vulkanDriver) Load(getInstanceProcAddr unsafe.Pointer) error {
	if getInstanceProcAddr == nil {
		return errors.New("vkGetInstanceProcAddr not available")
	}

	vk.SetGetInstanceProcAddr(getInstanceProcAddr)

	if err := vk.Init(); err != nil {
		return fmt.Errorf("initialize vulkan: %w", err)
	}

	return nil
}

func (vulkanDriver) CreateInstance(info *vk.InstanceCreateInfo) (vk.Instance, error) {
	var instance vk.Instance

	if err := NewError(vk.CreateInstance(info, nil, &instance)); err != nil {
		return nil, err
	}

	// loads the instance level function pointers
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, fmt.Errorf("initialize instance: %w", err)
	}

	return instance, nil
}

func (vulkanDriver) DestroyInstance(instance vk.Instance) {
	vk.DestroyInstance(instance, nil)
}

// safeStrings terminates every string with a NUL byte, as expected by the
// vulkan bindings for string arrays.
func safeStrings(values []string) []string {
	result := make([]string, len(values))
	for idx, value := range values {
		result[idx] = safeString(value)
	}

	return result
}

func safeString(value string) string {
	return value + "\x00"
}
