package pulse

import (
	"fmt"
	"log/slog"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// Display is what the instance bootstrap needs from the windowing system.
type Display interface {
	// RequiredInstanceExtensions lists the platform surface extensions.
	RequiredInstanceExtensions() ([]string, error)

	// InstanceProcAddr returns the loader entry point vkGetInstanceProcAddr.
	InstanceProcAddr() unsafe.Pointer
}

type InstanceOptions struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32

	// vulkan api version the application targets, see vk.MakeVersion
	APIVersion uint32

	// enable the khronos validation layer
	Validation bool

	Family Family
}

// DefaultInstanceOptions returns the options of the triangle application:
// validation enabled, targeting vulkan 1.0.0 on a generic platform.
func DefaultInstanceOptions() InstanceOptions {
	return InstanceOptions{
		ApplicationName: "VulkanTriangle",
		EngineName:      "No Engine",
		APIVersion:      vk.MakeVersion(1, 0, 0),
		Validation:      true,
	}
}

// Instance wraps the vulkan instance handle together with the
// parameters it was created with.
type Instance struct {
	Handle vk.Instance

	Family     Family
	Layers     []string
	Extensions []string
	Flags      vk.InstanceCreateFlags

	driver driver
}

// CreateInstance loads vulkan and creates an instance that can present to the given display.
func CreateInstance(display Display, opts InstanceOptions) (*Instance, error) {
	return createInstance(vulkanDriver{}, display, opts)
}

func createInstance(drv driver, display Display, opts InstanceOptions) (*Instance, error) {
	if opts.APIVersion == 0 {
		opts.APIVersion = vk.MakeVersion(1, 0, 0)
	}

	if err := drv.Load(display.InstanceProcAddr()); err != nil {
		return nil, fmt.Errorf("load vulkan: %w", err)
	}

	appInfo := applicationInfo(opts)

	layers := ValidationLayers(opts.Validation)

	extensions, err := RequiredExtensions(opts.Family, display)
	if err != nil {
		return nil, err
	}

	flags := CreationFlags(opts.Family)

	slog.Debug(
		"Create vulkan instance",
		slog.String("application", opts.ApplicationName),
		slog.String("apiVersion", versionString(opts.APIVersion)),
		slog.String("family", opts.Family.String()),
		slog.Any("layers", layers),
		slog.Any("extensions", extensions),
	)

	handle, err := drv.CreateInstance(instanceCreateInfo(appInfo, layers, extensions, flags))
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	instance := &Instance{
		Handle:     handle,
		Family:     opts.Family,
		Layers:     layers,
		Extensions: extensions,
		Flags:      flags,
		driver:     drv,
	}

	return instance, nil
}

func (inst *Instance) Release() {
	if inst.Handle != nil {
		inst.driver.DestroyInstance(inst.Handle)
		inst.Handle = nil
	}
}

func applicationInfo(opts InstanceOptions) *vk.ApplicationInfo {
	return &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(opts.ApplicationName),
		ApplicationVersion: opts.ApplicationVersion,
		PEngineName:        safeString(opts.EngineName),
		EngineVersion:      opts.EngineVersion,
		ApiVersion:         opts.APIVersion,
	}
}

func instanceCreateInfo(appInfo *vk.ApplicationInfo, layers, extensions []string, flags vk.InstanceCreateFlags) *vk.InstanceCreateInfo {
	return &vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		Flags:                   flags,
		PApplicationInfo:        appInfo,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     safeStrings(layers),
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
	}
}

func versionString(version uint32) string {
	return fmt.Sprintf("%d.%d.%d", version>>22, (version>>12)&0x3ff, version&0xfff)
}
