package pulse

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// NewError converts a vulkan result into an error. Success maps to nil.
func NewError(retVal vk.Result) error {
	if retVal == vk.Success {
		return nil
	}

	return fmt.Errorf("vulkan error: %w (%d)", vk.Error(retVal), retVal)
}
