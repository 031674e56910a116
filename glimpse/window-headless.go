//go:build headless

package glimpse

import "fmt"

// NewWindow is not available in headless builds. Event sources other than
// a real window, like SyntheticSource, still work.
func NewWindow(opts WindowOptions) (Window, error) {
	opts = opts.withDefaults()
	return nil, fmt.Errorf("create window %q: built without window support", opts.Title)
}
