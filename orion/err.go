package orion

import (
	"fmt"
	"log/slog"
)

// Fatal aborts the process if err is not nil. Failures while setting up the
// window or the vulkan instance are never recovered from.
func Fatal(err error, step string, args ...any) {
	if err == nil {
		return
	}

	desc := fmt.Sprintf(step, args...)

	slog.Error("Bootstrap failed",
		slog.String("step", desc),
		slog.String("error", err.Error()),
	)

	panic(desc + ": " + err.Error())
}
