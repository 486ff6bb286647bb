package orbit

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// discardLogger is the default for components constructed without a logger.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

// debugCheckDisposed panics with a descriptive message when a disposed element
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("orbit debug: %s on disposed element %q (ID %d)", op, e.Name, e.ID))
	}
}

// debugLogLayout writes one line per element in stacking order.
func debugLogLayout(l *log.Logger, elems []*Element) {
	for i, e := range elems {
		l.Debug("layout",
			"index", i,
			"item", e.Name,
			"target_x", e.Target.X,
			"target_y", e.Target.Y,
			"z", e.ZIndex,
		)
	}
}
