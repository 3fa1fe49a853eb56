package viewstate

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, selection
// rejections, auto-behavior transitions, stale resume timers, region entries
// and teardown are printed to stderr.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugf prints a [viewstate]-prefixed line to stderr in debug mode.
func (c *Controller) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[viewstate] "+format+"\n", args...)
}
