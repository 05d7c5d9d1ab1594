package nets

import (
	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/dscope"
)

// Module provides the proxy-aware HTTP client. Proxy settings come from the
// chrono config files.
type Module struct {
	dscope.Module
	Configs chronoconfigs.Module
}
