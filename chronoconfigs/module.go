package chronoconfigs

import (
	"github.com/reusee/chrono/configs"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
