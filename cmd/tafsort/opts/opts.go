package opts

import (
	"github.com/tbxtools/tafsort/pkg/config"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Defaults config.Defaults
}
