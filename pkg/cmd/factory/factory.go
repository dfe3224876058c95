package factory

import (
	"github.com/your-org/humanise/internal/config"
	"github.com/your-org/humanise/pkg/cmdutil"
	"github.com/your-org/humanise/pkg/iostreams"
)

// New constructs the command factory with system IO streams and the on-disk
// preferences loader.
func New(appVersion string) (*cmdutil.Factory, error) {
	ios := iostreams.System()

	f := &cmdutil.Factory{
		AppVersion:     appVersion,
		ExecutableName: "humanise",
		IOStreams:      ios,
	}

	f.Config = func() (*config.Config, error) {
		return config.Load()
	}

	return f, nil
}
