package cmdutil

import (
	"sync"

	"github.com/your-org/humanise/internal/config"
	"github.com/your-org/humanise/pkg/iostreams"
)

// Factory wires together the shared services used by Cobra commands: IO
// streams and the persisted preferences. Commands receive one factory and
// pull what they need, which keeps them trivial to exercise in tests.
type Factory struct {
	AppVersion     string
	ExecutableName string

	IOStreams *iostreams.IOStreams

	Config func() (*config.Config, error)

	cfgOnce sync.Once
	cfg     *config.Config
	cfgErr  error
	ioOnce  sync.Once
	ios     *iostreams.IOStreams
}

// ResolveConfig eagerly loads the preferences file, caching the result.
func (f *Factory) ResolveConfig() (*config.Config, error) {
	f.cfgOnce.Do(func() {
		if f.Config == nil {
			f.cfg, f.cfgErr = config.Load()
			return
		}
		f.cfg, f.cfgErr = f.Config()
	})
	return f.cfg, f.cfgErr
}

// Streams returns the IO streams, initialising them lazily.
func (f *Factory) Streams() (*iostreams.IOStreams, error) {
	f.ioOnce.Do(func() {
		if f.IOStreams != nil {
			f.ios = f.IOStreams
			return
		}
		f.ios = iostreams.System()
	})
	return f.ios, nil
}
