package discover

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option configures a Walker. Options validate eagerly: passing a nil
// collaborator is a programmer error and panics.
type Option func(*options)

type options struct {
	fs     afero.Fs
	lister Lister
	log    *zap.Logger
}

// defaultOptions: native OS filesystem, no virtual driver, no-op
// logging.
func defaultOptions() options {
	return options{
		fs:  afero.NewOsFs(),
		log: zap.NewNop(),
	}
}

// WithFs sets the filesystem used for local roots; tests typically
// pass afero.NewMemMapFs().
func WithFs(fs afero.Fs) Option {
	if fs == nil {
		panic("discover: WithFs(nil)")
	}
	return func(o *options) { o.fs = fs }
}

// WithLister sets the virtual-filesystem driver used for virtual
// roots.
func WithLister(l Lister) Option {
	if l == nil {
		panic("discover: WithLister(nil)")
	}
	return func(o *options) { o.lister = l }
}

// WithLogger sets the logger; traversal progress is logged at Debug.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("discover: WithLogger(nil)")
	}
	return func(o *options) { o.log = log }
}
