// Package modes: functional configuration for Compute and Selection.
// Defaults are documented constants; setters only record intent — all
// validation happens inside the entry points so that every failure is an
// error value, never a panic.
package modes

// DefaultSize is the sampling grid side length used when WithSize is absent.
const DefaultSize = 128

// Option mutates internal options. Safe to apply repeatedly; later options
// override earlier ones.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is unexported to prevent external mutation; public entry points accept
// ...Option and resolve them via gatherOptions.
type options struct {
	size     int
	sel      []Ref
	all      bool
	renderer Renderer
}

func defaultOptions() options {
	return options{size: DefaultSize}
}

// gatherOptions applies setters over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithSize sets the sampling grid side length (default DefaultSize).
// Sizes below one are rejected by Compute with mesh.ErrBadSize.
func WithSize(size int) Option {
	return func(o *options) { o.size = size }
}

// WithSelect restricts the output to an explicit set of modes, each given
// by index or name. Every selected mode must not exceed the requested mode;
// duplicates are dropped and the output is always ascending, so the order
// written here never matters. Selecting nothing is an error
// (ErrEmptySelection), as is combining with WithAll (ErrSelectConflict).
func WithSelect(refs ...Ref) Option {
	sel := make([]Ref, len(refs))
	copy(sel, refs)

	return func(o *options) { o.sel = sel }
}

// WithAll requests every mode from 0 up to and including the requested mode.
func WithAll() Option {
	return func(o *options) { o.all = true }
}

// WithRenderer attaches a display collaborator invoked after computation
// completes. Rendering never affects the returned stack.
func WithRenderer(r Renderer) Option {
	return func(o *options) { o.renderer = r }
}
