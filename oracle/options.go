package oracle

type Options struct {
	HashKind HashKind
}

// Option is a generic option type. Implementations type assert to their
// options record and ignore the option if that fails.
type Option func(any)

// WithHashKind selects the verification hash.
func WithHashKind(kind HashKind) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.HashKind = kind
		}
	}
}
