package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/mensura/dimension"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/options"
)

// Option configures a Builder.
type Option = options.Option[*Builder]

// WithLogger sets the logger used to report definitions and the built catalog.
//
// A nil logger is rejected. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return options.New(func(b *Builder) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidOption)
		}
		b.logger = logger

		return nil
	})
}

// WithRegistry makes the builder define its dimensions in reg instead of a new
// registry. The registry is frozen when the catalog is built.
func WithRegistry(reg *dimension.Registry) Option {
	return options.New(func(b *Builder) error {
		if reg == nil {
			return fmt.Errorf("%w: nil dimension registry", errs.ErrInvalidOption)
		}
		b.dims = reg

		return nil
	})
}
