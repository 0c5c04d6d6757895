package batch

import (
	"fmt"
	"runtime"

	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/options"
)

// DefaultChunkSize is the number of elements a worker converts per task.
const DefaultChunkSize = 4096

type config struct {
	workers   int
	chunkSize int
}

func defaultConfig() *config {
	return &config{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
	}
}

// Option configures a batch conversion.
type Option = options.Option[*config]

// WithWorkers limits the number of concurrently running workers.
//
// n must be positive. The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: workers must be positive, got %d", errs.ErrInvalidOption, n)
		}
		c.workers = n

		return nil
	})
}

// WithChunkSize sets the number of elements each worker task converts. Inputs
// no longer than one chunk are converted on the calling goroutine.
//
// n must be positive. The default is DefaultChunkSize.
func WithChunkSize(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: chunk size must be positive, got %d", errs.ErrInvalidOption, n)
		}
		c.chunkSize = n

		return nil
	})
}
