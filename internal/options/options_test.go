package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	workers int
	name    string
	calls   []string
}

func withWorkers(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n <= 0 {
			return errors.New("workers must be positive")
		}
		c.workers = n
		c.calls = append(c.calls, "workers")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withWorkers(4), withName("b"))

		require.NoError(t, err)
		require.Equal(t, 4, cfg.workers)
		require.Equal(t, "b", cfg.name)
		require.Equal(t, []string{"name", "workers", "name"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWorkers(-1), withName("never"))

		require.Error(t, err)
		require.Contains(t, err.Error(), "workers must be positive")
		require.Empty(t, cfg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, nil, withName("x"))

		require.NoError(t, err)
		require.Equal(t, "x", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
	})
}
