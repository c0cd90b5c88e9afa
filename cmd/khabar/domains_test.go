package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/gujnews/khabar"
	main "github.com/gujnews/khabar/cmd/khabar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists domain names in registration order", func(t *testing.T) {
		t.Parallel()

		registry := khabar.NewRegistry()
		require.NoError(t, khabar.RegisterBuiltins(registry))

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Registry: registry,
		}

		cmd := &main.DomainsCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "sandesh\ntv9gujarati\ngujaratsamachar\naajtak\n", stdout.String())
	})

	t.Run("details include selectors and wait strategy", func(t *testing.T) {
		t.Parallel()

		registry := khabar.NewRegistry()
		require.NoError(t, khabar.RegisterBuiltins(registry))

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Registry: registry,
		}

		cmd := &main.DomainsCmd{Details: true}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "container:")
		assert.Contains(t, stdout.String(), "domcontentloaded")
	})

	t.Run("empty registry", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Registry: khabar.NewRegistry(),
		}

		cmd := &main.DomainsCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No domains registered")
	})
}
