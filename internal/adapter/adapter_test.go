package adapter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/niksmo/saree-landing/internal/adapter"
	"github.com/stretchr/testify/require"
)

func TestMakeTLSConfig(t *testing.T) {
	t.Run("MissingCA", func(t *testing.T) {
		_, err := adapter.MakeTLSConfig(filepath.Join(t.TempDir(), "ca.pem"), "", "")
		require.Error(t, err)
	})

	t.Run("InvalidCA", func(t *testing.T) {
		ca := filepath.Join(t.TempDir(), "ca.pem")
		require.NoError(t, os.WriteFile(ca, []byte("not a certificate"), 0o600))

		_, err := adapter.MakeTLSConfig(ca, "", "")
		require.Error(t, err)
	})
}
