package styled

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forceColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })
}

func TestColorsDisabledOffTerminal(t *testing.T) {
	forceColor(t)

	t.Run("Buffer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ErrorColor(buf).Fprint(buf, "Error:")
		DimmedColor(buf).Fprint(buf, " done")
		assert.Equal(t, "Error: done", buf.String())
	})

	t.Run("RegularFile", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "err.log"))
		require.NoError(t, err)
		defer f.Close()

		assert.False(t, IsTerminal(f))
		ErrorColor(f).Fprint(f, "Error:")

		content, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Equal(t, "Error:", string(content))
	})
}
