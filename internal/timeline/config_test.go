package timeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigOverridesNamedKeys(t *testing.T) {
	path := writeFile(t, "timeline.yaml", "month_height: 30\nstack_gap: 200\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, config.MonthHeight)
	assert.Equal(t, 200, config.StackGap)
	assert.Equal(t, 96, config.LaneWidth)
	assert.Equal(t, 40, config.MinGap)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.yaml", "month_height: [oops"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "zero.yaml", "lane_width: 0\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "odd.yaml", "lane_width: 95\n"))
	assert.ErrorContains(t, err, "lane_width must be even")
}
