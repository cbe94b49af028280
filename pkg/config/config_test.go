package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/downcast/downcast/pkg/model"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	const file = `
schedule = "@every 6h"

[downloader]
path = "/usr/local/bin/yt-dlp"
timeout = "15m"
args = ["--quiet", "--no-progress"]

[log]
filename = "downcast.log"
max_size = 10

[[podcasts]]
name = "Night Shift"
url = "https://example.com/feed.xml"
directory = "/music/night-shift"
one_folder_per_episode = false

  [[podcasts.on_episode_placed]]
  command = ["echo $EPISODE_FILE"]

[[podcasts]]
name = "Mixes"
url = "https://www.mixcloud.com/someone/"
directory = "/music/mixes"
`

	config, err := LoadConfig(writeConfig(t, file))
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "@every 6h", config.Schedule)
	assert.Equal(t, "/usr/local/bin/yt-dlp", config.Downloader.Path)
	assert.EqualValues(t, Duration{15 * time.Minute}, config.Downloader.Timeout)
	assert.EqualValues(t, StringSlice{"--quiet", "--no-progress"}, config.Downloader.Args)

	assert.Equal(t, "downcast.log", config.Log.Filename)
	assert.Equal(t, 10, config.Log.MaxSize)
	assert.Equal(t, model.DefaultLogMaxAge, config.Log.MaxAge)
	assert.Equal(t, model.DefaultLogMaxBackups, config.Log.MaxBackups)

	require.Len(t, config.Podcasts, 2)

	first := config.Podcasts[0]
	assert.Equal(t, "Night Shift", first.Name)
	assert.Equal(t, "https://example.com/feed.xml", first.URL)
	assert.Equal(t, "/music/night-shift", first.Directory)
	assert.False(t, first.PerEpisodeFolder())
	require.Len(t, first.OnEpisodePlaced, 1)
	assert.Equal(t, []string{"echo $EPISODE_FILE"}, first.OnEpisodePlaced[0].Command)
	assert.Equal(t, model.DefaultHookTimeout, first.OnEpisodePlaced[0].Timeout)

	second := config.Podcasts[1]
	assert.Equal(t, "Mixes", second.Name)
	assert.True(t, second.PerEpisodeFolder())
}

func TestApplyDefaults(t *testing.T) {
	const file = `
[[podcasts]]
name = "A"
url = "https://example.com/rss"
directory = "/data"
`

	config, err := LoadConfig(writeConfig(t, file))
	require.NoError(t, err)

	assert.Empty(t, config.Schedule)
	assert.Equal(t, model.DefaultResolverPath, config.Downloader.Path)
	assert.Zero(t, config.Downloader.Timeout.Duration)

	// Rotation defaults only apply when logging to a file
	assert.Zero(t, config.Log.MaxSize)

	require.Len(t, config.Podcasts, 1)
	assert.True(t, config.Podcasts[0].PerEpisodeFolder())
}

func TestValidate(t *testing.T) {
	t.Run("no podcasts", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `schedule = ""`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one podcast must be specified")
	})

	t.Run("all errors reported", func(t *testing.T) {
		const file = `
[[podcasts]]
name = "Broken"

[[podcasts]]
url = "https://example.com/rss"
directory = "/data"
`
		_, err := LoadConfig(writeConfig(t, file))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `URL is required for "Broken"`)
		assert.Contains(t, err.Error(), `directory is required for "Broken"`)
		assert.Contains(t, err.Error(), "name is required for podcast #2")
	})
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
