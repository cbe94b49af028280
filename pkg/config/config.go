package config

import (
	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/downcast/downcast/pkg/hook"
	"github.com/downcast/downcast/pkg/model"
)

// Feed is a configuration for a single podcast
type Feed struct {
	// Name is used in logs and passed to hooks
	Name string `toml:"name"`
	// URL of the feed. Mixcloud user pages are supported as well as RSS feeds.
	URL string `toml:"url"`
	// Directory to save episodes to
	Directory string `toml:"directory"`
	// OneFolderPerEpisode puts every episode into its own subdirectory.
	// Pointer so an omitted value can default to true.
	OneFolderPerEpisode *bool `toml:"one_folder_per_episode"`
	// OnEpisodePlaced hooks run after an episode is moved to its final location
	OnEpisodePlaced []*hook.ExecHook `toml:"on_episode_placed"`
}

// PerEpisodeFolder reports whether episodes get their own subdirectory.
func (f *Feed) PerEpisodeFolder() bool {
	return f.OneFolderPerEpisode == nil || *f.OneFolderPerEpisode
}

type Downloader struct {
	// Path to youtube-dl (or a compatible fork such as yt-dlp)
	Path string `toml:"path"`
	// Timeout for a single download, 0 waits forever
	Timeout Duration `toml:"timeout"`
	// Args are extra arguments passed before the output and URL
	Args StringSlice `toml:"args"`
}

type Log struct {
	// Filename to write the log to (instead of stdout)
	Filename string `toml:"filename"`
	// MaxSize is the maximum size of the log file in MB
	MaxSize int `toml:"max_size"`
	// MaxBackups is the maximum number of log file backups to keep after rotation
	MaxBackups int `toml:"max_backups"`
	// MaxAge is the maximum number of days to keep the logs for
	MaxAge int `toml:"max_age"`
	// Compress old backups
	Compress bool `toml:"compress"`
}

type Config struct {
	// Schedule is an optional cron expression. When empty the feeds are processed once.
	Schedule string `toml:"schedule"`
	// Downloader (youtube-dl) configuration
	Downloader Downloader `toml:"downloader"`
	// Log is the optional logging configuration
	Log Log `toml:"log"`
	// Podcasts to process, in order
	Podcasts []*Feed `toml:"podcasts"`
}

// LoadConfig loads TOML configuration from a file path
func LoadConfig(path string) (*Config, error) {
	config := Config{}
	_, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config file")
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	var result *multierror.Error

	if len(c.Podcasts) == 0 {
		result = multierror.Append(result, errors.New("at least one podcast must be specified"))
	}

	for idx, feed := range c.Podcasts {
		if feed.Name == "" {
			result = multierror.Append(result, errors.Errorf("name is required for podcast #%d", idx+1))
		}
		if feed.URL == "" {
			result = multierror.Append(result, errors.Errorf("URL is required for %q", feed.Name))
		}
		if feed.Directory == "" {
			result = multierror.Append(result, errors.Errorf("directory is required for %q", feed.Name))
		}
	}

	return result.ErrorOrNil()
}

func (c *Config) applyDefaults() {
	if c.Downloader.Path == "" {
		c.Downloader.Path = model.DefaultResolverPath
	}

	if c.Log.Filename != "" {
		if c.Log.MaxSize == 0 {
			c.Log.MaxSize = model.DefaultLogMaxSize
		}
		if c.Log.MaxAge == 0 {
			c.Log.MaxAge = model.DefaultLogMaxAge
		}
		if c.Log.MaxBackups == 0 {
			c.Log.MaxBackups = model.DefaultLogMaxBackups
		}
	}

	for _, feed := range c.Podcasts {
		for _, h := range feed.OnEpisodePlaced {
			if h != nil && h.Timeout == 0 {
				h.Timeout = model.DefaultHookTimeout
			}
		}
	}
}
