package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/downcast/downcast/pkg/config"
	"github.com/downcast/downcast/pkg/fetch"
	"github.com/downcast/downcast/pkg/fs"
	"github.com/downcast/downcast/pkg/handler"
	"github.com/downcast/downcast/pkg/model"
	"github.com/downcast/downcast/pkg/tagger"
	"github.com/downcast/downcast/pkg/ytdl"
)

type Opts struct {
	ConfigPath string `long:"config" short:"c" default:"config.toml" env:"DOWNCAST_CONFIG_PATH"`
	DryRun     bool   `long:"dry-run" description:"Only report episodes that would be downloaded"`
	Debug      bool   `long:"debug"`
	NoBanner   bool   `long:"no-banner"`
}

const banner = `
     _                                 _
  __| | _____      ___ __   ___ __ _ ___| |_
 / _' |/ _ \ \ /\ / / '_ \ / __/ _' / __| __|
| (_| | (_) \ V  V /| | | | (_| (_| \__ \ |_
 \__,_|\___/ \_/\_/ |_| |_|\___\__,_|___/\__|
`

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})

	// Parse args
	opts := Opts{}
	_, err := flags.Parse(&opts)
	if err != nil {
		log.WithError(err).Fatal("failed to parse command line arguments")
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	// Load TOML file
	log.Debugf("loading configuration %q", opts.ConfigPath)
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration file")
	}

	if cfg.Log.Filename != "" {
		log.Infof("writing logs to %s", cfg.Log.Filename)
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.Log.Filename,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		})
	}

	if !opts.NoBanner {
		log.Info(banner)
	}

	log.WithFields(log.Fields{
		"version": version,
		"commit":  commit,
		"date":    date,
		"dry_run": opts.DryRun,
	}).Info("running downcast")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver, err := makeResolver(ctx, cfg, opts.DryRun)
	if err != nil {
		log.WithError(err).Fatal("youtube-dl error")
	}

	log.Debug("creating updater")
	updater, err := NewUpdater(cfg, fetch.New(&http.Client{}), resolver, fs.NewLocal(), tagger.New(), opts.DryRun)
	if err != nil {
		log.WithError(err).Fatal("failed to create updater")
	}

	if cfg.Schedule == "" {
		if err := updater.Run(ctx); err != nil {
			log.WithError(err).Fatal("update failed")
		}
		log.Info("done")
		return
	}

	group, ctx := errgroup.WithContext(ctx)

	cronLogger := cron.PrintfLogger(log.StandardLogger())
	c := cron.New(cron.WithLogger(cronLogger))

	// Scheduled and initial runs share the chain, so they never overlap
	job := cron.NewChain(cron.SkipIfStillRunning(cronLogger)).Then(cron.FuncJob(func() {
		if err := updater.Run(ctx); err != nil {
			log.WithError(err).Error("update failed, will retry on next run")
		}
	}))

	if _, err := c.AddJob(cfg.Schedule, job); err != nil {
		log.WithError(err).Fatalf("can't create cron task for schedule %q", cfg.Schedule)
	}

	group.Go(func() error {
		defer func() {
			log.Info("shutting down cron")
			<-c.Stop().Done()
		}()

		c.Start()
		log.Infof("scheduled updates: %s", cfg.Schedule)

		// Perform initial update after start
		job.Run()

		<-ctx.Done()
		return ctx.Err()
	})

	group.Go(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			cancel()
			return nil
		}
	})

	if err := group.Wait(); err != nil && err != context.Canceled {
		log.WithError(err).Error("wait error")
	}

	log.Info("gracefully stopped")
}

// needsResolver reports whether any configured feed is served by mixcloud.
// makeResolver returns nil when no feed requires youtube-dl.
// Dry runs never download, so the binary isn't looked up.
func makeResolver(ctx context.Context, cfg *config.Config, dryRun bool) (handler.Resolver, error) {
	need, err := needsResolver(cfg)
	if err != nil || !need {
		return nil, err
	}

	if dryRun {
		log.Info("dry run, skipping youtube-dl check")
		return dryRunResolver{}, nil
	}

	downloader, err := ytdl.New(ctx, cfg.Downloader)
	if err != nil {
		return nil, err
	}

	return downloader, nil
}

type dryRunResolver struct{}

func (dryRunResolver) Resolve(context.Context, string, string) error {
	return errors.Wrap(model.ErrResolverFailed, "youtube-dl is not used in dry run mode")
}

func needsResolver(cfg *config.Config) (bool, error) {
	for _, feed := range cfg.Podcasts {
		kind, err := handler.KindOf(feed)
		if err != nil {
			return false, err
		}

		if kind == model.ProviderMixcloud {
			return true, nil
		}
	}

	return false, nil
}
