package main

import (
	"context"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/downcast/downcast/pkg/config"
	"github.com/downcast/downcast/pkg/fs"
	"github.com/downcast/downcast/pkg/handler"
	"github.com/downcast/downcast/pkg/hook"
	"github.com/downcast/downcast/pkg/model"
)

type itemState int

const (
	statePlaced itemState = iota
	stateSkipped
	stateReported
)

// summary counts what happened to the items of a single feed
type summary struct {
	placed   int
	skipped  int
	reported int
}

func (s *summary) add(state itemState) {
	switch state {
	case statePlaced:
		s.placed++
	case stateSkipped:
		s.skipped++
	case stateReported:
		s.reported++
	}
}

type Updater struct {
	config     *config.Config
	fetcher    Fetcher
	resolver   handler.Resolver
	storage    Storage
	tagger     Tagger
	dryRun     bool
	handlerFor func(feed *config.Feed) (feedHandler, error)
}

// NewUpdater creates an updater. resolver may be nil when no configured feed needs one.
func NewUpdater(
	config *config.Config,
	fetcher Fetcher,
	resolver handler.Resolver,
	storage Storage,
	tagger Tagger,
	dryRun bool,
) (*Updater, error) {
	u := &Updater{
		config:   config,
		fetcher:  fetcher,
		resolver: resolver,
		storage:  storage,
		tagger:   tagger,
		dryRun:   dryRun,
	}

	u.handlerFor = u.makeHandler
	return u, nil
}

// Run processes all configured feeds in order and stops at the first failure.
func (u *Updater) Run(ctx context.Context) error {
	for _, feed := range u.config.Podcasts {
		if err := u.Update(ctx, feed); err != nil {
			return errors.Wrapf(err, "failed to update %q", feed.Name)
		}
	}

	return nil
}

func (u *Updater) Update(ctx context.Context, feed *config.Feed) error {
	log.WithFields(log.Fields{
		"url":       feed.URL,
		"directory": feed.Directory,
	}).Infof("-> updating %s", feed.Name)
	started := time.Now()

	h, err := u.handlerFor(feed)
	if err != nil {
		return err
	}

	log.Debug("parsing feed")
	items, err := h.ParseFeed(ctx, feed)
	if err != nil {
		return err
	}

	log.Debugf("received %d item(s) for %q", len(items), feed.Name)

	var stats summary
	for idx, item := range items {
		state, err := u.processItem(ctx, feed, h, idx, item)
		if err != nil {
			return errors.Wrapf(err, "failed to process %q", item.Title)
		}

		stats.add(state)
	}

	log.Infof(
		"successfully updated feed in %s, placed: %d, skipped: %d, reported: %d",
		time.Since(started),
		stats.placed,
		stats.skipped,
		stats.reported,
	)
	return nil
}

func (u *Updater) processItem(
	ctx context.Context,
	feed *config.Feed,
	h feedHandler,
	idx int,
	item *model.Item,
) (itemState, error) {
	episodePath := fs.EpisodePath(feed.Directory, item.FileName(), item.Extension, feed.PerEpisodeFolder())

	logger := log.WithFields(log.Fields{
		"feed":   feed.Name,
		"index":  idx,
		"title":  item.Title,
		"artist": item.Artist,
		"path":   episodePath,
	})

	exists, err := u.storage.Exists(ctx, episodePath)
	if err != nil {
		return 0, err
	}

	if exists {
		logger.Debug("skipping episode, already exists")
		return stateSkipped, nil
	}

	if u.dryRun {
		logger.Infof("! would download %s", item.Title)
		return stateReported, nil
	}

	logger.Infof("! downloading %s", item.Title)
	audioPath, coverPath, err := u.acquire(ctx, h, item)
	if err != nil {
		return 0, err
	}

	// Temp files stay around if tagging fails
	if err := u.tagger.Tag(audioPath, coverPath, item); err != nil {
		return 0, err
	}

	if coverPath != "" {
		u.remove(ctx, coverPath)
	}

	if err := u.storage.Place(ctx, audioPath, episodePath); err != nil {
		return 0, err
	}

	logger.Info("episode placed")

	env := hook.Env(feed.Name, item.CleanTitle(), episodePath)
	for i, episodeHook := range feed.OnEpisodePlaced {
		if err := episodeHook.Invoke(ctx, env); err != nil {
			logger.WithError(err).Errorf("failed to execute hook %d", i+1)
		}
	}

	return statePlaced, nil
}

// acquire downloads the audio and the cover art concurrently.
// When either fails, the file produced by the other one is removed.
func (u *Updater) acquire(ctx context.Context, h feedHandler, item *model.Item) (string, string, error) {
	var audioPath, coverPath string

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		audioPath, err = h.Acquire(groupCtx, item)
		return err
	})

	group.Go(func() error {
		var err error
		coverPath, err = u.fetchCover(groupCtx, item)
		return err
	})

	if err := group.Wait(); err != nil {
		if audioPath != "" {
			u.remove(ctx, audioPath)
		}
		if coverPath != "" {
			u.remove(ctx, coverPath)
		}
		return "", "", err
	}

	return audioPath, coverPath, nil
}

// fetchCover downloads the item's cover to a temp file.
// An empty path means no cover could be found and the episode is tagged without one.
func (u *Updater) fetchCover(ctx context.Context, item *model.Item) (string, error) {
	coverURL := item.CoverURL

	if coverURL == "" {
		found, err := handler.FindCover(ctx, u.fetcher, item.PageURL)
		if err != nil {
			log.WithError(err).Warnf("no cover for %q", item.Title)
			return "", nil
		}

		coverURL = found
	}

	coverPath, err := u.fetcher.ToTemp(ctx, coverURL, coverExtension(coverURL))
	if err != nil {
		return "", errors.Wrap(err, "failed to download cover")
	}

	return coverPath, nil
}

func (u *Updater) remove(ctx context.Context, tempPath string) {
	if err := u.storage.Delete(ctx, tempPath); err != nil {
		log.WithError(err).Warnf("failed to remove temp file %s", tempPath)
	}
}

func (u *Updater) makeHandler(feed *config.Feed) (feedHandler, error) {
	kind, err := handler.KindOf(feed)
	if err != nil {
		return nil, err
	}

	return handler.New(kind, u.fetcher, u.resolver)
}

// coverExtension returns the extension of the URL path without the dot.
// Empty when there is none, so the type gets sniffed after download.
func coverExtension(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}

	return strings.TrimPrefix(path.Ext(parsed.Path), ".")
}
