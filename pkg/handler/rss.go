package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mmcdole/gofeed"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/downcast/downcast/pkg/config"
	"github.com/downcast/downcast/pkg/model"
)

const mp3MimeType = "audio/mpeg"

// RSS handles regular podcast feeds with iTunes extensions.
type RSS struct {
	fetcher Fetcher
}

var _ Handler = (*RSS)(nil)

func NewRSS(fetcher Fetcher) *RSS {
	return &RSS{fetcher: fetcher}
}

func (r *RSS) ParseFeed(ctx context.Context, cfg *config.Feed) ([]*model.Item, error) {
	body, err := r.fetcher.Open(ctx, cfg.URL, http.Header{"Accept": []string{model.FeedAccept}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to download feed")
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse feed %s", cfg.URL)
	}

	if len(feed.Items) == 0 {
		return nil, nil
	}

	// NOTE: the enclosure is looked up across the whole document, not per item,
	// so every item gets the first MP3 of the feed.
	audioURL := firstEnclosure(feed, mp3MimeType)
	if audioURL == "" {
		return nil, missing("enclosure of type "+mp3MimeType, cfg.URL)
	}

	items := make([]*model.Item, 0, len(feed.Items))
	for idx, raw := range feed.Items {
		item, err := r.toItem(raw, audioURL)
		if err != nil {
			return nil, errors.Wrapf(err, "item #%d", idx+1)
		}

		items = append(items, item)
	}

	log.Debugf("parsed %d item(s) from %s", len(items), cfg.URL)
	return items, nil
}

func (r *RSS) toItem(raw *gofeed.Item, audioURL string) (*model.Item, error) {
	where := fmt.Sprintf("%q", raw.Title)

	if raw.Title == "" {
		return nil, missing("title", where)
	}

	if raw.ITunesExt == nil || raw.ITunesExt.Author == "" {
		return nil, missing("itunes:author", where)
	}

	if raw.PublishedParsed == nil {
		return nil, missing("pubDate", where)
	}

	if raw.Link == "" {
		return nil, missing("link", where)
	}

	if _, err := url.Parse(raw.Link); err != nil {
		return nil, errors.Wrapf(err, "%s: invalid link", where)
	}

	item := &model.Item{
		Title:       raw.Title,
		Description: raw.Description,
		Artist:      raw.ITunesExt.Author,
		PubDate:     *raw.PublishedParsed,
		PageURL:     raw.Link,
		CoverURL:    raw.ITunesExt.Image,
		AudioURL:    audioURL,
		Extension:   model.ExtensionMP3,
	}

	return item, nil
}

func (r *RSS) Acquire(ctx context.Context, item *model.Item) (string, error) {
	return r.fetcher.ToTemp(ctx, item.AudioURL, item.Extension)
}

func firstEnclosure(feed *gofeed.Feed, mimeType string) string {
	for _, item := range feed.Items {
		for _, enclosure := range item.Enclosures {
			if enclosure != nil && enclosure.Type == mimeType && enclosure.URL != "" {
				return enclosure.URL
			}
		}
	}
	return ""
}
