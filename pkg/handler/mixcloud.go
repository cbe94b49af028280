package handler

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/downcast/downcast/pkg/config"
	"github.com/downcast/downcast/pkg/model"
)

const (
	mixcloudAPIHost  = "api.mixcloud.com"
	mixcloudPageSize = "100"
)

// Mixcloud reads a user's uploads from the Mixcloud API and downloads them with youtube-dl.
type Mixcloud struct {
	fetcher  Fetcher
	resolver Resolver
}

var _ Handler = (*Mixcloud)(nil)

func NewMixcloud(fetcher Fetcher, resolver Resolver) *Mixcloud {
	return &Mixcloud{fetcher: fetcher, resolver: resolver}
}

type mixcloudFeed struct {
	Data []mixcloudItem `json:"data"`
}

type mixcloudItem struct {
	CreatedTime time.Time        `json:"created_time"`
	Name        string           `json:"name"`
	Pictures    mixcloudPictures `json:"pictures"`
	URL         string           `json:"url"`
	User        mixcloudUser     `json:"user"`
}

type mixcloudUser struct {
	Name string `json:"name"`
}

type mixcloudPictures struct {
	ExtraLarge  string `json:"extra_large"`
	ExtraLarge2 string `json:"1024wx1024h"`
}

// Best returns the largest picture available, or an empty string.
func (p mixcloudPictures) Best() string {
	if p.ExtraLarge2 != "" {
		return p.ExtraLarge2
	}
	return p.ExtraLarge
}

// APIURL maps a mixcloud.com page to its cloudcasts listing on the API host.
func APIURL(link string) (string, error) {
	parsed, err := parseURL(link)
	if err != nil {
		return "", err
	}

	parsed.Host = mixcloudAPIHost
	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/cloudcasts/"
	parsed.RawPath = ""
	parsed.RawQuery = "limit=" + mixcloudPageSize
	parsed.Fragment = ""

	return parsed.String(), nil
}

func (m *Mixcloud) ParseFeed(ctx context.Context, cfg *config.Feed) ([]*model.Item, error) {
	apiURL, err := APIURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	body, err := m.fetcher.Open(ctx, apiURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query mixcloud API")
	}
	defer body.Close()

	var feed mixcloudFeed
	if err := json.NewDecoder(body).Decode(&feed); err != nil {
		return nil, errors.Wrapf(err, "failed to decode response from %s", apiURL)
	}

	items := make([]*model.Item, 0, len(feed.Data))
	for idx, raw := range feed.Data {
		if raw.Name == "" {
			return nil, missing("name", apiURL)
		}
		if raw.URL == "" {
			return nil, errors.Wrapf(missing("url", raw.Name), "item #%d", idx+1)
		}

		items = append(items, &model.Item{
			Title:     raw.Name,
			Artist:    raw.User.Name,
			PubDate:   raw.CreatedTime,
			PageURL:   raw.URL,
			CoverURL:  raw.Pictures.Best(),
			AudioURL:  raw.URL,
			Extension: model.ExtensionM4A,
		})
	}

	log.Debugf("received %d cloudcast(s) from %s", len(items), apiURL)
	return items, nil
}

func (m *Mixcloud) Acquire(ctx context.Context, item *model.Item) (string, error) {
	output := m.fetcher.TempPath(item.Extension)

	if err := m.resolver.Resolve(ctx, item.AudioURL, output); err != nil {
		os.Remove(output)
		return "", err
	}

	return output, nil
}
