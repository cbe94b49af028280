package handler

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/downcast/downcast/pkg/config"
	"github.com/downcast/downcast/pkg/model"
)

// Handler knows how to read one kind of feed and how to get its audio.
type Handler interface {
	// ParseFeed downloads and parses the feed into items, in feed order
	ParseFeed(ctx context.Context, cfg *config.Feed) ([]*model.Item, error)

	// Acquire downloads the item's audio to a temp file and returns its path
	Acquire(ctx context.Context, item *model.Item) (string, error)
}

// Fetcher is the HTTP side used by handlers.
type Fetcher interface {
	Open(ctx context.Context, url string, header http.Header) (io.ReadCloser, error)
	ToTemp(ctx context.Context, url string, ext string) (string, error)
	TempPath(ext string) string
}

// Resolver turns a page URL into an audio file at outputPath.
type Resolver interface {
	Resolve(ctx context.Context, pageURL string, outputPath string) error
}

// KindOf picks the provider for a feed from its host name.
func KindOf(cfg *config.Feed) (model.Provider, error) {
	parsed, err := parseURL(cfg.URL)
	if err != nil {
		return "", err
	}

	if strings.HasSuffix(parsed.Hostname(), "mixcloud.com") {
		return model.ProviderMixcloud, nil
	}

	return model.ProviderRSS, nil
}

// New creates the handler for the given provider.
func New(provider model.Provider, fetcher Fetcher, resolver Resolver) (Handler, error) {
	switch provider {
	case model.ProviderRSS:
		return NewRSS(fetcher), nil
	case model.ProviderMixcloud:
		if resolver == nil {
			return nil, errors.New("mixcloud feeds require youtube-dl")
		}
		return NewMixcloud(fetcher, resolver), nil
	default:
		return nil, errors.Errorf("unsupported provider %q", provider)
	}
}

func parseURL(link string) (*url.URL, error) {
	if !strings.HasPrefix(link, "http") {
		link = "https://" + link
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse url: %s", link)
	}

	return parsed, nil
}

func missing(field string, where string) error {
	return errors.Wrapf(model.ErrMissingField, "%s: %s", where, field)
}
