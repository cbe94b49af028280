//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=main

package main

import (
	"context"
	"io"
	"net/http"

	"github.com/downcast/downcast/pkg/config"
	"github.com/downcast/downcast/pkg/model"
)

type feedHandler interface {
	ParseFeed(ctx context.Context, cfg *config.Feed) ([]*model.Item, error)
	Acquire(ctx context.Context, item *model.Item) (string, error)
}

type Fetcher interface {
	Open(ctx context.Context, url string, header http.Header) (io.ReadCloser, error)
	ToTemp(ctx context.Context, url string, ext string) (string, error)
	TempPath(ext string) string
}

type Storage interface {
	Exists(ctx context.Context, path string) (bool, error)
	Place(ctx context.Context, tempPath string, path string) error
	Delete(ctx context.Context, path string) error
}

type Tagger interface {
	Tag(audioPath string, coverPath string, item *model.Item) error
}
