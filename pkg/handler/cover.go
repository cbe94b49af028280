package handler

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

var ErrCoverNotFound = errors.New("cover not found")

const (
	coverMeta = `head meta[itemprop="image"], head meta[itemprop="thumbnailUrl"], head meta[property="og:image"]`
	coverLink = `head link[rel="apple-touch-icon"]`
)

// FindCover scrapes the episode page for an image to use when the feed has none.
// Absolute meta images win over the touch icon, which may be relative to the page.
func FindCover(ctx context.Context, fetcher Fetcher, pageURL string) (string, error) {
	body, err := fetcher.Open(ctx, pageURL, nil)
	if err != nil {
		return "", err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s", pageURL)
	}

	var cover string
	doc.Find(coverMeta).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		cover = s.AttrOr("content", "")
		return !strings.HasPrefix(cover, "http")
	})

	if strings.HasPrefix(cover, "http") {
		return cover, nil
	}

	if href := doc.Find(coverLink).First().AttrOr("href", ""); href != "" {
		return absolute(pageURL, href), nil
	}

	return "", ErrCoverNotFound
}

func absolute(base string, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	return baseURL.ResolveReference(refURL).String()
}
