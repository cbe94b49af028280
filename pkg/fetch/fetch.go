package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/downcast/downcast/pkg/model"
)

// Client performs GET requests with the tool's User-Agent and saves responses to temp files.
type Client struct {
	http    *http.Client
	tempDir string
}

func New(client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{http: client, tempDir: os.TempDir()}
}

// WithTempDir returns a copy of the client writing temp files to dir.
func (c *Client) WithTempDir(dir string) *Client {
	cp := *c
	cp.tempDir = dir
	return &cp
}

// Open issues a GET request and returns the response body.
// Any non-2xx status is reported as model.ErrUnexpectedStatus.
func (c *Client) Open(ctx context.Context, url string, header http.Header) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", url)
	}

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("User-Agent", model.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s", url)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.Wrapf(model.ErrUnexpectedStatus, "%s returned %d", url, resp.StatusCode)
	}

	return resp.Body, nil
}

// TempPath returns a new unique path in the temp directory with the given extension.
func (c *Client) TempPath(ext string) string {
	name := uuid.New().String()
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}
	return filepath.Join(c.tempDir, name)
}

// ToTemp downloads url into a uniquely named temp file and returns its path.
// When ext is empty the extension is derived from the downloaded content.
func (c *Client) ToTemp(ctx context.Context, url string, ext string) (string, error) {
	body, err := c.Open(ctx, url, nil)
	if err != nil {
		return "", err
	}
	defer body.Close()

	path := c.TempPath(ext)
	logger := log.WithField("url", url)

	written, err := copyFile(body, path)
	if err != nil {
		os.Remove(path)
		return "", err
	}

	logger.Debugf("downloaded %d bytes to %s", written, path)

	if strings.TrimPrefix(ext, ".") == "" {
		return withDetectedExtension(path)
	}

	return path, nil
}

func withDetectedExtension(path string) (string, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to detect type of %s", path)
	}

	if mime.Extension() == "" {
		return path, nil
	}

	renamed := path + mime.Extension()
	if err := os.Rename(path, renamed); err != nil {
		return "", errors.Wrap(err, "failed to rename temp file")
	}

	return renamed, nil
}

func copyFile(source io.Reader, destinationPath string) (int64, error) {
	dest, err := os.Create(destinationPath)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create temp file")
	}

	written, err := io.Copy(dest, source)
	if err != nil {
		dest.Close()
		return 0, errors.Wrap(err, "failed to copy data")
	}

	if err := dest.Close(); err != nil {
		return 0, errors.Wrap(err, "failed to close temp file")
	}

	return written, nil
}
