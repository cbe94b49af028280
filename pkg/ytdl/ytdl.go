package ytdl

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/downcast/downcast/pkg/config"
	"github.com/downcast/downcast/pkg/model"
)

// YoutubeDl resolves a page URL to an audio file by running youtube-dl.
type YoutubeDl struct {
	path   string
	config config.Downloader
}

func New(ctx context.Context, cfg config.Downloader) (*YoutubeDl, error) {
	path, err := exec.LookPath(cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "%s binary not found", cfg.Path)
	}

	log.Debugf("found youtube-dl binary at %q", path)

	ytdl := &YoutubeDl{
		path:   path,
		config: cfg,
	}

	// Make sure youtube-dl actually runs
	version, err := ytdl.exec(ctx, "--version")
	if err != nil {
		return nil, errors.Wrap(err, "could not run youtube-dl")
	}

	log.Infof("using youtube-dl %s", strings.TrimSpace(version))

	return ytdl, nil
}

// Resolve downloads the media behind pageURL to outputPath.
// It blocks until youtube-dl exits; a non-zero exit code is reported as model.ErrResolverFailed.
func (dl *YoutubeDl) Resolve(ctx context.Context, pageURL string, outputPath string) error {
	args := buildArgs(dl.config, pageURL, outputPath)

	output, err := dl.exec(ctx, args...)
	if err != nil {
		log.WithError(err).Errorf("youtube-dl error: %s", output)
		return errors.Wrapf(model.ErrResolverFailed, "youtube-dl failed for %s: %v", pageURL, err)
	}

	return nil
}

func (dl *YoutubeDl) exec(ctx context.Context, args ...string) (string, error) {
	if dl.config.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dl.config.Timeout.Duration)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, dl.path, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), errors.Wrap(err, "failed to execute youtube-dl")
	}

	return string(output), nil
}

func buildArgs(cfg config.Downloader, pageURL string, outputPath string) []string {
	args := make([]string, 0, len(cfg.Args)+3)
	args = append(args, cfg.Args...)
	args = append(args, "-o", outputPath, pageURL)
	return args
}
