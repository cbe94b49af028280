package tagger

import (
	"os"
	"time"

	"github.com/dhowden/tag"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/downcast/downcast/pkg/model"
)

// Genre some encoders stamp on every file (ID3v1 genre 0)
const placeholderGenre = "Blues"

type Container int

const (
	ContainerUnknown Container = iota
	ContainerMPEG
	ContainerMP4
)

func (c Container) String() string {
	switch c {
	case ContainerMPEG:
		return "mpeg"
	case ContainerMP4:
		return "mp4"
	default:
		return "unknown"
	}
}

var mp4Types = []string{"audio/mp4", "audio/x-m4a", "audio/x-m4b", "video/mp4", "video/x-m4v"}

// Fields is the normalized set of values written regardless of tag format.
type Fields struct {
	Title       string
	Artist      string
	Description string
	PageURL     string
	PubDate     time.Time
	Cover       *Cover
	ClearGenre  bool
}

// Cover is an image attached as the front cover.
type Cover struct {
	MimeType string
	Data     []byte
}

type schemaWriter interface {
	Write(path string, fields *Fields) error
}

// Tagger writes episode metadata into downloaded audio files.
type Tagger struct {
	id3   schemaWriter
	apple schemaWriter
}

func New() *Tagger {
	return &Tagger{
		id3:   id3Writer{},
		apple: appleWriter{},
	}
}

// Detect sniffs the container type of an audio file.
func Detect(path string) (Container, string, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return ContainerUnknown, "", errors.Wrapf(err, "failed to detect type of %s", path)
	}

	switch {
	case mime.Is("audio/mpeg"):
		return ContainerMPEG, mime.String(), nil
	case mimetype.EqualsAny(mime.String(), mp4Types...):
		return ContainerMP4, mime.String(), nil
	default:
		return ContainerUnknown, mime.String(), nil
	}
}

// Tag writes the item's metadata and cover into the audio file at audioPath.
// coverPath may be empty when no cover could be found.
func (t *Tagger) Tag(audioPath string, coverPath string, item *model.Item) error {
	container, mime, err := Detect(audioPath)
	if err != nil {
		return err
	}

	var writer schemaWriter
	switch container {
	case ContainerMP4:
		writer = t.apple
	case ContainerMPEG:
		writer = t.id3
	default:
		return errors.Wrapf(model.ErrUnsupportedContainer, "%s (%s)", audioPath, mime)
	}

	logger := log.WithFields(log.Fields{"path": audioPath, "container": container})
	logger.Debug("setting tags")

	if err := StripID3v1(audioPath); err != nil {
		return err
	}

	fields := &Fields{
		Title:       item.CleanTitle(),
		Artist:      item.Artist,
		Description: item.Description,
		PageURL:     item.PageURL,
		PubDate:     item.PubDate,
	}

	if coverPath != "" {
		if fields.Cover, err = loadCover(coverPath); err != nil {
			return err
		}
	}

	genre, err := existingGenre(audioPath)
	if err != nil {
		return err
	}
	fields.ClearGenre = genre == placeholderGenre

	if err := writer.Write(audioPath, fields); err != nil {
		return errors.Wrapf(err, "failed to write %s tags", container)
	}

	return nil
}

func loadCover(path string) (*Cover, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cover")
	}

	return &Cover{
		MimeType: mimetype.Detect(data).String(),
		Data:     data,
	}, nil
}

func existingGenre(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to open audio file")
	}
	defer f.Close()

	metadata, err := tag.ReadFrom(f)
	if err == tag.ErrNoTagsFound {
		return "", nil
	}
	if err != nil {
		// Tags we can't read are replaced anyway
		log.WithError(err).Debugf("could not read existing tags from %s", path)
		return "", nil
	}

	return metadata.Genre(), nil
}
