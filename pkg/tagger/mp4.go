package tagger

import (
	"os"

	mp4tag "github.com/Sorrow446/go-mp4tag"
	"github.com/abema/go-mp4"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const dayLayout = "2006-01-02"

// go-mp4tag only writes ©day from Year. A ten digit year reserves exactly
// len(dayLayout) bytes, which setDay then overwrites with the full date.
const dayPlaceholder = 1000000000

var dayPath = mp4.BoxPath{
	mp4.BoxTypeMoov(),
	mp4.BoxTypeUdta(),
	mp4.BoxTypeMeta(),
	mp4.BoxTypeIlst(),
	mp4.StrToBoxType("\xa9day"),
	mp4.BoxTypeData(),
}

type appleWriter struct{}

func (appleWriter) Write(path string, fields *Fields) error {
	file, err := mp4tag.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open MP4 container")
	}

	tags, remove := appleTags(fields)
	err = file.Write(tags, remove)
	file.Close()
	if err != nil {
		return errors.Wrap(err, "failed to save MP4 tags")
	}

	return setDay(path, fields.PubDate.Format(dayLayout))
}

// appleTags maps fields onto iTunes atoms. The returned strings name atoms to delete.
func appleTags(fields *Fields) (*mp4tag.MP4Tags, []string) {
	tags := &mp4tag.MP4Tags{
		Album:       fields.Title,
		Title:       fields.Title,
		AlbumArtist: fields.Artist,
		Artist:      fields.Artist,
		Description: fields.Description,
		Year:        dayPlaceholder,
	}

	var remove []string

	if fields.ClearGenre {
		remove = append(remove, "genre", "customgenre")
	}

	if fields.Cover != nil {
		if format, ok := imageType(fields.Cover.MimeType); ok {
			remove = append(remove, "allpictures")
			tags.Pictures = []*mp4tag.MP4Picture{{Format: format, Data: fields.Cover.Data}}
		} else {
			log.Warnf("cover of type %s can't be embedded into MP4, skipping", fields.Cover.MimeType)
		}
	}

	return tags, remove
}

// setDay overwrites the value of the ©day atom in place. The value must have
// the same length as the one already stored, so no box sizes or chunk offsets move.
func setDay(path string, day string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return errors.Wrap(err, "failed to open MP4 container")
	}
	defer f.Close()

	boxes, err := mp4.ExtractBox(f, nil, dayPath)
	if err != nil {
		return errors.Wrap(err, "failed to read MP4 boxes")
	}

	if len(boxes) == 0 {
		return errors.New("©day atom is missing")
	}

	// data box payload: 4 bytes type indicator, 4 bytes locale, then the value
	data := boxes[0]
	offset := int64(data.Offset + data.HeaderSize + 8)
	size := int64(data.Size) - int64(data.HeaderSize) - 8

	if size != int64(len(day)) {
		return errors.Errorf("unexpected ©day value size %d", size)
	}

	if _, err := f.WriteAt([]byte(day), offset); err != nil {
		return errors.Wrap(err, "failed to write ©day")
	}

	return nil
}

func imageType(mimeType string) (mp4tag.ImageType, bool) {
	switch mimeType {
	case "image/jpeg":
		return mp4tag.ImageTypeJPEG, true
	case "image/png":
		return mp4tag.ImageTypePNG, true
	default:
		return 0, false
	}
}
