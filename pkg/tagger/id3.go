package tagger

import (
	"io"
	"strconv"

	"github.com/bogem/id3v2"
	"github.com/pkg/errors"
)

const descriptionFrame = "Description"

type id3Writer struct{}

func (id3Writer) Write(path string, fields *Fields) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return errors.Wrap(err, "failed to parse ID3v2 tag")
	}
	defer tag.Close()

	enc := tag.DefaultEncoding()

	tag.SetAlbum(fields.Title)
	tag.SetTitle(fields.Title)
	tag.SetArtist(fields.Artist)
	tag.AddTextFrame(tag.CommonID("Band/Orchestra/Accompaniment"), enc, fields.Artist)
	tag.SetYear(strconv.Itoa(fields.PubDate.Year()))

	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    enc,
		Description: descriptionFrame,
		Value:       fields.Description,
	})

	if fields.ClearGenre {
		tag.DeleteFrames(tag.CommonID("Content type"))
	}

	if fields.Cover != nil {
		tag.DeleteFrames(tag.CommonID("Attached picture"))
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    enc,
			MimeType:    fields.Cover.MimeType,
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     fields.Cover.Data,
		})
	}

	tag.AddTextFrame("TDAT", enc, fields.PubDate.Format("0201"))
	tag.AddTextFrame("TIME", enc, fields.PubDate.Format("1504"))
	tag.AddFrame("WOAF", linkFrame(fields.PageURL))
	tag.AddFrame("WOAS", linkFrame(fields.PageURL))

	if err := tag.Save(); err != nil {
		return errors.Wrap(err, "failed to save ID3v2 tag")
	}

	return nil
}

// linkFrame is a W*** frame: the body is just an ISO-8859-1 URL.
type linkFrame string

func (f linkFrame) Size() int {
	return len(f)
}

func (f linkFrame) UniqueIdentifier() string {
	return ""
}

func (f linkFrame) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(f))
	return int64(n), err
}
