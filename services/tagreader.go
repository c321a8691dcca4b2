package services

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// TagField names one semantic metadata slot.
type TagField int

const (
	FieldTitle TagField = iota
	FieldArtist
	FieldAlbum
	FieldGenre
	FieldTitleSort
	FieldArtistSort
	FieldAlbumSort
)

// fieldKeys is the fixed mapping from semantic field to the raw keys it may
// be stored under: ID3v2.3/2.4 frame IDs, their ID3v2.2 three-letter forms,
// the iTunes extended sort frames, and vorbis comment names. Lookup is over
// a lower-cased view of the raw tag map, first match wins.
var fieldKeys = map[TagField][]string{
	FieldTitle:      {"tit2", "tt2", "title"},
	FieldArtist:     {"tpe1", "tp1", "artist"},
	FieldAlbum:      {"talb", "tal", "album"},
	FieldGenre:      {"tcon", "tco", "genre"},
	FieldTitleSort:  {"tsot", "tst", "xsot", "titlesort"},
	FieldArtistSort: {"tsop", "tsp", "xsop", "artistsort"},
	FieldAlbumSort:  {"tsoa", "tsa", "xsoa", "albumsort"},
}

// dateKeys are consulted for the year when no numeric year field is present;
// the leading year component of a full recording date is used instead.
var dateKeys = []string{"tdrc", "tdrl", "tyer", "date", "year"}

// TagData is one file's raw extracted tag view: value lists per semantic
// field plus the numeric year and track fields. Zero means absent for the
// numeric fields.
type TagData struct {
	Fields      map[TagField][]string
	Year        int
	TrackNumber int
	TrackTotal  int
}

// TagReader extracts tag data from audio files.
//
// ReadTags returns ErrNoTags when the file carries no recognizable audio
// metadata, an *os.PathError when the file cannot be opened or read, and
// any other error for a structurally broken tag.
type TagReader interface {
	ReadTags(path string) (*TagData, error)
}

// tagReader implements TagReader on top of the dhowden/tag library, which
// parses ID3v2 (MP3), vorbis comments (FLAC/OGG) and MP4 metadata.
type tagReader struct{}

// NewTagReader creates the production tag reader.
func NewTagReader() TagReader {
	return &tagReader{}
}

func (tr *tagReader) ReadTags(path string) (*TagData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return nil, ErrNoTags
		}
		return nil, err
	}

	raw := normalizeRaw(meta.Raw())

	data := &TagData{Fields: make(map[TagField][]string, len(fieldKeys))}
	for field, keys := range fieldKeys {
		for _, key := range keys {
			if values, ok := raw[key]; ok {
				data.Fields[field] = values
				break
			}
		}
	}

	data.Year = meta.Year()
	if data.Year == 0 {
		data.Year = yearFromDate(raw)
	}
	data.TrackNumber, data.TrackTotal = meta.Track()

	return data, nil
}

// normalizeRaw lowers the raw tag map into lower-cased keys with split
// value lists. Non-text frames (pictures, comments) are ignored.
func normalizeRaw(raw map[string]interface{}) map[string][]string {
	out := make(map[string][]string, len(raw))
	for key, value := range raw {
		text, ok := value.(string)
		if !ok {
			continue
		}
		// ID3v2.4 separates multiple values with a NUL byte.
		values := strings.Split(text, "\x00")
		out[strings.ToLower(key)] = values
	}
	return out
}

// yearFromDate extracts the year component from a full date field such as
// "2002-04-01".
func yearFromDate(raw map[string][]string) int {
	for _, key := range dateKeys {
		values, ok := raw[key]
		if !ok || len(values) == 0 {
			continue
		}
		date := strings.TrimSpace(values[0])
		if len(date) < 4 {
			continue
		}
		if year, err := strconv.Atoi(date[:4]); err == nil && year != 0 {
			return year
		}
	}
	return 0
}
