package types

import "encoding/json"

// MultiString holds the values of a tag field that may legitimately repeat,
// e.g. two performers in a single artist frame. A field with no value is an
// empty (or nil) MultiString, never a missing one.
type MultiString []string

// MarshalJSON keeps the wire format compact: a single value serializes as a
// plain string, multiple values as an array.
func (m MultiString) MarshalJSON() ([]byte, error) {
	if len(m) == 1 {
		return json.Marshal(m[0])
	}
	return json.Marshal([]string(m))
}

// Track holds the track position metadata for a file. Number and Total are
// independent; a Track with no Number counts as empty for display and
// serialization even when Total is set.
type Track struct {
	Number *uint `json:"number,omitempty"`
	Total  *uint `json:"total,omitempty"`
}

// Empty reports whether the track carries no usable position.
func (t Track) Empty() bool {
	return t.Number == nil
}

// Entry is the extracted view of one tagged audio file.
//
// The *Sort fields hold the "sort name" variant of a tag field (e.g.
// "Beatles, The" for "The Beatles"). They only influence sort position and
// are never displayed or serialized; nil means the tag carries no variant.
type Entry struct {
	Name   string
	Size   uint64
	Title  MultiString
	Artist MultiString
	Album  MultiString
	Genre  MultiString

	TitleSort  MultiString
	ArtistSort MultiString
	AlbumSort  MultiString

	Year  *int
	Track Track
}

// MarshalJSON serializes an entry omitting absent fields entirely rather
// than emitting nulls or empty containers. Name and Size are always present.
func (e Entry) MarshalJSON() ([]byte, error) {
	type payload struct {
		Name   string      `json:"file_name"`
		Size   uint64      `json:"file_size"`
		Title  MultiString `json:"title,omitempty"`
		Artist MultiString `json:"artist,omitempty"`
		Album  MultiString `json:"album,omitempty"`
		Year   *int        `json:"year,omitempty"`
		Track  *Track      `json:"track,omitempty"`
		Genre  MultiString `json:"genre,omitempty"`
	}

	p := payload{
		Name:   e.Name,
		Size:   e.Size,
		Title:  e.Title,
		Artist: e.Artist,
		Album:  e.Album,
		Year:   e.Year,
		Genre:  e.Genre,
	}
	if !e.Track.Empty() {
		p.Track = &e.Track
	}
	return json.Marshal(p)
}
