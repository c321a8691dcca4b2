package services

import (
	"lsaudio/types"
)

// newEntry normalizes one file's raw tag data into an Entry. Empty strings
// are dropped from every repeated field; a sort override that is empty after
// filtering stays absent; absent numeric fields are never materialized as
// zero.
func newEntry(name string, size uint64, data *TagData) types.Entry {
	entry := types.Entry{
		Name:       name,
		Size:       size,
		Title:      filterEmpty(data.Fields[FieldTitle]),
		Artist:     filterEmpty(data.Fields[FieldArtist]),
		Album:      filterEmpty(data.Fields[FieldAlbum]),
		Genre:      filterEmpty(data.Fields[FieldGenre]),
		TitleSort:  sortOverride(data.Fields[FieldTitleSort]),
		ArtistSort: sortOverride(data.Fields[FieldArtistSort]),
		AlbumSort:  sortOverride(data.Fields[FieldAlbumSort]),
	}

	if data.Year != 0 {
		year := data.Year
		entry.Year = &year
	}
	if data.TrackNumber > 0 {
		number := uint(data.TrackNumber)
		entry.Track.Number = &number
	}
	if data.TrackTotal > 0 {
		total := uint(data.TrackTotal)
		entry.Track.Total = &total
	}

	return entry
}

// filterEmpty drops empty strings, always returning a non-nil slice.
func filterEmpty(values []string) types.MultiString {
	out := make(types.MultiString, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// sortOverride returns the filtered override values, or nil when nothing
// usable remains.
func sortOverride(values []string) types.MultiString {
	filtered := filterEmpty(values)
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}
