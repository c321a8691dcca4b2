package services

import (
	"sort"
	"strings"

	"lsaudio/types"
)

// CompareEntries compares two entries over an ordered key chain. The first
// key yielding a non-equal result decides; an empty chain yields equal.
func CompareEntries(a, b *types.Entry, keys []types.SortBy) int {
	for _, key := range keys {
		if c := compareKey(a, b, key); c != 0 {
			return c
		}
	}
	return 0
}

// SortEntries sorts entries in place under the given key chain. Reverse
// inverts the final chain result once; it does not flip individual keys.
func SortEntries(entries []types.Entry, keys []types.SortBy, reverse bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		c := CompareEntries(&entries[i], &entries[j], keys)
		if reverse {
			return c > 0
		}
		return c < 0
	})
}

func compareKey(a, b *types.Entry, key types.SortBy) int {
	switch key {
	case types.SortByFileName:
		return strings.Compare(a.Name, b.Name)
	case types.SortByFileSize:
		return compareUint64(a.Size, b.Size)
	case types.SortByTitle:
		return compareInsensitive(sortValues(a.Title, a.TitleSort), sortValues(b.Title, b.TitleSort))
	case types.SortByArtist:
		return compareInsensitive(sortValues(a.Artist, a.ArtistSort), sortValues(b.Artist, b.ArtistSort))
	case types.SortByAlbum:
		return compareInsensitive(sortValues(a.Album, a.AlbumSort), sortValues(b.Album, b.AlbumSort))
	case types.SortByYear:
		return compareOptionalInt(a.Year, b.Year)
	case types.SortByTrack:
		if c := compareOptionalUint(a.Track.Number, b.Track.Number); c != 0 {
			return c
		}
		return compareOptionalUint(a.Track.Total, b.Track.Total)
	case types.SortByGenre:
		// Genre has no sort-order override; the raw values always apply.
		return compareInsensitive(a.Genre, b.Genre)
	}
	return 0
}

// sortValues picks the comparison sequence for a string field: the sort
// override when present, the display values otherwise.
func sortValues(display, override types.MultiString) types.MultiString {
	if override != nil {
		return override
	}
	return display
}

// compareInsensitive compares two value sequences element-wise with
// per-element case folding, then by length.
func compareInsensitive(a, b types.MultiString) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(strings.ToLower(a[i]), strings.ToLower(b[i])); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Absent sorts before present for optional scalars.
func compareOptionalInt(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func compareOptionalUint(a, b *uint) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
