package types

import "fmt"

// SortBy identifies one sort key for entry comparison.
type SortBy int

const (
	SortByFileName SortBy = iota
	SortByFileSize
	SortByTitle
	SortByArtist
	SortByAlbum
	SortByYear
	SortByTrack
	SortByGenre
)

var sortByNames = map[SortBy]string{
	SortByFileName: "file-name",
	SortByFileSize: "file-size",
	SortByTitle:    "title",
	SortByArtist:   "artist",
	SortByAlbum:    "album",
	SortByYear:     "year",
	SortByTrack:    "track",
	SortByGenre:    "genre",
}

func (s SortBy) String() string {
	if name, ok := sortByNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SortBy(%d)", int(s))
}

// ParseSortBy parses a flag value like "file-name" or "artist".
func ParseSortBy(value string) (SortBy, error) {
	for key, name := range sortByNames {
		if name == value {
			return key, nil
		}
	}
	return 0, fmt.Errorf("unknown sort key %q", value)
}

// ParseSortKeys parses an ordered list of flag values into sort keys. An
// empty list defaults to sorting by file name.
func ParseSortKeys(values []string) ([]SortBy, error) {
	if len(values) == 0 {
		return []SortBy{SortByFileName}, nil
	}
	keys := make([]SortBy, 0, len(values))
	for _, v := range values {
		key, err := ParseSortBy(v)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// ProgressFunc is called once per file visited during a walk.
type ProgressFunc func(path string)

// ListOptions controls one list operation.
type ListOptions struct {
	// SortBy is the ordered key chain applied to every Info's entries.
	SortBy []SortBy

	// Reverse inverts the final comparison result once, after the whole
	// key chain has been evaluated.
	Reverse bool

	// Recursive descends into subdirectories, emitting one Info per
	// directory reached.
	Recursive bool

	// Progress, when non-nil, observes every file considered for
	// extraction. It must not block.
	Progress ProgressFunc `json:"-"`
}
