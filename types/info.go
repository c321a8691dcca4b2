package types

// PathType classifies a listed path.
type PathType string

const (
	PathTypeFile      PathType = "file"
	PathTypeDirectory PathType = "directory"
)

// Info groups the entries produced for one path argument or one visited
// directory. Path is the literal path as given or walked to, not a
// canonicalized form. Entries are sorted per the sort specification that was
// active during the listing; an Info is not modified after construction.
type Info struct {
	Path     string   `json:"path"`
	PathType PathType `json:"path_type"`
	Entries  []Entry  `json:"entries"`
}
