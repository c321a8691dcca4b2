package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lsaudio/types"
)

// Lister walks paths and aggregates tagged audio files into Info records.
type Lister interface {
	List(paths []string, opts types.ListOptions) ([]types.Info, error)
}

// lister implements Lister. The walk is single-threaded and depth-first;
// each directory read and tag extraction runs to completion before the next
// begins, and the first fatal fault discards everything accumulated so far.
type lister struct {
	tags TagReader

	// defaultPath replaces an empty path list. It is resolved by the
	// caller once, never read ambiently inside the walk.
	defaultPath string
}

// NewLister creates a lister reading tags through the given reader.
func NewLister(tags TagReader, defaultPath string) Lister {
	return &lister{
		tags:        tags,
		defaultPath: defaultPath,
	}
}

// List resolves and walks each path independently, concatenating results in
// input order. No sorting happens across paths; each Info's entries are
// sorted under the options' key chain.
func (l *lister) List(paths []string, opts types.ListOptions) ([]types.Info, error) {
	if len(paths) == 0 {
		paths = []string{l.defaultPath}
	}

	var results []types.Info
	for _, path := range paths {
		infos, err := l.listPath(path, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, infos...)
	}
	return results, nil
}

func (l *lister) listPath(path string, opts types.ListOptions) ([]types.Info, error) {
	// Stat follows symlinks, so a link to a file lists as a file and a
	// link to a directory lists as a directory.
	fi, err := os.Stat(path)
	if err != nil || (!fi.Mode().IsRegular() && !fi.IsDir()) {
		return nil, &InvalidPathError{Path: path}
	}

	if fi.Mode().IsRegular() {
		info, err := l.listFile(path, uint64(fi.Size()), opts)
		if err != nil {
			return nil, err
		}
		return []types.Info{info}, nil
	}
	return l.listDir(path, opts)
}

// listFile produces the Info for an explicitly named file. A named file
// that fails extraction is a hard error, never a skip.
func (l *lister) listFile(path string, size uint64, opts types.ListOptions) (types.Info, error) {
	if opts.Progress != nil {
		opts.Progress(path)
	}
	entry, err := l.readEntry(path, filepath.Base(path), size)
	if errors.Is(err, ErrNoTags) {
		return types.Info{}, &TagReadError{Path: path, Err: err}
	}
	if err != nil {
		return types.Info{}, err
	}
	return types.Info{
		Path:     path,
		PathType: types.PathTypeFile,
		Entries:  []types.Entry{entry},
	}, nil
}

// candidate is one directory child that survived classification.
type candidate struct {
	name string
	size uint64
}

// listDir lists the immediate children of dir, then recurses depth-first
// into pending subdirectories when recursion is enabled.
func (l *lister) listDir(dir string, opts types.ListOptions) ([]types.Info, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ReadFaultError{Path: dir, Err: err}
	}

	// Partition children into files and pending subdirectories in one
	// pass. The stat call follows symlinks so linked files and
	// directories classify like their targets; anything that is neither
	// a regular file nor a directory is ignored.
	var files []candidate
	var subdirs []string
	for _, child := range children {
		childPath := filepath.Join(dir, child.Name())
		fi, err := os.Stat(childPath)
		if err != nil {
			return nil, &ReadFaultError{Path: childPath, Err: err}
		}
		switch {
		case fi.Mode().IsRegular():
			files = append(files, candidate{name: child.Name(), size: uint64(fi.Size())})
		case fi.IsDir():
			if opts.Recursive {
				subdirs = append(subdirs, child.Name())
			}
		}
	}

	// The filesystem's listing order is not trusted: both partitions are
	// sorted bytewise by name, independent of the requested sort keys, so
	// traversal order is deterministic regardless of sort-by.
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	sort.Strings(subdirs)

	entries := make([]types.Entry, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if opts.Progress != nil {
			opts.Progress(path)
		}
		entry, err := l.readEntry(path, f.name, f.size)
		if errors.Is(err, ErrNoTags) {
			// Not a tagged audio file; discovered files are skipped
			// silently.
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	SortEntries(entries, opts.SortBy, opts.Reverse)

	results := []types.Info{{
		Path:     dir,
		PathType: types.PathTypeDirectory,
		Entries:  entries,
	}}
	for _, sub := range subdirs {
		infos, err := l.listDir(filepath.Join(dir, sub), opts)
		if err != nil {
			return nil, err
		}
		results = append(results, infos...)
	}
	return results, nil
}

// readEntry extracts and normalizes one file. Open/IO failures wrap as read
// faults, broken tags as tag read errors; ErrNoTags passes through for the
// caller to decide.
func (l *lister) readEntry(path, name string, size uint64) (types.Entry, error) {
	data, err := l.tags.ReadTags(path)
	if err != nil {
		if errors.Is(err, ErrNoTags) {
			return types.Entry{}, err
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return types.Entry{}, &ReadFaultError{Path: path, Err: err}
		}
		return types.Entry{}, &TagReadError{Path: path, Err: err}
	}
	return newEntry(name, size, data), nil
}

// ValidateRelPath checks a client-supplied library-relative path for
// traversal attempts before it is joined onto the library root.
func ValidateRelPath(path string) error {
	if strings.Contains(path, "..") {
		return fmt.Errorf("path traversal not allowed")
	}
	if strings.HasPrefix(path, "/") {
		return fmt.Errorf("absolute paths not allowed")
	}
	return nil
}
