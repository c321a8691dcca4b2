package services

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// id3v23Tag builds a minimal ID3v2.3 tag from text frames. Frame payloads
// are ISO-8859-1 encoded; frame sizes are plain big-endian, the tag size
// syncsafe, per the v2.3 layout.
func id3v23Tag(frames map[string]string) []byte {
	var body []byte
	for id, text := range frames {
		payload := append([]byte{0x00}, []byte(text)...)
		header := make([]byte, 10)
		copy(header, id)
		binary.BigEndian.PutUint32(header[4:8], uint32(len(payload)))
		body = append(body, header...)
		body = append(body, payload...)
	}

	tag := make([]byte, 10, 10+len(body))
	copy(tag, "ID3")
	tag[3] = 0x03
	size := len(body)
	tag[6] = byte(size >> 21 & 0x7f)
	tag[7] = byte(size >> 14 & 0x7f)
	tag[8] = byte(size >> 7 & 0x7f)
	tag[9] = byte(size & 0x7f)
	return append(tag, body...)
}

// writeTagged writes a tagged file into dir and returns its path and size.
func writeTagged(t *testing.T, dir, name string, frames map[string]string) (string, uint64) {
	t.Helper()
	data := id3v23Tag(frames)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path, uint64(len(data))
}

// writeJunk writes a file that carries no audio metadata.
func writeJunk(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// fakeTagReader serves canned tag data keyed by file base name. Unknown
// names read as untagged.
type fakeTagReader struct {
	data map[string]*TagData
	errs map[string]error
}

func (f *fakeTagReader) ReadTags(path string) (*TagData, error) {
	name := filepath.Base(path)
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	if d, ok := f.data[name]; ok {
		return d, nil
	}
	return nil, ErrNoTags
}

// titled builds tag data carrying just a title, the minimum a test needs to
// tell entries apart.
func titled(title string) *TagData {
	return &TagData{Fields: map[TagField][]string{FieldTitle: {title}}}
}
