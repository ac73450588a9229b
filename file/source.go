// Package file provides a redk.RawSource over a file or all the files in a
// directory. The bytes are handed to a format-specific source (csv, json) for
// row parsing.
package file

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"

	"github.com/estatemap/redk"
	"github.com/pkg/errors"
)

// RawSource produces a reader per file. It is safe for concurrent use.
type RawSource struct {
	files   []string
	fileIdx *uint64
}

// NewRawSource returns a RawSource over pathname, which may name a single
// file or a directory whose files are read in directory order.
func NewRawSource(pathname string) (*RawSource, error) {
	fileIdx := uint64(0)
	s := &RawSource{
		fileIdx: &fileIdx,
	}
	info, err := os.Stat(pathname)
	if err != nil {
		return nil, errors.Wrap(err, "statting path")
	}
	if info.IsDir() {
		infos, err := ioutil.ReadDir(pathname)
		if err != nil {
			return nil, errors.Wrap(err, "reading directory")
		}
		s.files = make([]string, 0, len(infos))
		for _, info = range infos {
			s.files = append(s.files, path.Join(pathname, info.Name()))
		}
	} else {
		s.files = []string{pathname}
	}
	return s, nil
}

// NextReader implements redk.RawSource.
func (s *RawSource) NextReader() (redk.NamedReadCloser, error) {
	idx := atomic.AddUint64(s.fileIdx, 1) - 1
	if int(idx) >= len(s.files) {
		return nil, io.EOF
	}

	f, err := os.Open(s.files[idx])
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", s.files[idx])
	}

	return &baseNameFile{f}, nil
}

// baseNameFile names itself after the file's base name rather than the full
// path.
type baseNameFile struct {
	*os.File
}

func (f *baseNameFile) Name() string {
	return filepath.Base(f.File.Name())
}
