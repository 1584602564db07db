// Package pagefile reads transliteration pages from their table-store
// format.
//
// A page resource is line-oriented: one replacement string per line, in low
// byte order, at most 256 lines. An empty line is an empty replacement,
// lines past the 256th are ignored, and short resources are padded with "_"
// (some table sets ship truncated pages; tolerated, not an error). Line
// endings may be LF or CRLF.
//
// Resources are named by page key, see translit.PageKey.Resource.
package pagefile

import (
	"bufio"
	"io"
	"io/fs"
	"strings"

	"github.com/npillmayer/translit"
)

// Reader streams page entries line by line.
type Reader struct {
	scanner *bufio.Scanner
	count   int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next replacement entry.
// It returns io.EOF when exhausted or after the 256th entry.
func (r *Reader) Next() (string, error) {
	if r.count >= translit.PageSize {
		return "", io.EOF
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	r.count++
	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}

// ReadPage parses one page resource. Short resources are padded with "_".
func ReadPage(reader io.Reader) (*translit.Page, error) {
	r := NewReader(reader)
	entries := make([]string, 0, translit.PageSize)
	for {
		entry, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return translit.NewPage(entries), nil
}

// FSStore serves pages from a file system, one file per page key, named
// "<resource>.tab" ("x00.tab", "x00de.tab", "x1f4.tab", ...).
//
// Example usage:
//
//	//go:embed tables
//	var tables embed.FS
//
//	sub, _ := fs.Sub(tables, "tables")
//	trans := translit.New(pagefile.NewFSStore(sub))
type FSStore struct {
	fsys fs.FS
}

func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Load reads and parses the resource for key. A missing file reports
// translit.ErrPageNotFound; the engine degrades that to placeholders.
func (s *FSStore) Load(key translit.PageKey) (*translit.Page, error) {
	f, err := s.fsys.Open(key.Resource() + ".tab")
	if err != nil {
		return nil, translit.ErrPageNotFound
	}
	defer f.Close()
	return ReadPage(f)
}
