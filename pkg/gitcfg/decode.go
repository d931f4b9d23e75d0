package gitcfg

import (
	"io"
	"os"

	format "github.com/go-git/go-git/v5/plumbing/format/config"

	"github.com/sepatel/jgit/pkg/errclass"
)

// fileStore is an immutable Store holding the values of a decoded config
// file. Later changes to the file are not observed.
type fileStore struct {
	values map[string]string
}

// Decode parses git config syntax from r into an immutable Store. For
// multi-valued keys the last value wins, matching git's single-value reads.
func Decode(r io.Reader) (Store, error) {
	cfg := format.New()
	if err := format.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errclass.ErrConfigParse.WithMessagef("decode git config: %v", err)
	}

	values := make(map[string]string)
	for _, s := range cfg.Sections {
		for _, o := range s.Options {
			values[addr(s.Name, "", o.Key)] = o.Value
		}
		for _, ss := range s.Subsections {
			for _, o := range ss.Options {
				values[addr(s.Name, ss.Name, o.Key)] = o.Value
			}
		}
	}
	return &fileStore{values: values}, nil
}

// Load reads and decodes the git config file at path.
func Load(path string) (Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errclass.ErrConfigRead.WithMessagef("open %s: %v", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Lookup implements Store.
func (s *fileStore) Lookup(section, subsection, name string) (string, bool) {
	v, ok := s.values[addr(section, subsection, name)]
	return v, ok
}
