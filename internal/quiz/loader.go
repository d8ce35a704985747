package quiz

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mind-engage/mindengage-quiz/internal/storage"
)

// ManifestName is the optional file that pins quiz ids to file names.
//
//	quizzes:
//	  - file: basics.json
//	  - file: advanced.yaml
//	    id: 7
//
// Entries without an id take their 1-based position in the list.
const ManifestName = "catalog.yaml"

type LoadOptions struct {
	// Strict aborts on the first malformed entry instead of skipping it.
	Strict bool
	Logf   func(format string, args ...any)
}

// LoadError describes a quiz document that could not be turned into a Quiz.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("quiz file %s: %v", e.File, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

type manifest struct {
	Quizzes []struct {
		File string `yaml:"file"`
		ID   int    `yaml:"id,omitempty"`
	} `yaml:"quizzes"`
}

type planned struct {
	file string
	id   int // 0: assign the next free position
}

// LoadCatalog reads every quiz document of src, validates it and assigns ids.
// Without a manifest, files are ordered by natural sort of their names and
// accepted entries are numbered 1..N. Malformed entries are logged and
// skipped (see Catalog.Skipped) unless opts.Strict is set.
func LoadCatalog(ctx context.Context, src storage.Source, opts LoadOptions) (*Catalog, error) {
	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}
	names, err := src.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list quiz source")
	}
	plan, err := planLoad(src, names)
	if err != nil {
		return nil, err
	}

	var skipped *multierror.Error
	quizzes := make([]Quiz, 0, len(plan))
	next := 1
	for _, p := range plan {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q, err := decodeFile(src, p.file)
		if err == nil {
			err = Validate(q)
		}
		if err != nil {
			le := &LoadError{File: p.file, Err: err}
			if opts.Strict {
				return nil, le
			}
			logf("catalog: skipping %v", le)
			skipped = multierror.Append(skipped, le)
			continue
		}
		if p.id > 0 {
			q.ID = p.id
		} else {
			q.ID = next
			next++
		}
		quizzes = append(quizzes, q)
	}

	c, err := NewCatalog(quizzes...)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog")
	}
	c.skipped = skipped
	return c, nil
}

func planLoad(src storage.Source, names []string) ([]planned, error) {
	for _, n := range names {
		if n == ManifestName {
			return planFromManifest(src)
		}
	}
	files := make([]string, 0, len(names))
	for _, n := range names {
		if supported(n) {
			files = append(files, n)
		}
	}
	sort.Slice(files, func(i, j int) bool { return naturalLess(files[i], files[j]) })
	out := make([]planned, len(files))
	for i, f := range files {
		out[i] = planned{file: f}
	}
	return out, nil
}

func planFromManifest(src storage.Source) ([]planned, error) {
	rc, err := src.Open(ManifestName)
	if err != nil {
		return nil, errors.Wrap(err, "open manifest")
	}
	defer rc.Close()

	var m manifest
	if err := yaml.NewDecoder(rc).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "decode %s", ManifestName)
	}
	out := make([]planned, 0, len(m.Quizzes))
	ids := make(map[int]string, len(m.Quizzes))
	for i, e := range m.Quizzes {
		if strings.TrimSpace(e.File) == "" {
			return nil, errors.Errorf("%s: entry %d has no file", ManifestName, i+1)
		}
		id := e.ID
		if id == 0 {
			id = i + 1
		}
		if id < 0 {
			return nil, errors.Errorf("%s: %s has negative id %d", ManifestName, e.File, id)
		}
		if prev, dup := ids[id]; dup {
			return nil, errors.Errorf("%s: id %d used by both %s and %s", ManifestName, id, prev, e.File)
		}
		ids[id] = e.File
		out = append(out, planned{file: e.File, id: id})
	}
	return out, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return name != ManifestName
	}
	return false
}

func decodeFile(src storage.Source, name string) (Quiz, error) {
	if !supported(name) {
		return Quiz{}, errors.Errorf("unsupported file type %q", filepath.Ext(name))
	}
	rc, err := src.Open(name)
	if err != nil {
		return Quiz{}, errors.Wrap(err, "open")
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return Quiz{}, errors.Wrap(err, "read")
	}

	var q Quiz
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		err = json.Unmarshal(raw, &q)
	default:
		err = yaml.Unmarshal(raw, &q)
	}
	if err != nil {
		return Quiz{}, errors.Wrap(err, "decode")
	}
	q.ID = 0
	return q, nil
}
