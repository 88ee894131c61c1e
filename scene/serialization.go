package scene

import (
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
)

const snapshotVersion = 1

type snapshotJSON struct {
	Version int      `json:"version"`
	Objects []Object `json:"objects"`
}

// SaveJSON writes the registry to path as an indented JSON snapshot.
func SaveJSON(r *Registry, path string) error {
	data, err := json.MarshalIndent(snapshotJSON{
		Version: snapshotVersion,
		Objects: r.objects,
	}, "", "  ")
	if err != nil {
		return errors.New("marshaling scene snapshot failed").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("writing scene snapshot failed").
			WithTag("path", path).
			Wrap(err)
	}
	return nil
}

// LoadJSON reads a snapshot written by SaveJSON. Object indices must run
// from 0 in file order.
func LoadJSON(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading scene snapshot failed").
			WithType(ErrTypeLoad).
			WithTag("path", path).
			Wrap(err)
	}

	var snapshot snapshotJSON
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.New("decoding scene snapshot failed").
			WithType(ErrTypeLoad).
			WithTag("path", path).
			Wrap(err)
	}

	if snapshot.Version != snapshotVersion {
		return nil, errors.New("unsupported scene snapshot version").
			WithType(ErrTypeLoad).
			WithTag("path", path).
			WithTag("version", snapshot.Version)
	}

	r := NewRegistry()
	for i, o := range snapshot.Objects {
		if o.Index != i {
			return nil, errors.New("scene snapshot object index out of sequence").
				WithType(ErrTypeLoad).
				WithTag("path", path).
				WithTag("index", o.Index).
				WithTag("expected", i)
		}
		r.Add(o.Name, o.Position)
	}
	return r, nil
}
