package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"

	"cull-engine/math"
)

func TestSaveLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")

	r := NewRegistry()
	r.Add("tower", math.NewVec3(10, 25, -3))
	r.Add("", math.NewVec3(-1.5, 0, 4))
	require.NoError(t, SaveJSON(r, path))

	loaded, err := LoadJSON(path)
	require.NoError(t, err)
	require.Equal(t, r.Objects(), loaded.Objects())
}

func TestLoadJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed",
			content: `{"version": 1, "objects": [`,
		},
		{
			name:    "unknown version",
			content: `{"version": 7, "objects": []}`,
		},
		{
			name:    "index out of sequence",
			content: `{"version": 1, "objects": [{"index": 0}, {"index": 5}]}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scene.json")
			require.NoError(t, os.WriteFile(path, []byte(test.content), 0644))

			_, err := LoadJSON(path)
			require.Error(t, err)
			require.Equal(t, ErrTypeLoad, errors.Type(err))
		})
	}

	_, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Equal(t, ErrTypeLoad, errors.Type(err))
}
