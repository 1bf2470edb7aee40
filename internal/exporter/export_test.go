package exporter

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/cmgr/internal/registry"
)

func TestEncode(t *testing.T) {
	groups := []registry.Group{
		{Name: "web", Commands: []registry.CommandEntry{
			{Command: "npm test", Priority: 3},
			{Command: "npm run legacy", Priority: registry.LowestPriority},
		}},
		{Name: "empty", Commands: []registry.CommandEntry{}},
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, groups))

	want := `version: 1
groups:
  - name: web
    commands:
      - command: npm test
        priority: 3
      - command: npm run legacy
        legacy: true
  - name: empty
    commands: []
`
	assert.Equal(t, want, buf.String())
}

func TestExport_WritesFileOnFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	groups := []registry.Group{{Name: "ops", Commands: []registry.CommandEntry{{Command: "uptime", Priority: 1}}}}

	require.NoError(t, Export(fs, "/backups/reg.yaml", groups))

	data, err := afero.ReadFile(fs, "/backups/reg.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "- command: uptime")

	// re-export truncates
	require.NoError(t, Export(fs, "/backups/reg.yaml", nil))
	data, err = afero.ReadFile(fs, "/backups/reg.yaml")
	require.NoError(t, err)
	assert.Equal(t, "version: 1\ngroups: []\n", string(data))
}
