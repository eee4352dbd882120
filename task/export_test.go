package task

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport(t *testing.T) {
	tasks := []Task{
		{Text: "Write report", Completed: true},
		{Text: "Review PR"},
	}

	for _, format := range []string{JSON, YAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, Export(&buf, tasks, format))

			got, err := Import(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, tasks, got)
		})
	}
}

func TestExportYAMLShape(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Export(&buf, []Task{{Text: "A"}}, YAML))

	assert.Equal(t, "- text: A\n  completed: false\n", buf.String())
}

func TestImportDropsBlankTasks(t *testing.T) {
	got, err := Import(strings.NewReader(`[{"text":"  "},{"text":" A "}]`), JSON)
	require.NoError(t, err)
	assert.Equal(t, []Task{{Text: "A"}}, got)
}

func TestImportErrors(t *testing.T) {
	_, err := Import(strings.NewReader(`{`), JSON)
	assert.ErrorIs(t, err, errDecode)

	_, err = Import(strings.NewReader(``), "toml")
	assert.ErrorIs(t, err, errUnknownFormat)

	assert.ErrorIs(t, Export(&bytes.Buffer{}, nil, "csv"), errUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, YAML, FormatFromPath("tasks.YML"))
	assert.Equal(t, YAML, FormatFromPath("tasks.yaml"))
	assert.Equal(t, JSON, FormatFromPath("tasks.json"))
	assert.Equal(t, JSON, FormatFromPath("tasks"))
}
