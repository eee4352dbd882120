package task

import (
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formats supported by Export and Import.
const (
	JSON = "json"
	YAML = "yaml"
)

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return YAML
	}

	return JSON
}

// Export writes tasks to w in the given format.
func Export(w io.Writer, tasks []Task, format string) error {
	if tasks == nil {
		tasks = []Task{}
	}

	switch strings.ToLower(format) {
	case "", JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(tasks)
	case YAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		err := enc.Encode(tasks)
		if err != nil {
			return err
		}

		return enc.Close()
	}

	return errUnknownFormat.Fmt(format)
}

// Import reads tasks from r in the given format.
func Import(r io.Reader, format string) ([]Task, error) {
	var tasks []Task

	switch strings.ToLower(format) {
	case "", JSON:
		if err := json.NewDecoder(r).Decode(&tasks); err != nil {
			return nil, errDecode.Wrap(err)
		}
	case YAML, "yml":
		if err := yaml.NewDecoder(r).Decode(&tasks); err != nil && !errors.Is(err, io.EOF) {
			return nil, errDecode.Wrap(err)
		}
	default:
		return nil, errUnknownFormat.Fmt(format)
	}

	return normalise(tasks), nil
}
