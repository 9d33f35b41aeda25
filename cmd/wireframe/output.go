package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/wireframe/internal/config"
)

// writeValue prints v in the requested format. Text output prints scalars
// one per line and falls back to YAML for records.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.OutputYAML:
		return writeYAML(w, v)
	default:
		return writeText(w, v)
	}
}

func writeText(w io.Writer, v any) error {
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if err := writeText(w, item); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, s := range val {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	case string, int, float64, bool:
		_, err := fmt.Fprintln(w, val)
		return err
	default:
		return writeYAML(w, v)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
