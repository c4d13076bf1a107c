package wordcloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Words Serialization API
// =============================================================================

// MarshalWords serializes a word list to pretty-printed JSON bytes.
func MarshalWords(w Words) ([]byte, error) {
	if w.Words == nil {
		w.Words = []Word{}
	}
	return json.MarshalIndent(w, "", "  ")
}

// UnmarshalWords decodes a word list. Both the object form and a bare array
// of words are accepted.
func UnmarshalWords(data []byte) (Words, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Word
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return Words{}, fmt.Errorf("unmarshal words: %w", err)
		}
		return Words{Words: list}, nil
	}
	var w Words
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return Words{}, fmt.Errorf("unmarshal words: %w", err)
	}
	return w, nil
}

// ReadWords decodes a word list from r.
func ReadWords(r io.Reader) (Words, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Words{}, fmt.Errorf("read words: %w", err)
	}
	return UnmarshalWords(data)
}

// WriteWordsFile writes a word list to a JSON file.
func WriteWordsFile(w Words, path string) error {
	data, err := MarshalWords(w)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadWordsFile reads a word list from a JSON file.
func ReadWordsFile(path string) (Words, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Words{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalWords(data)
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	if l.Words == nil {
		l.Words = []Placed{}
	}
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that the canvas size is present and the version is supported.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.Version == 0 {
		l.Version = Version
	}
	if l.Version > Version {
		return Layout{}, fmt.Errorf("layout version %d not supported (max %d)", l.Version, Version)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, fmt.Errorf("layout must have a canvas size, got %vx%v", l.Width, l.Height)
	}
	if l.Words == nil {
		l.Words = []Placed{}
	}

	return l, nil
}

// WriteLayout writes a Layout as JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// ReadLayout decodes a Layout from r.
func ReadLayout(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return UnmarshalLayout(data)
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}

// IsLayout reports whether data looks like a layout document rather than a
// word list. It is used to accept either file on the command line.
func IsLayout(data []byte) bool {
	var probe struct {
		Width *float64 `json:"width"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Width != nil
}
