package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

type inputKind int

const (
	kindText inputKind = iota
	kindWords
	kindLayout
)

func (k inputKind) String() string {
	switch k {
	case kindWords:
		return "words"
	case kindLayout:
		return "layout"
	}
	return "text"
}

// input is a command argument read and classified: plain text, a word list,
// or a layout.
type input struct {
	base   string // output path stem, e.g. "talks/speech" for talks/speech.txt
	kind   inputKind
	texts  []string
	words  wordcloud.Words
	layout wordcloud.Layout
}

// stdin is replaced in tests.
var stdin io.Reader = os.Stdin

// readInputs reads every path (or stdin for "-"). Text files are merged into
// one input; a word list or layout must be the only argument.
func readInputs(paths []string) (*input, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var merged *input
	for _, p := range paths {
		in, err := readInput(p)
		if err != nil {
			return nil, err
		}
		if len(paths) > 1 && in.kind != kindText {
			return nil, fmt.Errorf("%s: a %s file must be the only input", p, in.kind)
		}
		if merged == nil {
			merged = in
			continue
		}
		merged.texts = append(merged.texts, in.texts...)
	}
	return merged, nil
}

func readInput(path string) (*input, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	in := &input{base: stemOf(path)}
	trimmed := bytes.TrimSpace(data)
	isJSON := strings.EqualFold(filepath.Ext(path), ".json") ||
		(len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '['))
	if !isJSON {
		in.kind = kindText
		in.texts = []string{string(data)}
		return in, nil
	}

	if wordcloud.IsLayout(trimmed) {
		l, err := wordcloud.UnmarshalLayout(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		in.kind, in.layout = kindLayout, l
		return in, nil
	}
	w, err := wordcloud.UnmarshalWords(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	in.kind, in.words = kindWords, w
	return in, nil
}

// stemOf strips the extension and any .words or .layout suffix,
// so speech.words.json and speech.txt both yield "speech".
func stemOf(path string) string {
	if path == "-" {
		return "stdin"
	}
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	for _, suffix := range []string{".words", ".layout"} {
		stem = strings.TrimSuffix(stem, suffix)
	}
	return stem
}
