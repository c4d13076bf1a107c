package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/wordstorm/pkg/errors"
	"github.com/matzehuels/wordstorm/pkg/pipeline"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for "-" and a created file otherwise.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{stdout}, nil
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.Create(path)
}

func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

// basePath derives the output stem. An explicit output wins, minus any known
// format extension; otherwise the input stem is used.
func basePath(output, stem string) string {
	if output == "" {
		return stem
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(strings.ToLower(ext), ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPaths maps each format to its output file. A single format written
// to an explicit output keeps that exact path.
func artifactPaths(formats []string, output, stem string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, stem)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	output    string
	stem      string
	cacheHit  bool
}

// writeArtifacts writes each rendered format and reports the files.
func writeArtifacts(p artifactWriteParams) error {
	paths := artifactPaths(p.formats, p.output, p.stem)
	for _, f := range p.formats {
		if err := writeOutput(paths[f], p.artifacts[f]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", strings.Join(p.formats, ", "))
	for _, f := range p.formats {
		if paths[f] != "-" {
			printFile(paths[f])
		}
	}
	if p.cacheHit {
		printDetail(iconCached)
	}
	return nil
}
