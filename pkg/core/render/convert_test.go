package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/wordstorm/pkg/errors"
)

const dot = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="10"><circle cx="5" cy="5" r="4"/></svg>`

func TestMissingConverterIsUnsupported(t *testing.T) {
	saved := rsvgBinary
	rsvgBinary = "wordstorm-no-such-converter"
	t.Cleanup(func() { rsvgBinary = saved })

	if Available() {
		t.Fatal("Available() = true for a missing binary")
	}
	_, err := ToPDF(context.Background(), []byte(dot))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF error = %v, want UNSUPPORTED", err)
	}
	_, err = ToPNG(context.Background(), []byte(dot), 2)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG error = %v, want UNSUPPORTED", err)
	}
}

func TestConvert(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	ctx := context.Background()

	png, err := ToPNG(ctx, []byte(dot), 2)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("ToPNG output is not a PNG")
	}

	pdf, err := ToPDF(ctx, []byte(dot))
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("ToPDF output is not a PDF")
	}

	if _, err := ToPDF(ctx, []byte("not svg")); err == nil {
		t.Error("ToPDF accepted garbage input")
	}
}
