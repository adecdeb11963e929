package scw

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/charmap"
)

// ReadFile loads and decodes a weight file. Paths ending in .zst are
// decompressed transparently. Files written by pre-Unicode pipelines may
// carry Windows-1252 influence names; bytes that are not valid UTF-8 are
// transcoded before parsing.
func ReadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scw: read %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".zst") {
		decoder, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("scw: read %s: zstd: %w", path, err)
		}
		raw, err = io.ReadAll(decoder)
		decoder.Close()
		if err != nil {
			return nil, fmt.Errorf("scw: read %s: zstd: %w", path, err)
		}
	}

	if !utf8.Valid(raw) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("scw: read %s: legacy encoding: %w", path, err)
		}
		raw = decoded
	}

	doc, err := DecodeDocument(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("scw: read %s: %w", path, err)
	}
	return doc, nil
}

// WriteFile exports a weight source to a file, compressing when the path
// ends in .zst. The partial file is removed on any encode or write error.
func WriteFile(path string, h Header, src WeightSource, vertexCount int) error {
	doc, err := BuildDocument(h, src, vertexCount)
	if err != nil {
		return err
	}
	return WriteDocumentFile(path, doc)
}

// WriteDocumentFile serializes an existing document to a file, compressing
// when the path ends in .zst.
func WriteDocumentFile(path string, d *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scw: write %s: %w", path, err)
	}

	err = writeDocument(f, path, d)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("scw: write %s: %w", path, err)
	}
	return nil
}

func writeDocument(w io.Writer, path string, d *Document) error {
	if strings.HasSuffix(path, ".zst") {
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err := EncodeDocument(encoder, d); err != nil {
			encoder.Close()
			return err
		}
		return encoder.Close()
	}
	return EncodeDocument(w, d)
}
