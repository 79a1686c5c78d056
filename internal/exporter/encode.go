package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Encode writes doc to w in one of the file based formats.
func Encode(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		// TOML strings must be valid UTF-8 or the file cannot be read back.
		doc.Query = strings.ToValidUTF8(doc.Query, string(utf8.RuneError))
		return toml.NewEncoder(w).Encode(doc)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("%w %q for stream encoding", ErrUnknownFormat, f)
}

// Decode reads a document written by Encode.
func Decode(r io.Reader, f Format) (Document, error) {
	var doc Document
	var err error
	switch f {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&doc)
	default:
		err = fmt.Errorf("%w %q for stream decoding", ErrUnknownFormat, f)
	}
	return doc, err
}

// writeFile encodes into a temp file next to dst and renames it into place.
func writeFile(doc Document, dst string, f Format) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".asciiref-export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if err := Encode(tmp, doc, f); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode %s: %w", f, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("move export into place: %w", err)
	}
	return nil
}
