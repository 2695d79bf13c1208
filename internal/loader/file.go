// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-build-config/models"
)

// FileSource loads a config file whose encoding is taken from its
// extension.
type FileSource struct {
	path   string
	format Format
}

// NewFileSource returns a Source for path. It fails when the extension
// does not name a supported format.
func NewFileSource(path string) (*FileSource, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{path: path, format: format}, nil
}

func (s *FileSource) Name() string {
	return s.path
}

// Format returns the encoding the file is decoded with.
func (s *FileSource) Format() Format {
	return s.format
}

func (s *FileSource) Load(ctx context.Context) (models.RawConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	raw, err := Decode(s.format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return raw, nil
}

// ReaderSource loads a single document from r, typically standard input.
// The reader is consumed on the first Load.
type ReaderSource struct {
	name   string
	format Format
	r      io.Reader
}

func NewReaderSource(name string, format Format, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, format: format, r: r}
}

func (s *ReaderSource) Name() string {
	return s.name
}

func (s *ReaderSource) Load(ctx context.Context) (models.RawConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", s.name, err)
	}

	raw, err := Decode(s.format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}
	return raw, nil
}
