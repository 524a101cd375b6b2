// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-site-gateway/internal/logger"
)

// datasetFileStorage writes datasets as indented JSON arrays under a base
// directory. Files are replaced atomically: content goes to a temporary
// file in the same directory which is then renamed over the target.
type datasetFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewDatasetFileStorage constructs a [DatasetFileStorage] rooted at dir.
// The directory is created on first save.
func NewDatasetFileStorage(dir string, logger *logger.Logger) DatasetFileStorage {
	return &datasetFileStorage{
		dir:    dir,
		logger: logger,
	}
}

// Save writes items to <dir>/<fileName> and returns the written path.
// A nil slice is written as an empty array.
func (s *datasetFileStorage) Save(ctx context.Context, fileName string, items []json.RawMessage) (string, error) {
	log := logger.FromContext(ctx)

	if fileName == "" {
		return "", ErrEmptyFileName
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if items == nil {
		items = []json.RawMessage{}
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		log.Err(err).Str("func", "datasetFileStorage.Save").Str("file", fileName).Msg("error encoding dataset")
		return "", fmt.Errorf("%w: %w", ErrWritingDatasetFile, err)
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("func", "datasetFileStorage.Save").Str("dir", s.dir).Msg("error creating output directory")
		return "", fmt.Errorf("%w: %w", ErrWritingDatasetFile, err)
	}

	target := filepath.Join(s.dir, fileName)
	if err = writeFileAtomic(target, payload); err != nil {
		log.Err(err).Str("func", "datasetFileStorage.Save").Str("file", target).Msg("error writing dataset file")
		return "", fmt.Errorf("%w: %w", ErrWritingDatasetFile, err)
	}

	return target, nil
}

func writeFileAtomic(path string, payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
