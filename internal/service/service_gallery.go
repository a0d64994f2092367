// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package service

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/motelbelavista/website/internal/config"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/models"
)

// thumbSuffix marks the pre-generated 600px-wide variant of a gallery photo.
const thumbSuffix = "-600"

// galleryService lists the apartment photo gallery straight from disk. The
// photo directories are maintained out of band (rsync from the photographer's
// exports), so there is no database involvement.
type galleryService struct {
	files  config.Files
	logger *logger.Logger
}

// NewGalleryService constructs a GalleryService over the configured photo
// directories.
func NewGalleryService(files config.Files, logger *logger.Logger) GalleryService {
	return &galleryService{
		files:  files,
		logger: logger,
	}
}

// GalleryImages scans the photo directory and returns the gallery in random
// order. The web-optimized directory wins when configured; thumbnails are
// paired by the "-600" stem suffix when present.
func (g *galleryService) GalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	log := logger.FromContext(ctx)

	dir, webPrefix := g.files.PhotosWebDir, "/fotos-apartamentos-web"
	if dir == "" {
		dir, webPrefix = g.files.PhotosDir, "/fotos-apartamentos"
	}
	if dir == "" {
		return []models.GalleryImage{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Err(err).Str("dir", dir).Msg("reading gallery directory ended with error")
		return nil, fmt.Errorf("reading gallery directory ended with error: %w", err)
	}

	thumbs := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isGalleryImage(entry.Name()) {
			continue
		}
		if stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())); strings.HasSuffix(stem, thumbSuffix) {
			thumbs[entry.Name()] = true
			continue
		}
		names = append(names, entry.Name())
	}

	images := make([]models.GalleryImage, 0, len(names))
	for _, name := range names {
		src := path.Join(webPrefix, name)

		img := models.GalleryImage{Src: src, Thumb: src}
		ext := filepath.Ext(name)
		if thumbName := strings.TrimSuffix(name, ext) + thumbSuffix + ext; thumbs[thumbName] {
			thumb := path.Join(webPrefix, thumbName)
			img.Thumb = thumb
			img.SrcSet = fmt.Sprintf("%s 600w, %s 1200w", thumb, src)
		}

		images = append(images, img)
	}

	// shuffled so repeat visitors see a different gallery order
	rand.Shuffle(len(images), func(i, j int) {
		images[i], images[j] = images[j], images[i]
	})

	return images, nil
}

func isGalleryImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}
