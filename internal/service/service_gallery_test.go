package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motelbelavista/website/internal/config"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/service"
	"github.com/motelbelavista/website/models"
)

func writeGalleryFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644))
	}
}

func galleryBySrc(images []models.GalleryImage) map[string]models.GalleryImage {
	out := make(map[string]models.GalleryImage, len(images))
	for _, img := range images {
		out[img.Src] = img
	}
	return out
}

func TestGalleryService_PairsThumbnails(t *testing.T) {
	dir := t.TempDir()
	writeGalleryFiles(t, dir,
		"luxo-1.jpg",
		"luxo-1-600.jpg", // thumbnail, must not appear as its own entry
		"master-2.webp",
		"notes.txt", // not an image
	)

	svc := service.NewGalleryService(config.Files{PhotosWebDir: dir}, logger.Nop())

	images, err := svc.GalleryImages(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 2)

	bySrc := galleryBySrc(images)

	withThumb, ok := bySrc["/fotos-apartamentos-web/luxo-1.jpg"]
	require.True(t, ok)
	assert.Equal(t, "/fotos-apartamentos-web/luxo-1-600.jpg", withThumb.Thumb)
	assert.Equal(t, "/fotos-apartamentos-web/luxo-1-600.jpg 600w, /fotos-apartamentos-web/luxo-1.jpg 1200w", withThumb.SrcSet)

	plain, ok := bySrc["/fotos-apartamentos-web/master-2.webp"]
	require.True(t, ok)
	assert.Equal(t, plain.Src, plain.Thumb)
	assert.Empty(t, plain.SrcSet)
}

func TestGalleryService_FallsBackToOriginalsDir(t *testing.T) {
	dir := t.TempDir()
	writeGalleryFiles(t, dir, "luxo-1.jpg")

	svc := service.NewGalleryService(config.Files{PhotosDir: dir}, logger.Nop())

	images, err := svc.GalleryImages(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "/fotos-apartamentos/luxo-1.jpg", images[0].Src)
}

func TestGalleryService_NoDirectoriesConfigured(t *testing.T) {
	svc := service.NewGalleryService(config.Files{}, logger.Nop())

	images, err := svc.GalleryImages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestGalleryService_MissingDirectoryIsAnError(t *testing.T) {
	svc := service.NewGalleryService(config.Files{PhotosWebDir: filepath.Join(t.TempDir(), "missing")}, logger.Nop())

	_, err := svc.GalleryImages(context.Background())
	assert.Error(t, err)
}
