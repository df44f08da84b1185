package helper

import (
	"context"
	"log"
	"mime"
	"mime/multipart"
	"path/filepath"
	"sync"
)

// BlobService is what the controllers depend on. Images are re-encoded
// as WebP on the way in; other files are stored as-is.
type BlobService interface {
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
	UploadFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
	DeleteByURL(ctx context.Context, publicURL string) error
}

type ossBlobService struct {
	svc *OSSService
	opt WebPOptions
}

var (
	blobOnce sync.Once
	blobSvc  BlobService
	blobErr  error
)

// Blob returns the process-wide blob service, connecting on first use.
func Blob() (BlobService, error) {
	blobOnce.Do(func() {
		svc, err := NewOSSServiceFromEnv(getEnv("OSS_PREFIX"))
		if err != nil {
			blobErr = err
			return
		}
		blobSvc = &ossBlobService{svc: svc, opt: defaultWebPOptionsFromEnv()}
	})
	return blobSvc, blobErr
}

// SetBlob overrides the process-wide blob service. Used by tests.
func SetBlob(b BlobService) {
	blobOnce.Do(func() {})
	blobSvc, blobErr = b, nil
}

func (s *ossBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	data, err := readFormFile(fh)
	if err != nil {
		return "", err
	}
	converted, err := convertToWebP(data, fh.Filename, s.opt)
	if err != nil {
		return "", err
	}
	return s.svc.UploadBytes(ctx, dir, webpFilename(fh.Filename), "image/webp", converted)
}

func (s *ossBlobService) UploadFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	data, err := readFormFile(fh)
	if err != nil {
		return "", err
	}
	ct := mime.TypeByExtension(filepath.Ext(fh.Filename))
	return s.svc.UploadBytes(ctx, dir, fh.Filename, ct, data)
}

func (s *ossBlobService) DeleteByURL(ctx context.Context, publicURL string) error {
	return s.svc.DeleteByPublicURL(ctx, publicURL)
}

// DeleteBlobQuietly removes a stored blob after its owning row is gone.
// Storage failures are logged and never surfaced to the caller.
func DeleteBlobQuietly(ctx context.Context, publicURL string) {
	if publicURL == "" {
		return
	}
	b, err := Blob()
	if err != nil {
		log.Printf("[WARN] blob cleanup skipped (no storage): %v", err)
		return
	}
	if err := b.DeleteByURL(ctx, publicURL); err != nil {
		log.Printf("[WARN] blob cleanup failed for %s: %v", publicURL, err)
	}
}
