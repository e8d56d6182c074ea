// Package media stores evidence photos and hands back the URL they are served from.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"olive/config"
)

var logger = log.New("media")

var ErrNotDataURL = errors.New("not a data URL")

type Store interface {
	// Put writes data under a fresh object key and returns its public URL.
	Put(ctx context.Context, contentType string, data []byte) (string, error)
}

// Open picks GCS when a bucket is configured, the local directory otherwise.
func Open(ctx context.Context, cfg config.AppConfig) (Store, error) {
	if cfg.GCSBucket != "" {
		logger.Infof("media: gcs bucket %s", cfg.GCSBucket)
		return NewGCS(ctx, cfg.GCSBucket)
	}
	logger.Infof("media: local dir %s served at %s", cfg.MediaDir, cfg.MediaBaseURL)
	return NewLocal(cfg.MediaDir, cfg.MediaBaseURL)
}

// DecodeDataURL splits "data:image/jpeg;base64,...." into its payload and content type.
func DecodeDataURL(s string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, "", ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, "", ErrNotDataURL
	}
	ct := strings.TrimSuffix(meta, ";base64")
	if ct == "" {
		ct = "application/octet-stream"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return data, ct, nil
}

// objectKey yields evidence/2026/10/<uuid>.<ext>.
func objectKey(contentType string, now time.Time) string {
	ext := ".bin"
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		ext = exts[0]
	}
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	}
	return path.Join("evidence", now.Format("2006/01"), uuid.NewString()+ext)
}
