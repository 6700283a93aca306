// Package storage sube objetos al bucket del proveedor hosteado y emite su
// URL pública (patrón upload-then-read-URL de las imágenes de banners).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// BucketClient cliente mínimo del API de storage del proveedor hosteado.
type BucketClient struct {
	baseURL    string
	bucket     string
	serviceKey string
	http       *http.Client
}

// NewBucketClient construye el cliente de storage.
func NewBucketClient(baseURL, bucket, serviceKey string) *BucketClient {
	return &BucketClient{
		baseURL:    baseURL,
		bucket:     bucket,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sube el objeto (sobrescribiendo si existe) y devuelve la URL pública.
func (c *BucketClient) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("storage respondió %d: %s", resp.StatusCode, string(b))
	}
	return c.PublicURL(objectPath), nil
}

// PublicURL devuelve la URL pública de un objeto del bucket.
func (c *BucketClient) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, objectPath)
}
