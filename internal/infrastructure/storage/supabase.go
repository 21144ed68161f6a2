// Package storage implementa el colaborador de almacenamiento de objetos
// (Supabase Storage) para las imágenes de productos, vía su API REST.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JuanesPachon/Stockia/pkg/config"
)

// Los objetos generados por la app llevan un prefijo UUID; solo esos se
// eliminan al reemplazar la imagen de un producto.
var generatedPathPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}-`)

// SupabaseStorage cliente del API de Supabase Storage.
type SupabaseStorage struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
}

// NewSupabaseStorage construye el cliente de almacenamiento.
func NewSupabaseStorage(cfg config.StorageConfig) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL: strings.TrimRight(cfg.SupabaseURL, "/"),
		apiKey:  cfg.SupabaseKey,
		bucket:  cfg.Bucket,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sube el buffer al bucket bajo un path generado "<uuid>-<filename>" y
// devuelve ese path para persistirlo como imageUrl.
func (s *SupabaseStorage) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	objectPath := uuid.NewString() + "-" + filename

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.objectURL(objectPath), bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("crear petición de subida: %w", err)
	}
	s.authorize(req)
	req.Header.Set("Content-Type", contentTypeFor(filename))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("subir imagen: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("subir imagen: status %d: %s", resp.StatusCode, body)
	}
	return objectPath, nil
}

// Remove elimina un objeto del bucket.
func (s *SupabaseStorage) Remove(ctx context.Context, objectPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(objectPath), nil)
	if err != nil {
		return fmt.Errorf("crear petición de borrado: %w", err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("borrar imagen: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("borrar imagen: status %d", resp.StatusCode)
	}
	return nil
}

// IsGeneratedPath indica si el path tiene la forma que genera Upload.
func (s *SupabaseStorage) IsGeneratedPath(objectPath string) bool {
	return generatedPathPattern.MatchString(objectPath)
}

func (s *SupabaseStorage) objectURL(objectPath string) string {
	return s.baseURL + "/storage/v1/object/" + url.PathEscape(s.bucket) + "/" + url.PathEscape(objectPath)
}

func (s *SupabaseStorage) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("apikey", s.apiKey)
}

// contentTypeFor deriva el content type de la extensión del archivo.
func contentTypeFor(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "application/octet-stream"
	}
	return "image/" + strings.ToLower(ext)
}
