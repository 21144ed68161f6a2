package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanesPachon/Stockia/internal/infrastructure/storage"
	"github.com/JuanesPachon/Stockia/pkg/config"
)

func newTestStorage(srvURL string) *storage.SupabaseStorage {
	return storage.NewSupabaseStorage(config.StorageConfig{
		SupabaseURL: srvURL,
		SupabaseKey: "test-key",
		Bucket:      "stockia_files",
	})
}

func TestUpload_GeneraPathYEnviaHeaders(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	st := newTestStorage(srv.URL)
	path, err := st.Upload(context.Background(), "foto.png", []byte("contenido"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, "-foto.png"), "el path conserva el nombre original tras el prefijo")
	assert.True(t, st.IsGeneratedPath(path), "el path generado debe reconocerse como propio")

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Contains(t, gotPath, "/storage/v1/object/stockia_files/")
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, []byte("contenido"), gotBody)
}

func TestUpload_ErrorDelServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	st := newTestStorage(srv.URL)
	_, err := st.Upload(context.Background(), "foto.png", []byte("x"))
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	st := newTestStorage(srv.URL)
	require.NoError(t, st.Remove(context.Background(), "abc.png"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestIsGeneratedPath(t *testing.T) {
	st := newTestStorage("http://localhost")

	assert.True(t, st.IsGeneratedPath("0e8dca7f-1f2e-4b3a-9c4d-5e6f7a8b9c0d-foto.png"))
	assert.False(t, st.IsGeneratedPath("foto.png"))
	assert.False(t, st.IsGeneratedPath("https://cdn.example.com/foto.png"))
	assert.False(t, st.IsGeneratedPath(""))
}
