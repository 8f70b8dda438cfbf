package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "https://cdn.clinica.pe", publicBase(S3Config{PublicURL: "https://cdn.clinica.pe/"}))
	assert.Equal(t, "http://minio:9000/fotos", publicBase(S3Config{Endpoint: "http://minio:9000", Bucket: "fotos"}))
	assert.Equal(t, "https://fotos.s3.us-east-1.amazonaws.com", publicBase(S3Config{Bucket: "fotos", Region: "us-east-1"}))
}

func TestS3Store_PutUsesPathStyle(t *testing.T) {
	var gotPath, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewS3Store(S3Config{
		Bucket:    "fotos",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "key",
		SecretKey: "secret",
	})

	url, err := store.Put(context.Background(), "personas/1/a.webp", "image/webp", []byte("RIFF"))
	require.NoError(t, err)

	assert.Equal(t, "/fotos/personas/1/a.webp", gotPath)
	assert.Equal(t, "image/webp", gotType)
	assert.Equal(t, srv.URL+"/fotos/personas/1/a.webp", url)
}
