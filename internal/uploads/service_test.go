package uploads

import (
	"context"
	"strings"
	"testing"

	"regive-backend/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	stored []string
}

func (f *fakeStorage) Store(ctx context.Context, publicID, fileName string, data []byte) (string, error) {
	f.stored = append(f.stored, publicID)
	return "https://cdn.example.com/" + publicID, nil
}

func TestStoreImages_NoFiles(t *testing.T) {
	s := &Service{Client: &fakeStorage{}}
	_, err := s.StoreImages(context.Background(), nil)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestStoreImages_TooMany(t *testing.T) {
	s := &Service{Client: &fakeStorage{}}
	files := make([]File, MaxFileCount+1)
	for i := range files {
		files[i] = File{Name: "a.jpg", Data: []byte("x")}
	}
	_, err := s.StoreImages(context.Background(), files)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestStoreImages_RejectsNonImage(t *testing.T) {
	s := &Service{Client: &fakeStorage{}}
	_, err := s.StoreImages(context.Background(), []File{{Name: "malware.exe", Data: []byte("x")}})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Only image files are allowed!", ve.Message)
}

func TestStoreImages_RejectsOversized(t *testing.T) {
	s := &Service{Client: &fakeStorage{}}
	_, err := s.StoreImages(context.Background(), []File{{Name: "big.png", Data: make([]byte, MaxFileSize+1)}})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestStoreImages_ReturnsURLsInOrder(t *testing.T) {
	storage := &fakeStorage{}
	s := &Service{Client: storage}
	urls, err := s.StoreImages(context.Background(), []File{
		{Name: "one.jpg", Data: []byte("a")},
		{Name: "two.webp", Data: []byte("b")},
	})
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.True(t, strings.HasSuffix(storage.stored[0], "-one"))
	assert.True(t, strings.HasSuffix(storage.stored[1], "-two"))
	assert.Equal(t, "https://cdn.example.com/"+storage.stored[0], urls[0])
}
