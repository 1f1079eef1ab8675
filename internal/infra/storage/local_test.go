package storage

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSlug(t *testing.T) {
	assert.Equal(t, "my-cv-final", MakeSlug("My CV (final)"))
	assert.Equal(t, "hero-image", MakeSlug("hero__image"))
	assert.Equal(t, "file", MakeSlug("***"))
}

func TestObjectName_KeepsExtension(t *testing.T) {
	name := ObjectName("../../Avatar Photo.PNG")
	assert.True(t, strings.HasPrefix(name, "avatar-photo-"), name)
	assert.True(t, strings.HasSuffix(name, ".png"), name)
	assert.NotContains(t, name, "/")
}

func TestLocal_Save(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "http://example.test/")
	require.NoError(t, err)

	obj, err := l.Save("profile-images", "me.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, int64(len("jpeg-bytes")), obj.Size)
	assert.True(t, strings.HasPrefix(obj.URL, "http://example.test/uploads/profile-images/"), obj.URL)

	data, err := os.ReadFile(obj.Path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestLocal_SaveUnknownBucket(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "http://example.test")
	require.NoError(t, err)

	_, err = l.Save("secrets", "x.txt", strings.NewReader("x"))
	assert.True(t, errors.Is(err, ErrUnknownBucket))
}

func TestLocal_Remove(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "http://example.test")
	require.NoError(t, err)

	obj, err := l.Save("general-assets", "a.txt", strings.NewReader("a"))
	require.NoError(t, err)

	require.NoError(t, l.Remove(obj))
	assert.NoFileExists(t, obj.Path)
	assert.NoError(t, l.Remove(obj))
}
