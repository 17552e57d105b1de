package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectURLCreateCopiesBytes(t *testing.T) {
	r := NewObjectURLRegistry(4)

	data := []byte("original")
	url, err := r.Create(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "blob:"))

	data[0] = 'X'
	stored, ok := r.Get(url)
	require.True(t, ok)
	assert.Equal(t, []byte("original"), stored, "registry must hold its own copy")
}

func TestObjectURLRegistryBound(t *testing.T) {
	r := NewObjectURLRegistry(2)

	_, err := r.Create([]byte("a"))
	require.NoError(t, err)
	second, err := r.Create([]byte("b"))
	require.NoError(t, err)

	_, err = r.Create([]byte("c"))
	assert.Error(t, err, "registry past its bound must refuse new handles")

	r.Revoke(second)
	_, err = r.Create([]byte("c"))
	assert.NoError(t, err, "revoking frees capacity")
}

func TestObjectURLRevokeUnknownIsNoop(t *testing.T) {
	r := NewObjectURLRegistry(2)
	r.Revoke("blob:does-not-exist")
	assert.Zero(t, r.Len())
}
