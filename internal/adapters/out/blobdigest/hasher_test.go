package blobdigest

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/conanhost/internal/domain"
)

func TestHasher_ComputesConanSet(t *testing.T) {
	h, err := New(domain.HashAlgorithms)
	require.NoError(t, err)

	_, err = io.Copy(h, strings.NewReader("hello world"))
	require.NoError(t, err)

	info := h.Info()
	assert.Equal(t, int64(11), info.Size)
	assert.Equal(t, domain.BlobRef("sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"), info.Ref)
	assert.Equal(t, map[domain.HashAlgorithm]string{
		domain.HashSHA1:   "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed",
		domain.HashSHA256: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		domain.HashMD5:    "5eb63bbbe01eeed093cb22bb8f5acdc3",
	}, info.Hashes)
}

func TestHasher_RefWithoutSHA256Requested(t *testing.T) {
	h, err := New([]domain.HashAlgorithm{domain.HashMD5})
	require.NoError(t, err)

	_, _ = h.Write([]byte("hello world"))

	info := h.Info()
	assert.Equal(t, domain.BlobRef("sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"), info.Ref)
	assert.Len(t, info.Hashes, 1)
}

func TestHasher_EmptyInput(t *testing.T) {
	h, err := New(domain.HashAlgorithms)
	require.NoError(t, err)

	info := h.Info()
	assert.Equal(t, int64(0), info.Size)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", info.Hashes[domain.HashMD5])
}

func TestNew_UnsupportedAlgorithm(t *testing.T) {
	_, err := New([]domain.HashAlgorithm{"crc32"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported hash algorithm")
}

func TestParseRef(t *testing.T) {
	d, err := ParseRef("sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9")

	require.NoError(t, err)
	assert.Equal(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", d.Encoded())
}

func TestParseRef_Invalid(t *testing.T) {
	refs := []domain.BlobRef{
		"",
		"sha256:../../etc/passwd",
		"sha256:abc",
		"sha512:cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
	}

	for _, ref := range refs {
		_, err := ParseRef(ref)
		assert.ErrorIs(t, err, domain.ErrBlobNotFound, "ref %q", ref)
	}
}
