// Package blobdigest computes the content address and checksum set of blobs.
package blobdigest

import (
	"crypto/md5"  //nolint:gosec // md5 is part of the Conan checksum set
	"crypto/sha1" //nolint:gosec // sha1 is part of the Conan checksum set
	_ "crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/conanhost/internal/domain"
)

// Hasher is an io.Writer feeding every requested hash at once.
// The sha256 content address is always computed.
type Hasher struct {
	canonical  digest.Digester
	algorithms []domain.HashAlgorithm
	hashes     map[domain.HashAlgorithm]hash.Hash
	size       int64
}

// New returns a Hasher for the given algorithms.
func New(algorithms []domain.HashAlgorithm) (*Hasher, error) {
	h := &Hasher{
		canonical:  digest.Canonical.Digester(),
		algorithms: algorithms,
		hashes:     make(map[domain.HashAlgorithm]hash.Hash, len(algorithms)),
	}

	for _, alg := range algorithms {
		switch alg {
		case domain.HashSHA256:
			h.hashes[alg] = h.canonical.Hash()
		case domain.HashSHA1:
			h.hashes[alg] = sha1.New() //nolint:gosec
		case domain.HashMD5:
			h.hashes[alg] = md5.New() //nolint:gosec
		default:
			return nil, fmt.Errorf("unsupported hash algorithm %q", alg)
		}
	}

	return h, nil
}

// Write implements io.Writer.
func (h *Hasher) Write(p []byte) (int, error) {
	if _, ok := h.hashes[domain.HashSHA256]; !ok {
		h.canonical.Hash().Write(p)
	}
	for _, hh := range h.hashes {
		hh.Write(p)
	}
	h.size += int64(len(p))
	return len(p), nil
}

// Info returns the address, size and hashes of everything written so far.
func (h *Hasher) Info() domain.BlobInfo {
	hashes := make(map[domain.HashAlgorithm]string, len(h.algorithms))
	for _, alg := range h.algorithms {
		hashes[alg] = hex.EncodeToString(h.hashes[alg].Sum(nil))
	}
	return domain.BlobInfo{
		Ref:    domain.BlobRef(h.canonical.Digest().String()),
		Size:   h.size,
		Hashes: hashes,
	}
}

// ParseRef validates a blob reference and returns its digest.
func ParseRef(ref domain.BlobRef) (digest.Digest, error) {
	d, err := digest.Parse(string(ref))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", domain.ErrBlobNotFound, ref, err)
	}
	if d.Algorithm() != digest.Canonical {
		return "", fmt.Errorf("%w: %q: unsupported algorithm", domain.ErrBlobNotFound, ref)
	}
	return d, nil
}
