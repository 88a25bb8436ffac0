// Package urlmanifest rewrites the JSON url manifests exchanged with Conan clients.
package urlmanifest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/conanhost/internal/boundaries/out"
	"github.com/bnema/conanhost/internal/domain"
	"github.com/bnema/conanhost/pkg/validation"
)

// Rewriter implements out.URLManifestRewriter.
type Rewriter struct{}

var _ out.URLManifestRewriter = Rewriter{}

// New returns a manifest rewriter.
func New() Rewriter {
	return Rewriter{}
}

// RelativeKeys reads a manifest keyed by file name and maps each key to
// prefix+key. The client's values (file sizes) are discarded.
func (Rewriter) RelativeKeys(prefix string, r io.Reader) (string, error) {
	var manifest map[string]json.RawMessage
	if err := decode(r, &manifest); err != nil {
		return "", err
	}

	result := make(map[string]string, len(manifest))
	for name := range manifest {
		if err := validation.ValidateFileName(name); err != nil {
			return "", fmt.Errorf("%w: key %q: %v", domain.ErrInvalidManifest, name, err)
		}
		result[name] = prefix + name
	}
	return encode(result)
}

// AbsoluteValues roots every relative value of a stored manifest at baseURL.
func (Rewriter) AbsoluteValues(baseURL string, r io.Reader) (string, error) {
	var manifest map[string]string
	if err := decode(r, &manifest); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(baseURL, "/")
	result := make(map[string]string, len(manifest))
	for name, value := range manifest {
		result[name] = base + "/" + strings.TrimPrefix(value, "/")
	}
	return encode(result)
}

func decode(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}
	return nil
}

func encode(v map[string]string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	return string(data), nil
}
