package out

import "io"

// URLManifestRewriter rewrites the values of Conan upload/download url manifests.
// A manifest is a JSON object keyed by file name.
type URLManifestRewriter interface {
	// RelativeKeys maps every file name key to prefix+key.
	RelativeKeys(prefix string, r io.Reader) (string, error)

	// AbsoluteValues roots every relative value at baseURL.
	AbsoluteValues(baseURL string, r io.Reader) (string, error)
}
