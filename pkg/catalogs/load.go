package catalogs

import (
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/aitools/internal/embedded"
	"github.com/agentstation/aitools/pkg/constants"
	"github.com/agentstation/aitools/pkg/errors"
)

// document is the on-disk layout of a catalog file.
type document struct {
	Tools []Tool `yaml:"tools"`
}

// Parse builds a catalog from a YAML document of the form
//
//	tools:
//	  - id: 1
//	    name: ChatGPT
//	    category: Conversational AI
func Parse(data []byte) (*Catalog, error) {
	return parse(data, "")
}

func parse(data []byte, file string) (*Catalog, error) {
	var doc document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.WrapParse("yaml", file, err)
	}
	return New(doc.Tools...)
}

// Load reads and parses a catalog file from fsys.
func Load(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return parse(data, path)
}

// NewFromFile loads a catalog from a YAML file on disk.
func NewFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return parse(data, path)
}

// NewEmbedded loads the compiled-in seed catalog.
func NewEmbedded() (*Catalog, error) {
	cat, err := Load(embedded.FS, constants.EmbeddedCatalogPath)
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", "embedded", err)
	}
	return cat, nil
}
