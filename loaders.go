package intl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// loadMessageFile reads one catalog file, picking the decoder from the
// extension. Catalogs are nested mappings of message id to template string or
// plural-form mapping.
func loadMessageFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("intl: read %s: %w", path, err)
	}

	catalog, err := decodeCatalog(path, data)
	if err != nil {
		return nil, fmt.Errorf("intl: decode %s: %w", path, err)
	}
	return catalog, nil
}

func decodeCatalog(path string, data []byte) (map[string]any, error) {
	catalog := make(map[string]any)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &catalog); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	return normalizeCatalog(catalog), nil
}

// normalizeCatalog rewrites decoder-specific nested map types into
// map[string]any so dotted-path lookup works uniformly.
func normalizeCatalog(catalog map[string]any) map[string]any {
	out := make(map[string]any, len(catalog))
	for key, value := range catalog {
		out[key] = normalizeCatalogValue(value)
	}
	return out
}

func normalizeCatalogValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeCatalog(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[fmt.Sprint(key)] = normalizeCatalogValue(inner)
		}
		return out
	default:
		return value
	}
}

// mergeCatalog deep-merges src into dst so catalogs loaded from several files
// can share namespaces. Leaf values from src overwrite dst.
func mergeCatalog(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeCatalog(dstMap, srcMap)
			continue
		}
		dst[key] = normalizeCatalogValue(value)
	}
}
