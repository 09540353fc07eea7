package data

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// catalogFile: корневой документ YAML-каталога.
type catalogFile struct {
	Moves   []MoveDef    `yaml:"moves"`
	Species []SpeciesDef `yaml:"species"`
}

// ParseDefs декодирует сырые определения из YAML без валидации.
func ParseDefs(raw []byte) ([]MoveDef, []SpeciesDef, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return f.Moves, f.Species, nil
}

// DefaultDefs возвращает сырые определения встроенного каталога.
func DefaultDefs() ([]MoveDef, []SpeciesDef, error) {
	return ParseDefs(defaultCatalogYAML)
}

// ParseCatalog строит Catalog из YAML-документа.
func ParseCatalog(raw []byte) (*Catalog, error) {
	moves, species, err := ParseDefs(raw)
	if err != nil {
		return nil, err
	}
	return BuildCatalog(moves, species)
}

// LoadCatalog читает каталог из файла.
// При пустом path используется встроенный каталог.
func LoadCatalog(path string) (*Catalog, error) {
	raw := defaultCatalogYAML
	source := "embedded"
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
		source = path
	}

	c, err := ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", source, err)
	}

	slog.Info("loaded catalog",
		"source", source,
		"species", c.SpeciesCount(),
		"moves", c.MoveCount())
	return c, nil
}

// DefaultCatalog returns the embedded catalog. Panics if the embedded data is broken.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("data: embedded catalog: %v", err))
	}
	return c
}
