package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the declarative, on-disk form of a schema: a YAML file
// naming every store and entity coredb should register at startup, the
// same "load one YAML file into a typed config struct once at process
// start" shape as a docker-compose-style config loader.
//
// Unlike StoreDef/EntityDef, a Document carries no Codec — Go codecs
// aren't representable in YAML, so LoadDocument takes the caller's
// path-to-Codec map alongside the parsed Document.
type Document struct {
	Stores   []DocumentStore  `yaml:"stores"`
	Entities []DocumentEntity `yaml:"entities"`
}

type DocumentStore struct {
	Path     string `yaml:"path"`
	Kind     string `yaml:"kind"` // "data" or "index"
	MemoryID uint32 `yaml:"memory_id"`
}

type DocumentIndex struct {
	ID        uint64   `yaml:"id"`
	StorePath string   `yaml:"store_path"`
	Fields    []string `yaml:"fields"`
	Unique    bool     `yaml:"unique"`
}

type DocumentEntity struct {
	Path         string          `yaml:"path"`
	StorePath    string          `yaml:"store_path"`
	EntityID     uint64          `yaml:"entity_id"`
	PKField      string          `yaml:"pk_field"`
	SortKeyChain []string        `yaml:"sort_key_chain"`
	Indexes      []DocumentIndex `yaml:"indexes"`
}

// ParseDocument parses raw YAML bytes into a Document. It performs no
// registry validation; call LoadDocument for that.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema document: %w", err)
	}
	return &doc, nil
}

// LoadDocument registers every store and entity named in doc against reg,
// in declaration order (stores before entities, so an entity's
// RegisterStore lookups succeed). codecs supplies the Go Codec for each
// entity path; an entity with no matching codec is an error since coredb
// has no reflective fallback serializer.
func LoadDocument(reg *Registry, doc *Document, codecs map[string]Codec) error {
	for _, s := range doc.Stores {
		kind, err := parseStoreKind(s.Kind)
		if err != nil {
			return fmt.Errorf("store %q: %w", s.Path, err)
		}
		if err := reg.RegisterStore(StoreDef{Path: s.Path, Kind: kind, MemoryID: s.MemoryID}); err != nil {
			return err
		}
	}

	for _, e := range doc.Entities {
		codec, ok := codecs[e.Path]
		if !ok {
			return fmt.Errorf("entity %q: no codec supplied", e.Path)
		}
		indexes := make([]IndexDef, 0, len(e.Indexes))
		for _, idx := range e.Indexes {
			indexes = append(indexes, IndexDef{
				ID:        idx.ID,
				StorePath: idx.StorePath,
				Fields:    idx.Fields,
				Unique:    idx.Unique,
			})
		}
		def := EntityDef{
			Path:         e.Path,
			StorePath:    e.StorePath,
			EntityID:     e.EntityID,
			PKField:      e.PKField,
			SortKeyChain: e.SortKeyChain,
			Indexes:      indexes,
		}
		if err := reg.Register(def, codec); err != nil {
			return err
		}
	}
	return nil
}

func parseStoreKind(s string) (StoreKind, error) {
	switch s {
	case "data":
		return StoreKindData, nil
	case "index":
		return StoreKindIndex, nil
	default:
		return 0, fmt.Errorf("unknown store kind %q (want \"data\" or \"index\")", s)
	}
}
