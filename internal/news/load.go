package news

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://blink/fixtures.json"

// ErrInvalidFixtures is returned for fixture data that fails validation.
var ErrInvalidFixtures = errors.New("invalid fixtures")

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// LoadFile reads and validates a JSON fixtures file.
func LoadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	src, err := Parse(data)
	if err != nil {
		return Source{}, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return src, nil
}

// Parse validates data against the fixtures schema and decodes it. IDs must
// be unique within the news list and within the saved list.
func Parse(data []byte) (Source, error) {
	schema, err := fixturesSchema()
	if err != nil {
		return Source{}, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Source{}, fmt.Errorf("%w: parse JSON: %v", ErrInvalidFixtures, err)
	}
	if err := schema.Validate(doc); err != nil {
		return Source{}, fmt.Errorf("%w: %v", ErrInvalidFixtures, err)
	}

	var src Source
	if err := json.Unmarshal(data, &src); err != nil {
		return Source{}, fmt.Errorf("%w: decode: %v", ErrInvalidFixtures, err)
	}
	if err := checkUniqueIDs("news", src.News); err != nil {
		return Source{}, err
	}
	if err := checkUniqueIDs("saved", Items(src.Saved)); err != nil {
		return Source{}, err
	}
	return src, nil
}

// Marshal renders src in the fixtures file format.
func Marshal(src Source) ([]byte, error) {
	return json.MarshalIndent(src, "", "  ")
}

func checkUniqueIDs(list string, items []Item) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			return fmt.Errorf("%w: duplicate id %q in %s", ErrInvalidFixtures, it.ID, list)
		}
		seen[it.ID] = true
	}
	return nil
}

func fixturesSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse fixtures schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add fixtures schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile fixtures schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
