package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/resmaker/internal/core/resource"
	"github.com/example/resmaker/internal/ports/secondary"
)

// descriptionDocument is the on-disk shape of a resource description.
type descriptionDocument struct {
	FileName    string        `yaml:"fileName" json:"fileName"`
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description" json:"description"`
	Keys        []keyDocument `yaml:"keys" json:"keys"`
}

type keyDocument struct {
	Name          string `yaml:"name" json:"name"`
	Description   string `yaml:"description" json:"description"`
	PrimaryText   string `yaml:"primaryText" json:"primaryText"`
	SecondaryText string `yaml:"secondaryText" json:"secondaryText"`
}

// DescriptionStore implements secondary.DescriptionStore for YAML and JSON files.
// The format follows the file extension: .json is JSON, anything else YAML.
type DescriptionStore struct{}

// NewDescriptionStore creates a new description store.
func NewDescriptionStore() *DescriptionStore {
	return &DescriptionStore{}
}

// Load reads a description document.
func (s *DescriptionStore) Load(ctx context.Context, path string) (resource.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return resource.Description{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc descriptionDocument
	if isJSON(path) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	}
	if err != nil {
		return resource.Description{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc.toDescription(), nil
}

// Save writes a description document in the format implied by path.
func (s *DescriptionStore) Save(ctx context.Context, path string, desc resource.Description) error {
	doc := documentFrom(desc)

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	} else {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("failed to encode description: %w", err)
	}

	tmp, err := stage(ctx, filepath.Dir(path), data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func (d descriptionDocument) toDescription() resource.Description {
	desc := resource.Description{
		FileName:         d.FileName,
		GroupName:        d.Name,
		GroupDescription: d.Description,
		Keys:             make([]resource.Key, len(d.Keys)),
	}
	for i, k := range d.Keys {
		desc.Keys[i] = resource.Key{
			Name:          k.Name,
			Description:   k.Description,
			PrimaryText:   k.PrimaryText,
			SecondaryText: k.SecondaryText,
		}
	}
	return desc
}

func documentFrom(desc resource.Description) descriptionDocument {
	doc := descriptionDocument{
		FileName:    desc.FileName,
		Name:        desc.GroupName,
		Description: desc.GroupDescription,
		Keys:        make([]keyDocument, len(desc.Keys)),
	}
	for i, k := range desc.Keys {
		doc.Keys[i] = keyDocument{
			Name:          k.Name,
			Description:   k.Description,
			PrimaryText:   k.PrimaryText,
			SecondaryText: k.SecondaryText,
		}
	}
	return doc
}

// Ensure DescriptionStore implements the interface.
var _ secondary.DescriptionStore = (*DescriptionStore)(nil)
