package devicemanagement

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/openfms/device-mgmt/pkg/types"
)

var ErrFieldNotFound = fmt.Errorf("field not found")
var ErrFieldNameTaken = fmt.Errorf("field name already in use")

// newFieldID mints the opaque identifier for one custom field slot. Ids are
// write-once: a field keeps its id across renames and the id is never
// reused after the field is removed.
func newFieldID() string {
	return uuid.NewString()
}

// Schema holds the custom field mapping of one device type.
type Schema struct {
	fields types.FieldMap
}

func NewSchema(fields types.FieldMap) *Schema {
	s := &Schema{fields: types.FieldMap{}}
	for id, name := range fields {
		s.fields[id] = name
	}
	return s
}

func (s *Schema) AddField(name string) (string, error) {
	if slices.Contains(s.fields.Names(), name) {
		return "", ErrFieldNameTaken
	}

	id := newFieldID()
	s.fields[id] = name

	return id, nil
}

func (s *Schema) RenameField(id, newName string) error {
	if _, ok := s.fields[id]; !ok {
		return ErrFieldNotFound
	}

	for other, name := range s.fields {
		if other != id && name == newName {
			return ErrFieldNameTaken
		}
	}

	s.fields[id] = newName

	return nil
}

func (s *Schema) RemoveField(id string) error {
	if _, ok := s.fields[id]; !ok {
		return ErrFieldNotFound
	}

	delete(s.fields, id)

	return nil
}

func (s *Schema) Names() []string {
	return s.fields.Names()
}

func (s *Schema) Fields() types.FieldMap {
	fields := types.FieldMap{}
	for id, name := range s.fields {
		fields[id] = name
	}
	return fields
}

// mergeFieldMaps computes the field mapping resulting from a device type
// update. Existing ids omitted from updated are deleted, ids present in
// updated keep their id under a possibly new name, and every name in
// newNames gets a freshly minted id. Name uniqueness is checked on the
// merged result, not here, so the whole update can be rejected without
// partial application.
func mergeFieldMaps(updated types.FieldMap, newNames []string) types.FieldMap {
	merged := types.FieldMap{}

	for id, name := range updated {
		merged[id] = name
	}

	for _, name := range newNames {
		merged[newFieldID()] = name
	}

	return merged
}
