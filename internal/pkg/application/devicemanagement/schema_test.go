package devicemanagement

import (
	"testing"

	"github.com/matryer/is"
	"github.com/openfms/device-mgmt/pkg/types"
)

func TestAddFieldMintsUniqueIDs(t *testing.T) {
	is := is.New(t)

	schema := NewSchema(nil)

	a, err := schema.AddField("Max Temperature")
	is.NoErr(err)

	b, err := schema.AddField("Capacity")
	is.NoErr(err)

	is.True(a != b)
	is.Equal(schema.Fields()[a], "Max Temperature")
	is.Equal(schema.Fields()[b], "Capacity")
}

func TestAddFieldRejectsDuplicateName(t *testing.T) {
	is := is.New(t)

	schema := NewSchema(nil)

	_, err := schema.AddField("Pressure")
	is.NoErr(err)

	_, err = schema.AddField("Pressure")
	is.Equal(err, ErrFieldNameTaken)
}

func TestRenameFieldKeepsID(t *testing.T) {
	is := is.New(t)

	schema := NewSchema(nil)
	id, _ := schema.AddField("Temp")

	err := schema.RenameField(id, "Max Temperature")
	is.NoErr(err)

	is.Equal(schema.Fields()[id], "Max Temperature")
	is.Equal(len(schema.Fields()), 1)
}

func TestRenameFieldRejectsCollision(t *testing.T) {
	is := is.New(t)

	schema := NewSchema(nil)
	id, _ := schema.AddField("Temp")
	schema.AddField("Capacity")

	err := schema.RenameField(id, "Capacity")
	is.Equal(err, ErrFieldNameTaken)
	is.Equal(schema.Fields()[id], "Temp")
}

func TestRenameUnknownField(t *testing.T) {
	is := is.New(t)

	schema := NewSchema(types.FieldMap{"u1": "Temp"})

	err := schema.RenameField("nosuchid", "Capacity")
	is.Equal(err, ErrFieldNotFound)
}

func TestRemoveField(t *testing.T) {
	is := is.New(t)

	schema := NewSchema(types.FieldMap{"u1": "Temp", "u2": "Capacity"})

	err := schema.RemoveField("u1")
	is.NoErr(err)

	is.Equal(len(schema.Fields()), 1)
	is.Equal(schema.Fields()["u2"], "Capacity")

	err = schema.RemoveField("u1")
	is.Equal(err, ErrFieldNotFound)
}

func TestNewSchemaCopiesItsInput(t *testing.T) {
	is := is.New(t)

	original := types.FieldMap{"u1": "Temp"}
	schema := NewSchema(original)

	schema.RenameField("u1", "Max Temperature")

	is.Equal(original["u1"], "Temp")
}

func TestMergeCarriesRenamesDeletesAndAdditions(t *testing.T) {
	is := is.New(t)

	// u1 renamed, u2 omitted, one addition under a fresh id
	merged := mergeFieldMaps(types.FieldMap{"u1": "Boiler Type"}, []string{"Capacity"})

	is.Equal(len(merged), 2)
	is.Equal(merged["u1"], "Boiler Type")

	_, stillThere := merged["u2"]
	is.True(!stillThere)

	for id, name := range merged {
		if id == "u1" {
			continue
		}
		is.Equal(name, "Capacity")
	}
}

func TestMergeWithEmptyMapDeletesEverything(t *testing.T) {
	is := is.New(t)

	merged := mergeFieldMaps(types.FieldMap{}, nil)

	is.Equal(len(merged), 0)
}

func TestMergeSwappedNamesIsLegal(t *testing.T) {
	is := is.New(t)

	merged := mergeFieldMaps(types.FieldMap{"u1": "B", "u2": "A"}, nil)

	is.Equal(merged["u1"], "B")
	is.Equal(merged["u2"], "A")
	is.NoErr(CheckDeviceType(types.DeviceType{Fields: merged}))
}

func TestFieldMapNamesAreSorted(t *testing.T) {
	is := is.New(t)

	fields := types.FieldMap{"u3": "c", "u1": "a", "u2": "b"}

	is.Equal(fields.Names(), []string{"a", "b", "c"})
}
