package storage

import (
	"testing"

	"github.com/matryer/is"
)

func newCondition(conditions ...ConditionFunc) *Condition {
	c := &Condition{}
	for _, condition := range conditions {
		c = condition(c)
	}
	return c
}

func TestEmptyConditionMatchesNothingDeleted(t *testing.T) {
	is := is.New(t)

	c := newCondition()

	is.Equal(c.Where(), "deleted = FALSE")
}

func TestWhereWithDeletedOnly(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithDeleted())

	is.Equal(c.Where(), "TRUE")
}

func TestWhereCombinesConditions(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithDeviceID("dev-1"), WithDeviceTypeID("dt-1"))

	is.Equal(c.Where(), "device_id = @device_id AND device_type_id = @device_type_id AND deleted = FALSE")

	args := c.NamedArgs()
	is.Equal(args["device_id"], "dev-1")
	is.Equal(args["device_type_id"], "dt-1")
}

func TestDeviceTypeWhere(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithDeviceTypeID("dt-1"), WithName("Boiler"))

	is.Equal(c.DeviceTypeWhere(), "device_type_id = @device_type_id AND name = @name AND deleted = FALSE")

	args := c.NamedArgs()
	is.Equal(args["device_type_id"], "dt-1")
	is.Equal(args["name"], "Boiler")
}

func TestSearchClausesAreTableSpecific(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithSearch("boiler"))

	is.Equal(c.Where(), "(device_id ILIKE @search OR data ->> 'deviceTag' ILIKE @search OR data ->> 'manufacturer' ILIKE @search) AND deleted = FALSE")
	is.Equal(c.DeviceTypeWhere(), "(name ILIKE @search OR data ->> 'description' ILIKE @search) AND deleted = FALSE")
	is.Equal(c.BuildingWhere(), "(name ILIKE @search OR data ->> 'number' ILIKE @search OR data ->> 'notes' ILIKE @search) AND deleted = FALSE")
}

func TestBuildingWhere(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithBuildingID("b-1"))

	is.Equal(c.BuildingWhere(), "building_id = @building_id AND deleted = FALSE")
	is.Equal(c.NamedArgs()["building_id"], "b-1")
}

func TestSearchIsSanitizedAndWrapped(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithSearch("boiler%';--"))

	is.Equal(c.Search, "boiler;--")
	is.Equal(c.NamedArgs()["search"], "%boiler;--%")
}

func TestSortDefaults(t *testing.T) {
	is := is.New(t)

	c := newCondition()

	is.Equal(c.SortBy(), "created_on")
	is.Equal(c.SortOrder(), "ASC")
}

func TestSortByRejectsUnknownColumns(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithSortBy("data ->> 'secret'"), WithSortDesc(true))

	is.Equal(c.SortBy(), "created_on")
	is.Equal(c.SortOrder(), "DESC")
}

func TestOffsetLimit(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithOffset(20), WithLimit(10))

	is.Equal(c.OffsetLimit(), "OFFSET 20 LIMIT 10 ")
	is.Equal(c.Offset(), 20)
	is.Equal(c.Limit(), 10)
}
