package storage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	DeviceID     string
	DeviceTypeID string
	BuildingID   string
	Name         string

	Search string

	IncludeDeleted bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "created_on"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}

	return offsetLimit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.DeviceTypeID != "" {
		args["device_type_id"] = c.DeviceTypeID
	}
	if c.BuildingID != "" {
		args["building_id"] = c.BuildingID
	}
	if c.Name != "" {
		args["name"] = c.Name
	}
	if c.Search != "" {
		args["search"] = "%" + c.Search + "%"
	}

	return args
}

// Where builds the row filter for the devices table. Each table gets its
// own builder because the searchable columns differ between them.
func (c Condition) Where() string {
	where := []string{}

	if c.DeviceID != "" {
		where = append(where, "device_id = @device_id")
	}

	if c.DeviceTypeID != "" {
		where = append(where, "device_type_id = @device_type_id")
	}

	if c.BuildingID != "" {
		where = append(where, "data -> 'location' ->> 'buildingID' = @building_id")
	}

	if c.Search != "" {
		where = append(where, "(device_id ILIKE @search OR data ->> 'deviceTag' ILIKE @search OR data ->> 'manufacturer' ILIKE @search)")
	}

	return c.finish(where)
}

// DeviceTypeWhere builds the row filter for the device_types table.
func (c Condition) DeviceTypeWhere() string {
	where := []string{}

	if c.DeviceTypeID != "" {
		where = append(where, "device_type_id = @device_type_id")
	}

	if c.Name != "" {
		where = append(where, "name = @name")
	}

	if c.Search != "" {
		where = append(where, "(name ILIKE @search OR data ->> 'description' ILIKE @search)")
	}

	return c.finish(where)
}

// BuildingWhere builds the row filter for the buildings table.
func (c Condition) BuildingWhere() string {
	where := []string{}

	if c.BuildingID != "" {
		where = append(where, "building_id = @building_id")
	}

	if c.Name != "" {
		where = append(where, "name = @name")
	}

	if c.Search != "" {
		where = append(where, "(name ILIKE @search OR data ->> 'number' ILIKE @search OR data ->> 'notes' ILIKE @search)")
	}

	return c.finish(where)
}

func (c Condition) finish(where []string) string {
	if !c.IncludeDeleted {
		where = append(where, "deleted = FALSE")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

var re = regexp.MustCompile(`[^a-zA-ZåäöÅÄÖ0-9 \-_,;().]+|[%]`)

func WithSearch(s string) ConditionFunc {
	return func(c *Condition) *Condition {
		s = re.ReplaceAllString(s, "")
		c.Search = strings.TrimSpace(s)
		return c
	}
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithDeviceTypeID(deviceTypeID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceTypeID = deviceTypeID
		return c
	}
}

func WithBuildingID(buildingID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.BuildingID = buildingID
		return c
	}
}

func WithName(name string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Name = name
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {

		switch strings.ToLower(sortBy) {
		case "device_id":
			c.sortBy = "device_id"
		case "device_type_id":
			c.sortBy = "device_type_id"
		case "name":
			c.sortBy = "name"
		case "modified":
			fallthrough
		case "modified_on":
			c.sortBy = "modified_on"
		case "created":
			fallthrough
		case "created_on":
			c.sortBy = "created_on"
		}

		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithDeleted() ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncludeDeleted = true
		return c
	}
}
