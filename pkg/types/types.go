package types

import (
	"slices"
	"time"
)

// FieldMap is the custom field mapping of a device type or device. On a
// device type the values are display names, on a device they are the
// stored field values. Keys are opaque field identifiers minted when a
// field is first added and never reused.
type FieldMap map[string]string

func (f FieldMap) Names() []string {
	names := make([]string, 0, len(f))
	for _, n := range f {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

type DeviceType struct {
	DeviceTypeID string   `json:"deviceTypeID"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	Fields       FieldMap `json:"fields"`

	// Count is the number of devices referencing this device type. It is
	// computed at read time and never persisted.
	Count int64 `json:"count"`

	LastModified LastModified `json:"lastModified"`
}

type Device struct {
	DeviceID     string `json:"deviceID"`
	DeviceTypeID string `json:"deviceTypeID"`

	DeviceTag        string `json:"deviceTag,omitempty"`
	Manufacturer     string `json:"manufacturer,omitempty"`
	ModelNum         string `json:"modelNum,omitempty"`
	SerialNum        string `json:"serialNum,omitempty"`
	YearManufactured int    `json:"yearManufactured,omitempty"`
	Notes            string `json:"notes,omitempty"`

	Location Location `json:"location"`
	Fields   FieldMap `json:"fields"`

	LastModified LastModified `json:"lastModified"`
}

// Building is a facility a device can be placed in. Devices reference
// buildings through Location.BuildingID; the reference is not enforced.
type Building struct {
	BuildingID string `json:"buildingID"`
	Name       string `json:"name"`
	Number     string `json:"number,omitempty"`
	Notes      string `json:"notes,omitempty"`

	Location Location `json:"location"`

	LastModified LastModified `json:"lastModified"`
}

type Location struct {
	BuildingID string  `json:"buildingID,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Notes      string  `json:"notes,omitempty"`
}

type LastModified struct {
	Date time.Time `json:"date"`
	User string    `json:"user"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
