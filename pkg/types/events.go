package types

import (
	"encoding/json"
	"time"
)

type DeviceTypeCreated struct {
	DeviceTypeID string    `json:"deviceTypeID"`
	Timestamp    time.Time `json:"timestamp"`
}

func (d *DeviceTypeCreated) ContentType() string {
	return "application/json"
}
func (d *DeviceTypeCreated) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
func (d *DeviceTypeCreated) TopicName() string {
	return "deviceType.created"
}

type DeviceTypeUpdated struct {
	DeviceTypeID string    `json:"deviceTypeID"`
	Timestamp    time.Time `json:"timestamp"`
}

func (d *DeviceTypeUpdated) ContentType() string {
	return "application/json"
}
func (d *DeviceTypeUpdated) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
func (d *DeviceTypeUpdated) TopicName() string {
	return "deviceType.updated"
}

type DeviceTypeDeleted struct {
	DeviceTypeID string    `json:"deviceTypeID"`
	Timestamp    time.Time `json:"timestamp"`
}

func (d *DeviceTypeDeleted) ContentType() string {
	return "application/json"
}
func (d *DeviceTypeDeleted) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
func (d *DeviceTypeDeleted) TopicName() string {
	return "deviceType.deleted"
}

type BuildingCreated struct {
	BuildingID string    `json:"buildingID"`
	Timestamp  time.Time `json:"timestamp"`
}

func (b *BuildingCreated) ContentType() string {
	return "application/json"
}
func (b *BuildingCreated) Body() []byte {
	data, _ := json.Marshal(b)
	return data
}
func (b *BuildingCreated) TopicName() string {
	return "building.created"
}

type BuildingDeleted struct {
	BuildingID string    `json:"buildingID"`
	Timestamp  time.Time `json:"timestamp"`
}

func (b *BuildingDeleted) ContentType() string {
	return "application/json"
}
func (b *BuildingDeleted) Body() []byte {
	data, _ := json.Marshal(b)
	return data
}
func (b *BuildingDeleted) TopicName() string {
	return "building.deleted"
}

type DeviceCreated struct {
	DeviceID     string    `json:"deviceID"`
	DeviceTypeID string    `json:"deviceTypeID,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func (d *DeviceCreated) ContentType() string {
	return "application/json"
}
func (d *DeviceCreated) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
func (d *DeviceCreated) TopicName() string {
	return "device.created"
}

type DeviceUpdated struct {
	DeviceID     string    `json:"deviceID"`
	DeviceTypeID string    `json:"deviceTypeID,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func (d *DeviceUpdated) ContentType() string {
	return "application/json"
}
func (d *DeviceUpdated) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
func (d *DeviceUpdated) TopicName() string {
	return "device.updated"
}

type DeviceDeleted struct {
	DeviceID  string    `json:"deviceID"`
	Timestamp time.Time `json:"timestamp"`
}

func (d *DeviceDeleted) ContentType() string {
	return "application/json"
}
func (d *DeviceDeleted) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
func (d *DeviceDeleted) TopicName() string {
	return "device.deleted"
}
