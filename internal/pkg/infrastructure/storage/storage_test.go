package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/openfms/device-mgmt/pkg/types"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func newDeviceType() types.DeviceType {
	return types.DeviceType{
		DeviceTypeID: uuid.NewString(),
		Name:         "test-" + uuid.NewString(),
		Description:  "a boiler",
		Fields:       types.FieldMap{uuid.NewString(): "Max Temperature"},
		LastModified: types.LastModified{User: "tester"},
	}
}

func newDevice(deviceTypeID string) types.Device {
	return types.Device{
		DeviceID:     uuid.NewString(),
		DeviceTypeID: deviceTypeID,
		DeviceTag:    "A-1",
		Manufacturer: "ACME",
		Location:     types.Location{Latitude: 62.3908, Longitude: 17.3069},
		Fields:       types.FieldMap{"u1": "212"},
		LastModified: types.LastModified{User: "tester"},
	}
}

func newBuilding() types.Building {
	return types.Building{
		BuildingID:   uuid.NewString(),
		Name:         "test-" + uuid.NewString(),
		Number:       "B-12",
		Notes:        "main office",
		Location:     types.Location{Latitude: 62.3908, Longitude: 17.3069},
		LastModified: types.LastModified{User: "tester"},
	}
}

func TestAddAndGetDeviceType(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceType := newDeviceType()

	err := s.AddDeviceType(ctx, deviceType)
	is.NoErr(err)

	fetched, err := s.GetDeviceType(ctx, WithDeviceTypeID(deviceType.DeviceTypeID))
	is.NoErr(err)

	is.Equal(fetched.Name, deviceType.Name)
	is.Equal(fetched.Fields, deviceType.Fields)
	is.Equal(fetched.Count, int64(0))
	is.Equal(fetched.LastModified.User, "tester")
}

func TestGetDeviceTypeByName(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceType := newDeviceType()
	is.NoErr(s.AddDeviceType(ctx, deviceType))

	fetched, err := s.GetDeviceType(ctx, WithName(deviceType.Name))
	is.NoErr(err)
	is.Equal(fetched.DeviceTypeID, deviceType.DeviceTypeID)
}

func TestGetUnknownDeviceType(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, err := s.GetDeviceType(ctx, WithDeviceTypeID(uuid.NewString()))
	is.True(errors.Is(err, ErrNoRows))
}

func TestUpdateDeviceType(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceType := newDeviceType()
	is.NoErr(s.AddDeviceType(ctx, deviceType))

	deviceType.Name = deviceType.Name + "-renamed"
	deviceType.Fields["u2"] = "Capacity"

	is.NoErr(s.UpdateDeviceType(ctx, deviceType))

	fetched, err := s.GetDeviceType(ctx, WithDeviceTypeID(deviceType.DeviceTypeID))
	is.NoErr(err)
	is.Equal(fetched.Name, deviceType.Name)
	is.Equal(fetched.Fields["u2"], "Capacity")
}

func TestUpdateUnknownDeviceType(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := s.UpdateDeviceType(ctx, newDeviceType())
	is.True(errors.Is(err, ErrNoRows))
}

func TestDeleteDeviceTypeHidesIt(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceType := newDeviceType()
	is.NoErr(s.AddDeviceType(ctx, deviceType))

	is.NoErr(s.DeleteDeviceType(ctx, deviceType.DeviceTypeID))

	_, err := s.GetDeviceType(ctx, WithDeviceTypeID(deviceType.DeviceTypeID))
	is.True(errors.Is(err, ErrNoRows))

	err = s.DeleteDeviceType(ctx, deviceType.DeviceTypeID)
	is.True(errors.Is(err, ErrNoRows))
}

func TestDeviceCountProjection(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceType := newDeviceType()
	is.NoErr(s.AddDeviceType(ctx, deviceType))

	is.NoErr(s.AddDevice(ctx, newDevice(deviceType.DeviceTypeID)))
	is.NoErr(s.AddDevice(ctx, newDevice(deviceType.DeviceTypeID)))

	fetched, err := s.GetDeviceType(ctx, WithDeviceTypeID(deviceType.DeviceTypeID))
	is.NoErr(err)
	is.Equal(fetched.Count, int64(2))

	count, err := s.CountDevices(ctx, deviceType.DeviceTypeID)
	is.NoErr(err)
	is.Equal(count, int64(2))
}

func TestDeletedDevicesAreNotCounted(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceType := newDeviceType()
	is.NoErr(s.AddDeviceType(ctx, deviceType))

	device := newDevice(deviceType.DeviceTypeID)
	is.NoErr(s.AddDevice(ctx, device))
	is.NoErr(s.DeleteDevice(ctx, device.DeviceID))

	count, err := s.CountDevices(ctx, deviceType.DeviceTypeID)
	is.NoErr(err)
	is.Equal(count, int64(0))
}

func TestAddAndGetDevice(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := newDevice(uuid.NewString())
	is.NoErr(s.AddDevice(ctx, device))

	fetched, err := s.GetDevice(ctx, WithDeviceID(device.DeviceID))
	is.NoErr(err)

	is.Equal(fetched.DeviceTag, "A-1")
	is.Equal(fetched.Fields["u1"], "212")
	is.Equal(fetched.Location.Latitude, 62.3908)
	is.Equal(fetched.Location.Longitude, 17.3069)
}

func TestUpdateDevice(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := newDevice(uuid.NewString())
	is.NoErr(s.AddDevice(ctx, device))

	device.Notes = "moved to basement"
	device.Fields["u1"] = "250"

	is.NoErr(s.UpdateDevice(ctx, device))

	fetched, err := s.GetDevice(ctx, WithDeviceID(device.DeviceID))
	is.NoErr(err)
	is.Equal(fetched.Notes, "moved to basement")
	is.Equal(fetched.Fields["u1"], "250")
}

func TestQueryDevicesByDeviceType(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceTypeID := uuid.NewString()
	is.NoErr(s.AddDevice(ctx, newDevice(deviceTypeID)))
	is.NoErr(s.AddDevice(ctx, newDevice(deviceTypeID)))

	collection, err := s.QueryDevices(ctx, WithDeviceTypeID(deviceTypeID))
	is.NoErr(err)
	is.Equal(len(collection.Data), 2)
	is.Equal(collection.TotalCount, uint64(2))
}

func TestQueryDevicesWithLimit(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceTypeID := uuid.NewString()
	is.NoErr(s.AddDevice(ctx, newDevice(deviceTypeID)))
	is.NoErr(s.AddDevice(ctx, newDevice(deviceTypeID)))

	collection, err := s.QueryDevices(ctx, WithDeviceTypeID(deviceTypeID), WithLimit(1))
	is.NoErr(err)
	is.Equal(len(collection.Data), 1)
	is.Equal(collection.TotalCount, uint64(2))
}

func TestQueryDeviceTypes(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceType := newDeviceType()
	is.NoErr(s.AddDeviceType(ctx, deviceType))

	collection, err := s.QueryDeviceTypes(ctx, WithName(deviceType.Name))
	is.NoErr(err)
	is.Equal(len(collection.Data), 1)
	is.Equal(collection.Data[0].DeviceTypeID, deviceType.DeviceTypeID)
}

func TestQueryDeviceTypesWithSearch(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceType := newDeviceType()
	is.NoErr(s.AddDeviceType(ctx, deviceType))

	collection, err := s.QueryDeviceTypes(ctx, WithSearch(deviceType.Name))
	is.NoErr(err)
	is.Equal(len(collection.Data), 1)
	is.Equal(collection.Data[0].DeviceTypeID, deviceType.DeviceTypeID)
}

func TestQueryDevicesWithSearch(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := newDevice(uuid.NewString())
	is.NoErr(s.AddDevice(ctx, device))

	collection, err := s.QueryDevices(ctx, WithSearch(device.DeviceID))
	is.NoErr(err)
	is.Equal(len(collection.Data), 1)
	is.Equal(collection.Data[0].DeviceID, device.DeviceID)
}

func TestAddAndGetBuilding(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	building := newBuilding()
	is.NoErr(s.AddBuilding(ctx, building))

	fetched, err := s.GetBuilding(ctx, WithBuildingID(building.BuildingID))
	is.NoErr(err)

	is.Equal(fetched.Name, building.Name)
	is.Equal(fetched.Number, "B-12")
	is.Equal(fetched.Notes, "main office")
	is.Equal(fetched.Location.Latitude, 62.3908)
	is.Equal(fetched.Location.Longitude, 17.3069)
	is.Equal(fetched.LastModified.User, "tester")
}

func TestDeleteBuildingHidesIt(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	building := newBuilding()
	is.NoErr(s.AddBuilding(ctx, building))

	is.NoErr(s.DeleteBuilding(ctx, building.BuildingID))

	_, err := s.GetBuilding(ctx, WithBuildingID(building.BuildingID))
	is.True(errors.Is(err, ErrNoRows))

	err = s.DeleteBuilding(ctx, building.BuildingID)
	is.True(errors.Is(err, ErrNoRows))
}

func TestQueryBuildingsWithSearch(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	building := newBuilding()
	is.NoErr(s.AddBuilding(ctx, building))

	collection, err := s.QueryBuildings(ctx, WithSearch(building.Name))
	is.NoErr(err)
	is.Equal(len(collection.Data), 1)
	is.Equal(collection.Data[0].BuildingID, building.BuildingID)
}

func TestQueryDevicesByBuilding(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	buildingID := uuid.NewString()

	device := newDevice(uuid.NewString())
	device.Location.BuildingID = buildingID
	is.NoErr(s.AddDevice(ctx, device))

	other := newDevice(uuid.NewString())
	is.NoErr(s.AddDevice(ctx, other))

	collection, err := s.QueryDevices(ctx, WithBuildingID(buildingID))
	is.NoErr(err)
	is.Equal(len(collection.Data), 1)
	is.Equal(collection.Data[0].DeviceID, device.DeviceID)
}
