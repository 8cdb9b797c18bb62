package devicemanagement

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/openfms/device-mgmt/internal/pkg/infrastructure/storage"
	"github.com/openfms/device-mgmt/pkg/types"
)

var ErrDeviceNotFound = fmt.Errorf("device not found")
var ErrDeviceTypeNotFound = fmt.Errorf("device type not found")
var ErrBuildingNotFound = fmt.Errorf("building not found")

// ErrDeviceTypeInUse blocks deletion of a device type that is still
// referenced by at least one device.
var ErrDeviceTypeInUse = &RuleViolation{
	Code:    http.StatusConflict,
	Message: "The device type could not be deleted because at least one device exists in the database with this device type.",
}

// DeviceTypeUpdate is a device type update request. Fields carries the
// surviving field ids with their possibly renamed display names; any
// existing id omitted from it is deleted. NewFields are display names to
// add under freshly minted ids.
type DeviceTypeUpdate struct {
	Name        string
	Description string
	Notes       string
	Fields      types.FieldMap
	NewFields   []string
}

//go:generate moq -rm -out devicemanagement_mock.go . DeviceManagement
type DeviceManagement interface {
	CreateDeviceType(ctx context.Context, deviceType types.DeviceType, fieldNames []string) (string, error)
	UpdateDeviceType(ctx context.Context, deviceTypeID string, update DeviceTypeUpdate) (types.DeviceType, error)
	DeleteDeviceType(ctx context.Context, deviceTypeID string) error
	GetDeviceTypeByID(ctx context.Context, deviceTypeID string) (types.DeviceType, error)
	QueryDeviceTypes(ctx context.Context, params map[string][]string) (types.Collection[types.DeviceType], error)

	CreateDevice(ctx context.Context, device *types.Device) (string, error)
	UpdateDevice(ctx context.Context, deviceID string, device *types.Device) (types.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) error
	GetDeviceByID(ctx context.Context, deviceID string) (types.Device, error)
	QueryDevices(ctx context.Context, params map[string][]string) (types.Collection[types.Device], error)

	CreateBuilding(ctx context.Context, building *types.Building) (string, error)
	DeleteBuilding(ctx context.Context, buildingID string) error
	GetBuildingByID(ctx context.Context, buildingID string) (types.Building, error)
	QueryBuildings(ctx context.Context, params map[string][]string) (types.Collection[types.Building], error)
}

//go:generate moq -rm -out devicestorage_mock.go . DeviceStorage
type DeviceStorage interface {
	AddDeviceType(ctx context.Context, deviceType types.DeviceType) error
	UpdateDeviceType(ctx context.Context, deviceType types.DeviceType) error
	DeleteDeviceType(ctx context.Context, deviceTypeID string) error
	GetDeviceType(ctx context.Context, conditions ...storage.ConditionFunc) (types.DeviceType, error)
	QueryDeviceTypes(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DeviceType], error)

	AddDevice(ctx context.Context, device types.Device) error
	UpdateDevice(ctx context.Context, device types.Device) error
	DeleteDevice(ctx context.Context, deviceID string) error
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)

	CountDevices(ctx context.Context, deviceTypeID string) (int64, error)

	AddBuilding(ctx context.Context, building types.Building) error
	DeleteBuilding(ctx context.Context, buildingID string) error
	GetBuilding(ctx context.Context, conditions ...storage.ConditionFunc) (types.Building, error)
	QueryBuildings(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Building], error)
}

type service struct {
	storage   DeviceStorage
	messenger messaging.MsgContext
}

func New(storage DeviceStorage, messenger messaging.MsgContext) DeviceManagement {
	return service{
		storage:   storage,
		messenger: messenger,
	}
}

func (s service) CreateDeviceType(ctx context.Context, deviceType types.DeviceType, fieldNames []string) (string, error) {
	schema := NewSchema(nil)

	for _, name := range fieldNames {
		_, err := schema.AddField(name)
		if errors.Is(err, ErrFieldNameTaken) {
			return "", &RuleViolation{Code: http.StatusBadRequest, Message: "Cannot have matching field names"}
		}
		if err != nil {
			return "", err
		}
	}

	deviceType.DeviceTypeID = uuid.NewString()
	deviceType.Fields = schema.Fields()
	deviceType.Count = 0
	deviceType.LastModified = types.LastModified{
		Date: time.Now().UTC(),
		User: PrincipalFromContext(ctx),
	}

	err := CheckDeviceType(deviceType)
	if err != nil {
		return "", err
	}

	err = s.storage.AddDeviceType(ctx, deviceType)
	if err != nil {
		return "", err
	}

	err = s.messenger.PublishOnTopic(ctx, &types.DeviceTypeCreated{
		DeviceTypeID: deviceType.DeviceTypeID,
		Timestamp:    deviceType.LastModified.Date,
	})
	if err != nil {
		return "", err
	}

	return deviceType.DeviceTypeID, nil
}

func (s service) UpdateDeviceType(ctx context.Context, deviceTypeID string, update DeviceTypeUpdate) (types.DeviceType, error) {
	current, err := s.storage.GetDeviceType(ctx, storage.WithDeviceTypeID(deviceTypeID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.DeviceType{}, ErrDeviceTypeNotFound
		}
		return types.DeviceType{}, err
	}

	deviceType := current
	deviceType.Name = update.Name
	deviceType.Description = update.Description
	deviceType.Notes = update.Notes
	deviceType.Fields = mergeFieldMaps(update.Fields, update.NewFields)
	deviceType.LastModified = types.LastModified{
		Date: time.Now().UTC(),
		User: PrincipalFromContext(ctx),
	}

	// the whole update is rejected before anything is written, so a
	// duplicate name leaves the stored field set untouched
	err = CheckDeviceType(deviceType)
	if err != nil {
		return types.DeviceType{}, err
	}

	err = s.storage.UpdateDeviceType(ctx, deviceType)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.DeviceType{}, ErrDeviceTypeNotFound
		}
		return types.DeviceType{}, err
	}

	err = s.messenger.PublishOnTopic(ctx, &types.DeviceTypeUpdated{
		DeviceTypeID: deviceType.DeviceTypeID,
		Timestamp:    deviceType.LastModified.Date,
	})
	if err != nil {
		return types.DeviceType{}, err
	}

	return deviceType, nil
}

func (s service) DeleteDeviceType(ctx context.Context, deviceTypeID string) error {
	count, err := s.storage.CountDevices(ctx, deviceTypeID)
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrDeviceTypeInUse
	}

	// the reference count and the delete are separate statements; a device
	// created in between ends up with a dangling device type reference
	err = s.storage.DeleteDeviceType(ctx, deviceTypeID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrDeviceTypeNotFound
		}
		return err
	}

	return s.messenger.PublishOnTopic(ctx, &types.DeviceTypeDeleted{
		DeviceTypeID: deviceTypeID,
		Timestamp:    time.Now().UTC(),
	})
}

func (s service) GetDeviceTypeByID(ctx context.Context, deviceTypeID string) (types.DeviceType, error) {
	deviceType, err := s.storage.GetDeviceType(ctx, storage.WithDeviceTypeID(deviceTypeID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.DeviceType{}, ErrDeviceTypeNotFound
		}
		return types.DeviceType{}, err
	}

	return deviceType, nil
}

func (s service) QueryDeviceTypes(ctx context.Context, params map[string][]string) (types.Collection[types.DeviceType], error) {
	conditions := parseConditions(ctx, params)
	return s.storage.QueryDeviceTypes(ctx, conditions...)
}

func (s service) CreateDevice(ctx context.Context, device *types.Device) (string, error) {
	err := CheckDevice(device)
	if err != nil {
		return "", err
	}

	device.DeviceID = uuid.NewString()
	if device.Fields == nil {
		device.Fields = types.FieldMap{}
	}
	device.LastModified = types.LastModified{
		Date: time.Now().UTC(),
		User: PrincipalFromContext(ctx),
	}

	err = s.storage.AddDevice(ctx, *device)
	if err != nil {
		return "", err
	}

	err = s.messenger.PublishOnTopic(ctx, &types.DeviceCreated{
		DeviceID:     device.DeviceID,
		DeviceTypeID: device.DeviceTypeID,
		Timestamp:    device.LastModified.Date,
	})
	if err != nil {
		return "", err
	}

	return device.DeviceID, nil
}

func (s service) UpdateDevice(ctx context.Context, deviceID string, device *types.Device) (types.Device, error) {
	err := CheckDevice(device)
	if err != nil {
		return types.Device{}, err
	}

	device.DeviceID = deviceID
	if device.Fields == nil {
		device.Fields = types.FieldMap{}
	}
	device.LastModified = types.LastModified{
		Date: time.Now().UTC(),
		User: PrincipalFromContext(ctx),
	}

	err = s.storage.UpdateDevice(ctx, *device)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrDeviceNotFound
		}
		return types.Device{}, err
	}

	err = s.messenger.PublishOnTopic(ctx, &types.DeviceUpdated{
		DeviceID:     device.DeviceID,
		DeviceTypeID: device.DeviceTypeID,
		Timestamp:    device.LastModified.Date,
	})
	if err != nil {
		return types.Device{}, err
	}

	return *device, nil
}

func (s service) DeleteDevice(ctx context.Context, deviceID string) error {
	err := s.storage.DeleteDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrDeviceNotFound
		}
		return err
	}

	return s.messenger.PublishOnTopic(ctx, &types.DeviceDeleted{
		DeviceID:  deviceID,
		Timestamp: time.Now().UTC(),
	})
}

func (s service) GetDeviceByID(ctx context.Context, deviceID string) (types.Device, error) {
	device, err := s.storage.GetDevice(ctx, storage.WithDeviceID(deviceID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrDeviceNotFound
		}
		return types.Device{}, err
	}

	return device, nil
}

func (s service) QueryDevices(ctx context.Context, params map[string][]string) (types.Collection[types.Device], error) {
	conditions := parseConditions(ctx, params)
	return s.storage.QueryDevices(ctx, conditions...)
}

func (s service) CreateBuilding(ctx context.Context, building *types.Building) (string, error) {
	err := CheckBuilding(building)
	if err != nil {
		return "", err
	}

	building.BuildingID = uuid.NewString()
	building.LastModified = types.LastModified{
		Date: time.Now().UTC(),
		User: PrincipalFromContext(ctx),
	}

	err = s.storage.AddBuilding(ctx, *building)
	if err != nil {
		return "", err
	}

	err = s.messenger.PublishOnTopic(ctx, &types.BuildingCreated{
		BuildingID: building.BuildingID,
		Timestamp:  building.LastModified.Date,
	})
	if err != nil {
		return "", err
	}

	return building.BuildingID, nil
}

// DeleteBuilding is unconditional. Devices referencing the building keep
// their buildingID, matching how device field values survive field removal.
func (s service) DeleteBuilding(ctx context.Context, buildingID string) error {
	err := s.storage.DeleteBuilding(ctx, buildingID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrBuildingNotFound
		}
		return err
	}

	return s.messenger.PublishOnTopic(ctx, &types.BuildingDeleted{
		BuildingID: buildingID,
		Timestamp:  time.Now().UTC(),
	})
}

func (s service) GetBuildingByID(ctx context.Context, buildingID string) (types.Building, error) {
	building, err := s.storage.GetBuilding(ctx, storage.WithBuildingID(buildingID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Building{}, ErrBuildingNotFound
		}
		return types.Building{}, err
	}

	return building, nil
}

func (s service) QueryBuildings(ctx context.Context, params map[string][]string) (types.Collection[types.Building], error) {
	conditions := parseConditions(ctx, params)
	return s.storage.QueryBuildings(ctx, conditions...)
}

func parseConditions(ctx context.Context, params map[string][]string) []storage.ConditionFunc {
	log := logging.GetFromContext(ctx)

	conditions := make([]storage.ConditionFunc, 0)

	for k, v := range params {
		switch strings.ToLower(k) {
		case "devicetypeid":
			conditions = append(conditions, storage.WithDeviceTypeID(v[0]))
		case "buildingid":
			conditions = append(conditions, storage.WithBuildingID(v[0]))
		case "name":
			conditions = append(conditions, storage.WithName(v[0]))
		case "search":
			conditions = append(conditions, storage.WithSearch(v[0]))
		case "limit":
			limit, err := strconv.Atoi(v[0])
			if err != nil {
				log.Debug("ignoring unparsable limit", "value", v[0])
				continue
			}
			conditions = append(conditions, storage.WithLimit(limit))
		case "offset":
			offset, err := strconv.Atoi(v[0])
			if err != nil {
				log.Debug("ignoring unparsable offset", "value", v[0])
				continue
			}
			conditions = append(conditions, storage.WithOffset(offset))
		case "sortby":
			conditions = append(conditions, storage.WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, storage.WithSortDesc(strings.EqualFold(v[0], "desc")))
		default:
			log.Debug("unknown query parameter", "param", k, "value", v[0])
		}
	}

	return conditions
}
