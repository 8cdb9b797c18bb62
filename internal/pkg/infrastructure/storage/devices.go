package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/openfms/device-mgmt/pkg/types"
)

func deviceData(device types.Device) (string, string) {
	data, _ := json.Marshal(device)
	fields, _ := json.Marshal(device.Fields)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "deviceID")
	delete(m, "deviceTypeID")
	delete(m, "fields")
	delete(m, "lastModified")

	data, _ = json.Marshal(m)

	return string(data), string(fields)
}

func (s *Storage) AddDevice(ctx context.Context, device types.Device) error {
	data, fields := deviceData(device)

	_, err := s.pool.Exec(ctx, `
		INSERT INTO devices (device_id, device_type_id, data, fields, location, modified_by, modified_on)
		VALUES (@device_id, @device_type_id, @data, @fields, point(@lon,@lat), @modified_by, @modified_on)
	`, pgx.NamedArgs{
		"device_id":      device.DeviceID,
		"device_type_id": device.DeviceTypeID,
		"data":           data,
		"fields":         fields,
		"lat":            device.Location.Latitude,
		"lon":            device.Location.Longitude,
		"modified_by":    device.LastModified.User,
		"modified_on":    device.LastModified.Date,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) UpdateDevice(ctx context.Context, device types.Device) error {
	data, fields := deviceData(device)

	tag, err := s.pool.Exec(ctx, `
		UPDATE devices
		SET device_type_id = @device_type_id, data = @data, fields = @fields, location = point(@lon,@lat), modified_by = @modified_by, modified_on = @modified_on
		WHERE device_id = @device_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"device_id":      device.DeviceID,
		"device_type_id": device.DeviceTypeID,
		"data":           data,
		"fields":         fields,
		"lat":            device.Location.Latitude,
		"lon":            device.Location.Longitude,
		"modified_by":    device.LastModified.User,
		"modified_on":    device.LastModified.Date,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteDevice(ctx context.Context, deviceID string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE devices
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"device_id": deviceID,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetDevice(ctx context.Context, conditions ...ConditionFunc) (types.Device, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var deviceID, deviceTypeID, modifiedBy string
	var modifiedOn time.Time
	var location pgtype.Point
	var data, fields json.RawMessage

	query := fmt.Sprintf(`
		SELECT device_id, device_type_id, data, fields, location, modified_on, modified_by
		FROM devices
		WHERE %s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&deviceID, &deviceTypeID, &data, &fields, &location, &modifiedOn, &modifiedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	var errs []error

	var device types.Device
	errs = append(errs, json.Unmarshal(data, &device))
	errs = append(errs, json.Unmarshal(fields, &device.Fields))

	device.DeviceID = deviceID
	device.DeviceTypeID = deviceTypeID
	device.Location.Latitude = location.P.Y
	device.Location.Longitude = location.P.X
	device.LastModified = types.LastModified{
		Date: modifiedOn,
		User: modifiedBy,
	}

	return device, errors.Join(errs...)
}

func (s *Storage) QueryDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Device], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var deviceID, deviceTypeID, modifiedBy string
	var modifiedOn time.Time
	var location pgtype.Point
	var data, fields json.RawMessage
	var total int64

	// devices have no name column
	sortBy := condition.SortBy()
	if sortBy == "name" {
		sortBy = "created_on"
	}

	query := fmt.Sprintf(`
		SELECT device_id, device_type_id, data, fields, location, modified_on, modified_by, count(*) OVER () AS total
		FROM devices
		WHERE %s
		ORDER BY %s %s
		%s
	`, where, sortBy, condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	devices := make([]types.Device, 0)

	_, err = pgx.ForEachRow(rows, []any{&deviceID, &deviceTypeID, &data, &fields, &location, &modifiedOn, &modifiedBy, &total}, func() error {
		var errs []error
		var device types.Device

		errs = append(errs, json.Unmarshal(data, &device))
		errs = append(errs, json.Unmarshal(fields, &device.Fields))

		device.DeviceID = deviceID
		device.DeviceTypeID = deviceTypeID
		device.Location.Latitude = location.P.Y
		device.Location.Longitude = location.P.X
		device.LastModified = types.LastModified{
			Date: modifiedOn,
			User: modifiedBy,
		}
		devices = append(devices, device)

		return errors.Join(errs...)
	})
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	return types.Collection[types.Device]{
		Data:       devices,
		Count:      uint64(len(devices)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) CountDevices(ctx context.Context, deviceTypeID string) (int64, error) {
	var count int64

	err := s.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM devices
		WHERE device_type_id = @device_type_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"device_type_id": deviceTypeID,
	}).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
