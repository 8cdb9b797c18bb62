package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/openfms/device-mgmt/pkg/types"
)

// deviceCountSubquery computes the number of devices referencing a device
// type at query time. The count is never persisted.
const deviceCountSubquery = `(SELECT count(*) FROM devices d WHERE d.device_type_id = dt.device_type_id AND d.deleted = FALSE)`

func deviceTypeData(deviceType types.DeviceType) (string, string) {
	data, _ := json.Marshal(deviceType)
	fields, _ := json.Marshal(deviceType.Fields)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "deviceTypeID")
	delete(m, "name")
	delete(m, "fields")
	delete(m, "count")
	delete(m, "lastModified")

	data, _ = json.Marshal(m)

	return string(data), string(fields)
}

func (s *Storage) AddDeviceType(ctx context.Context, deviceType types.DeviceType) error {
	data, fields := deviceTypeData(deviceType)

	_, err := s.pool.Exec(ctx, `
		INSERT INTO device_types (device_type_id, name, data, fields, modified_by, modified_on)
		VALUES (@device_type_id, @name, @data, @fields, @modified_by, @modified_on)
	`, pgx.NamedArgs{
		"device_type_id": deviceType.DeviceTypeID,
		"name":           deviceType.Name,
		"data":           data,
		"fields":         fields,
		"modified_by":    deviceType.LastModified.User,
		"modified_on":    deviceType.LastModified.Date,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) UpdateDeviceType(ctx context.Context, deviceType types.DeviceType) error {
	data, fields := deviceTypeData(deviceType)

	tag, err := s.pool.Exec(ctx, `
		UPDATE device_types
		SET name = @name, data = @data, fields = @fields, modified_by = @modified_by, modified_on = @modified_on
		WHERE device_type_id = @device_type_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"device_type_id": deviceType.DeviceTypeID,
		"name":           deviceType.Name,
		"data":           data,
		"fields":         fields,
		"modified_by":    deviceType.LastModified.User,
		"modified_on":    deviceType.LastModified.Date,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteDeviceType(ctx context.Context, deviceTypeID string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE device_types
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE device_type_id = @device_type_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"device_type_id": deviceTypeID,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetDeviceType(ctx context.Context, conditions ...ConditionFunc) (types.DeviceType, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.DeviceTypeWhere()

	var deviceTypeID, name, modifiedBy string
	var modifiedOn time.Time
	var data, fields json.RawMessage
	var count int64

	query := fmt.Sprintf(`
		SELECT dt.device_type_id, dt.name, dt.data, dt.fields, dt.modified_on, dt.modified_by, %s AS device_count
		FROM device_types dt
		WHERE %s
	`, deviceCountSubquery, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&deviceTypeID, &name, &data, &fields, &modifiedOn, &modifiedBy, &count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.DeviceType{}, ErrNoRows
		}
		return types.DeviceType{}, err
	}

	var errs []error

	var deviceType types.DeviceType
	errs = append(errs, json.Unmarshal(data, &deviceType))
	errs = append(errs, json.Unmarshal(fields, &deviceType.Fields))

	deviceType.DeviceTypeID = deviceTypeID
	deviceType.Name = name
	deviceType.Count = count
	deviceType.LastModified = types.LastModified{
		Date: modifiedOn,
		User: modifiedBy,
	}

	return deviceType, errors.Join(errs...)
}

func (s *Storage) QueryDeviceTypes(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.DeviceType], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.DeviceTypeWhere()

	var deviceTypeID, name, modifiedBy string
	var modifiedOn time.Time
	var data, fields json.RawMessage
	var deviceCount, total int64

	query := fmt.Sprintf(`
		SELECT dt.device_type_id, dt.name, dt.data, dt.fields, dt.modified_on, dt.modified_by, %s AS device_count, count(*) OVER () AS total
		FROM device_types dt
		WHERE %s
		ORDER BY %s %s
		%s
	`, deviceCountSubquery, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.DeviceType]{}, err
	}

	deviceTypes := make([]types.DeviceType, 0)

	_, err = pgx.ForEachRow(rows, []any{&deviceTypeID, &name, &data, &fields, &modifiedOn, &modifiedBy, &deviceCount, &total}, func() error {
		var errs []error
		var deviceType types.DeviceType

		errs = append(errs, json.Unmarshal(data, &deviceType))
		errs = append(errs, json.Unmarshal(fields, &deviceType.Fields))

		deviceType.DeviceTypeID = deviceTypeID
		deviceType.Name = name
		deviceType.Count = deviceCount
		deviceType.LastModified = types.LastModified{
			Date: modifiedOn,
			User: modifiedBy,
		}
		deviceTypes = append(deviceTypes, deviceType)

		return errors.Join(errs...)
	})
	if err != nil {
		return types.Collection[types.DeviceType]{}, err
	}

	return types.Collection[types.DeviceType]{
		Data:       deviceTypes,
		Count:      uint64(len(deviceTypes)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(total),
	}, nil
}
