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

func buildingData(building types.Building) string {
	data, _ := json.Marshal(building)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "buildingID")
	delete(m, "name")
	delete(m, "lastModified")

	data, _ = json.Marshal(m)

	return string(data)
}

func (s *Storage) AddBuilding(ctx context.Context, building types.Building) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO buildings (building_id, name, data, location, modified_by, modified_on)
		VALUES (@building_id, @name, @data, point(@lon,@lat), @modified_by, @modified_on)
	`, pgx.NamedArgs{
		"building_id": building.BuildingID,
		"name":        building.Name,
		"data":        buildingData(building),
		"lat":         building.Location.Latitude,
		"lon":         building.Location.Longitude,
		"modified_by": building.LastModified.User,
		"modified_on": building.LastModified.Date,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) DeleteBuilding(ctx context.Context, buildingID string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE buildings
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE building_id = @building_id AND deleted = FALSE
	`, pgx.NamedArgs{
		"building_id": buildingID,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetBuilding(ctx context.Context, conditions ...ConditionFunc) (types.Building, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.BuildingWhere()

	var buildingID, name, modifiedBy string
	var modifiedOn time.Time
	var location pgtype.Point
	var data json.RawMessage

	query := fmt.Sprintf(`
		SELECT building_id, name, data, location, modified_on, modified_by
		FROM buildings
		WHERE %s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&buildingID, &name, &data, &location, &modifiedOn, &modifiedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Building{}, ErrNoRows
		}
		return types.Building{}, err
	}

	var building types.Building
	err = json.Unmarshal(data, &building)

	building.BuildingID = buildingID
	building.Name = name
	building.Location.Latitude = location.P.Y
	building.Location.Longitude = location.P.X
	building.LastModified = types.LastModified{
		Date: modifiedOn,
		User: modifiedBy,
	}

	return building, err
}

func (s *Storage) QueryBuildings(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Building], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.BuildingWhere()

	var buildingID, name, modifiedBy string
	var modifiedOn time.Time
	var location pgtype.Point
	var data json.RawMessage
	var total int64

	query := fmt.Sprintf(`
		SELECT building_id, name, data, location, modified_on, modified_by, count(*) OVER () AS total
		FROM buildings
		WHERE %s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Building]{}, err
	}

	buildings := make([]types.Building, 0)

	_, err = pgx.ForEachRow(rows, []any{&buildingID, &name, &data, &location, &modifiedOn, &modifiedBy, &total}, func() error {
		var building types.Building

		err := json.Unmarshal(data, &building)

		building.BuildingID = buildingID
		building.Name = name
		building.Location.Latitude = location.P.Y
		building.Location.Longitude = location.P.X
		building.LastModified = types.LastModified{
			Date: modifiedOn,
			User: modifiedBy,
		}
		buildings = append(buildings, building)

		return err
	})
	if err != nil {
		return types.Collection[types.Building]{}, err
	}

	return types.Collection[types.Building]{
		Data:       buildings,
		Count:      uint64(len(buildings)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(total),
	}, nil
}
