package devicemanagement

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/openfms/device-mgmt/internal/pkg/infrastructure/storage"
	"github.com/openfms/device-mgmt/pkg/types"
)

const seedYaml string = `
devicetypes:
  - name: Boiler
    description: a boiler
    fields:
      - Max Temperature
      - Capacity
  - name: Chiller
`

func TestNewSeedConfig(t *testing.T) {
	is := is.New(t)

	cfg, err := NewSeedConfig(io.NopCloser(strings.NewReader(seedYaml)))
	is.NoErr(err)

	is.Equal(len(cfg.DeviceTypes), 2)
	is.Equal(cfg.DeviceTypes[0].Name, "Boiler")
	is.Equal(cfg.DeviceTypes[0].Fields, []string{"Max Temperature", "Capacity"})
	is.Equal(cfg.DeviceTypes[1].Name, "Chiller")
}

func TestSeedSkipsExistingDeviceTypes(t *testing.T) {
	is, s, msgCtx := testSetup(t)

	s.GetDeviceTypeFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.DeviceType, error) {
		condition := &storage.Condition{}
		for _, f := range conditions {
			f(condition)
		}

		if condition.Name == "Boiler" {
			return types.DeviceType{DeviceTypeID: "dt-1", Name: "Boiler"}, nil
		}

		return types.DeviceType{}, storage.ErrNoRows
	}

	svc := New(s, msgCtx)

	cfg, err := NewSeedConfig(io.NopCloser(strings.NewReader(seedYaml)))
	is.NoErr(err)

	err = SeedDeviceTypes(context.Background(), svc, s, cfg)
	is.NoErr(err)

	is.Equal(len(s.AddDeviceTypeCalls()), 1)
	is.Equal(s.AddDeviceTypeCalls()[0].DeviceType.Name, "Chiller")
}
