package devicemanagement

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/openfms/device-mgmt/internal/pkg/infrastructure/storage"
	"github.com/openfms/device-mgmt/pkg/types"
	"gopkg.in/yaml.v2"
)

type SeedConfig struct {
	DeviceTypes []SeedDeviceType `yaml:"devicetypes"`
}

type SeedDeviceType struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Notes       string   `yaml:"notes"`
	Fields      []string `yaml:"fields"`
}

func NewSeedConfig(config io.ReadCloser) (*SeedConfig, error) {
	defer config.Close()

	b, err := io.ReadAll(config)
	if err != nil {
		return nil, err
	}

	cfg := &SeedConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// SeedDeviceTypes creates the configured device types unless a device type
// with the same name already exists. Field ids are minted on creation, so
// reseeding never touches an existing schema.
func SeedDeviceTypes(ctx context.Context, svc DeviceManagement, s DeviceStorage, cfg *SeedConfig) error {
	log := logging.GetFromContext(ctx)

	var errs []error

	for _, seed := range cfg.DeviceTypes {
		_, err := s.GetDeviceType(ctx, storage.WithName(seed.Name))
		if err == nil {
			log.Debug("device type already exists", slog.String("name", seed.Name))
			continue
		}
		if !errors.Is(err, storage.ErrNoRows) {
			errs = append(errs, err)
			continue
		}

		_, err = svc.CreateDeviceType(ctx, types.DeviceType{
			Name:        seed.Name,
			Description: seed.Description,
			Notes:       seed.Notes,
		}, seed.Fields)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		log.Info("seeded device type", slog.String("name", seed.Name))
	}

	return errors.Join(errs...)
}
