package devicemanagement

import (
	"net/http"

	"github.com/openfms/device-mgmt/pkg/types"
)

// RuleViolation is a failed validation: a message for the caller and the
// status kind it maps to at the transport boundary.
type RuleViolation struct {
	Code    int
	Message string
}

func (v *RuleViolation) Error() string {
	return v.Message
}

// CheckDevice verifies that a device payload is valid before it is
// persisted. The device type reference and the field id set are
// deliberately not checked against the referenced device type.
func CheckDevice(device *types.Device) error {
	if device == nil {
		return &RuleViolation{Code: http.StatusBadRequest, Message: "Device is null."}
	}

	return nil
}

// CheckBuilding verifies a building payload before it is persisted.
func CheckBuilding(building *types.Building) error {
	if building == nil {
		return &RuleViolation{Code: http.StatusBadRequest, Message: "Building is null."}
	}

	return nil
}

// CheckDeviceType verifies a device type after any field merge has been
// applied, so a rename that collides with another field's new name is
// caught even if the two names were distinct before the request.
func CheckDeviceType(deviceType types.DeviceType) error {
	seen := map[string]struct{}{}

	for _, name := range deviceType.Fields {
		if _, ok := seen[name]; ok {
			return &RuleViolation{Code: http.StatusBadRequest, Message: "Cannot have matching field names"}
		}
		seen[name] = struct{}{}
	}

	return nil
}
