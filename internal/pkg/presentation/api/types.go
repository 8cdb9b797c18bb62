package api

import "github.com/openfms/device-mgmt/pkg/types"

type createDeviceTypeRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Fields      []string `json:"fields,omitempty"`
}

// updateDeviceTypeRequest replaces a device type. Fields maps surviving
// field ids to their display names, so a rename is an id carried over
// with a new name and a deletion is an id left out. NewFields are names
// to add under ids assigned by the server.
type updateDeviceTypeRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Fields      types.FieldMap `json:"fields,omitempty"`
	NewFields   []string       `json:"newFields,omitempty"`
}

type createdResponse struct {
	ID string `json:"id"`
}
