package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/openfms/device-mgmt/internal/pkg/application/devicemanagement"
	"github.com/openfms/device-mgmt/internal/pkg/infrastructure/router"
	"github.com/openfms/device-mgmt/pkg/types"
)

const testPolicy string = `package example.authz

default allow := false

allow if input.token == "testtoken"

user := "testuser" if allow
`

func testSetup(t *testing.T, svc devicemanagement.DeviceManagement) *httptest.Server {
	r, err := RegisterHandlers(context.Background(), router.New("testing"), strings.NewReader(testPolicy), svc)
	if err != nil {
		t.Fatal("failed to register handlers:", err)
	}

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func testRequest(ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	req.Header.Add("Authorization", "Bearer testtoken")

	resp, _ := http.DefaultClient.Do(req)
	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}

func TestHealthEndpointNeedsNoToken(t *testing.T) {
	is := is.New(t)
	server := testSetup(t, &devicemanagement.DeviceManagementMock{})

	resp, err := http.Get(server.URL + "/health")
	is.NoErr(err)
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	is := is.New(t)
	server := testSetup(t, &devicemanagement.DeviceManagementMock{})

	resp, err := http.Get(server.URL + "/api/v0/devicetypes")
	is.NoErr(err)
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestInvalidTokenIsUnauthorized(t *testing.T) {
	is := is.New(t)
	server := testSetup(t, &devicemanagement.DeviceManagementMock{})

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/v0/devicetypes", nil)
	req.Header.Add("Authorization", "Bearer wrongtoken")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestCreateDeviceTypeReturns201(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		CreateDeviceTypeFunc: func(ctx context.Context, deviceType types.DeviceType, fieldNames []string) (string, error) {
			return "dt-1", nil
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodPost, "/api/v0/devicetypes",
		bytes.NewBufferString(`{"name":"Boiler","fields":["Max Temperature","Capacity"]}`))

	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(body, `{"id":"dt-1"}`)

	call := svc.CreateDeviceTypeCalls()[0]
	is.Equal(call.DeviceType.Name, "Boiler")
	is.Equal(call.FieldNames, []string{"Max Temperature", "Capacity"})
}

func TestCreateDeviceTypeWithDuplicateFieldsReturns400(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		CreateDeviceTypeFunc: func(ctx context.Context, deviceType types.DeviceType, fieldNames []string) (string, error) {
			return "", &devicemanagement.RuleViolation{Code: http.StatusBadRequest, Message: "Cannot have matching field names"}
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodPost, "/api/v0/devicetypes",
		bytes.NewBufferString(`{"name":"Boiler","fields":["Pressure","Pressure"]}`))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(strings.TrimSpace(body), "Cannot have matching field names")
}

func TestGetUnknownDeviceTypeReturns404(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		GetDeviceTypeByIDFunc: func(ctx context.Context, deviceTypeID string) (types.DeviceType, error) {
			return types.DeviceType{}, devicemanagement.ErrDeviceTypeNotFound
		},
	}

	server := testSetup(t, svc)

	resp, _ := testRequest(server, http.MethodGet, "/api/v0/devicetypes/nosuchtype", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestGetDeviceTypeReturnsDocumentWithCount(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		GetDeviceTypeByIDFunc: func(ctx context.Context, deviceTypeID string) (types.DeviceType, error) {
			return types.DeviceType{
				DeviceTypeID: deviceTypeID,
				Name:         "Boiler",
				Fields:       types.FieldMap{"u1": "Max Temperature"},
				Count:        3,
			}, nil
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodGet, "/api/v0/devicetypes/dt-1", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	var deviceType types.DeviceType
	is.NoErr(json.Unmarshal([]byte(body), &deviceType))
	is.Equal(deviceType.DeviceTypeID, "dt-1")
	is.Equal(deviceType.Count, int64(3))
	is.Equal(deviceType.Fields["u1"], "Max Temperature")
}

func TestUpdateDeviceTypeReturnsMergedDocument(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		UpdateDeviceTypeFunc: func(ctx context.Context, deviceTypeID string, update devicemanagement.DeviceTypeUpdate) (types.DeviceType, error) {
			return types.DeviceType{
				DeviceTypeID: deviceTypeID,
				Name:         update.Name,
				Fields:       types.FieldMap{"u1": "Boiler Temperature", "u3": "Capacity"},
			}, nil
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodPut, "/api/v0/devicetypes/dt-1",
		bytes.NewBufferString(`{"name":"Boiler Type","fields":{"u1":"Boiler Temperature"},"newFields":["Capacity"]}`))

	is.Equal(resp.StatusCode, http.StatusOK)

	var deviceType types.DeviceType
	is.NoErr(json.Unmarshal([]byte(body), &deviceType))
	is.Equal(deviceType.Name, "Boiler Type")
	is.Equal(len(deviceType.Fields), 2)

	call := svc.UpdateDeviceTypeCalls()[0]
	is.Equal(call.DeviceTypeID, "dt-1")
	is.Equal(call.Update.Fields["u1"], "Boiler Temperature")
	is.Equal(call.Update.NewFields, []string{"Capacity"})
}

func TestDeleteDeviceTypeInUseReturns409(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		DeleteDeviceTypeFunc: func(ctx context.Context, deviceTypeID string) error {
			return devicemanagement.ErrDeviceTypeInUse
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodDelete, "/api/v0/devicetypes/dt-1", nil)
	is.Equal(resp.StatusCode, http.StatusConflict)
	is.Equal(strings.TrimSpace(body), "The device type could not be deleted because at least one device exists in the database with this device type.")
}

func TestDeleteDeviceTypeReturns204(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		DeleteDeviceTypeFunc: func(ctx context.Context, deviceTypeID string) error {
			return nil
		},
	}

	server := testSetup(t, svc)

	resp, _ := testRequest(server, http.MethodDelete, "/api/v0/devicetypes/dt-1", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestCreateDeviceWithNullBodyReturns400(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		CreateDeviceFunc: func(ctx context.Context, device *types.Device) (string, error) {
			return "", devicemanagement.CheckDevice(device)
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodPost, "/api/v0/devices", bytes.NewBufferString(`null`))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(strings.TrimSpace(body), "Device is null.")
	is.Equal(svc.CreateDeviceCalls()[0].Device, (*types.Device)(nil))
}

func TestCreateDeviceReturns201(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		CreateDeviceFunc: func(ctx context.Context, device *types.Device) (string, error) {
			return "dev-1", nil
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodPost, "/api/v0/devices",
		bytes.NewBufferString(`{"deviceTypeID":"dt-1","deviceTag":"A-1","fields":{"u1":"212"}}`))

	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(body, `{"id":"dev-1"}`)

	created := svc.CreateDeviceCalls()[0].Device
	is.Equal(created.DeviceTypeID, "dt-1")
	is.Equal(created.Fields["u1"], "212")
}

func TestGetUnknownDeviceReturns404(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		GetDeviceByIDFunc: func(ctx context.Context, deviceID string) (types.Device, error) {
			return types.Device{}, devicemanagement.ErrDeviceNotFound
		},
	}

	server := testSetup(t, svc)

	resp, _ := testRequest(server, http.MethodGet, "/api/v0/devices/nosuchdevice", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestCreateBuildingReturns201(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		CreateBuildingFunc: func(ctx context.Context, building *types.Building) (string, error) {
			return "b-1", nil
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodPost, "/api/v0/buildings",
		bytes.NewBufferString(`{"name":"Main Office","number":"B-12","location":{"latitude":57.7,"longitude":12.0}}`))

	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(body, `{"id":"b-1"}`)

	created := svc.CreateBuildingCalls()[0].Building
	is.Equal(created.Name, "Main Office")
	is.Equal(created.Number, "B-12")
}

func TestCreateBuildingWithNullBodyReturns400(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		CreateBuildingFunc: func(ctx context.Context, building *types.Building) (string, error) {
			return "", devicemanagement.CheckBuilding(building)
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodPost, "/api/v0/buildings", bytes.NewBufferString(`null`))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(strings.TrimSpace(body), "Building is null.")
	is.Equal(svc.CreateBuildingCalls()[0].Building, (*types.Building)(nil))
}

func TestGetUnknownBuildingReturns404(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		GetBuildingByIDFunc: func(ctx context.Context, buildingID string) (types.Building, error) {
			return types.Building{}, devicemanagement.ErrBuildingNotFound
		},
	}

	server := testSetup(t, svc)

	resp, _ := testRequest(server, http.MethodGet, "/api/v0/buildings/nosuchbuilding", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestDeleteBuildingReturns204(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		DeleteBuildingFunc: func(ctx context.Context, buildingID string) error {
			return nil
		},
	}

	server := testSetup(t, svc)

	resp, _ := testRequest(server, http.MethodDelete, "/api/v0/buildings/b-1", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)

	is.Equal(svc.DeleteBuildingCalls()[0].BuildingID, "b-1")
}

func TestQueryBuildingsReturnsCollection(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		QueryBuildingsFunc: func(ctx context.Context, params map[string][]string) (types.Collection[types.Building], error) {
			return types.Collection[types.Building]{
				Data:       []types.Building{{BuildingID: "b-1", Name: "Main Office"}},
				Count:      1,
				TotalCount: 1,
			}, nil
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodGet, "/api/v0/buildings", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	var collection types.Collection[types.Building]
	is.NoErr(json.Unmarshal([]byte(body), &collection))
	is.Equal(collection.Data[0].Name, "Main Office")
}

func TestQueryDevicesForwardsParameters(t *testing.T) {
	is := is.New(t)

	svc := &devicemanagement.DeviceManagementMock{
		QueryDevicesFunc: func(ctx context.Context, params map[string][]string) (types.Collection[types.Device], error) {
			return types.Collection[types.Device]{
				Data:       []types.Device{{DeviceID: "dev-1"}},
				Count:      1,
				TotalCount: 11,
				Limit:      10,
			}, nil
		},
	}

	server := testSetup(t, svc)

	resp, body := testRequest(server, http.MethodGet, "/api/v0/devices?devicetypeid=dt-1&limit=10", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	var collection types.Collection[types.Device]
	is.NoErr(json.Unmarshal([]byte(body), &collection))
	is.Equal(collection.TotalCount, uint64(11))

	params := svc.QueryDevicesCalls()[0].Params
	is.Equal(params["devicetypeid"], []string{"dt-1"})
	is.Equal(params["limit"], []string{"10"})
}
