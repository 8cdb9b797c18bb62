package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/openfms/device-mgmt/internal/pkg/application/devicemanagement"
	"github.com/openfms/device-mgmt/internal/pkg/presentation/api/auth"
	"github.com/openfms/device-mgmt/pkg/types"
)

var tracer = otel.Tracer("device-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svc devicemanagement.DeviceManagement) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/devicetypes", func(r chi.Router) {
				r.Get("/", queryDeviceTypesHandler(log, svc))
				r.Get("/{deviceTypeID}", getDeviceTypeDetails(log, svc))
				r.Post("/", createDeviceTypeHandler(log, svc))
				r.Put("/{deviceTypeID}", updateDeviceTypeHandler(log, svc))
				r.Delete("/{deviceTypeID}", deleteDeviceTypeHandler(log, svc))
			})

			r.Route("/devices", func(r chi.Router) {
				r.Get("/", queryDevicesHandler(log, svc))
				r.Get("/{deviceID}", getDeviceDetails(log, svc))
				r.Post("/", createDeviceHandler(log, svc))
				r.Put("/{deviceID}", updateDeviceHandler(log, svc))
				r.Delete("/{deviceID}", deleteDeviceHandler(log, svc))
			})

			r.Route("/buildings", func(r chi.Router) {
				r.Get("/", queryBuildingsHandler(log, svc))
				r.Get("/{buildingID}", getBuildingDetails(log, svc))
				r.Post("/", createBuildingHandler(log, svc))
				r.Delete("/{buildingID}", deleteBuildingHandler(log, svc))
			})
		})
	})

	return router, nil
}

// writeError maps service errors onto status codes. Validation failures
// carry their own status and a message for the caller, lookups that came
// up empty map to 404 and anything else is a 500.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	var violation *devicemanagement.RuleViolation
	if errors.As(err, &violation) {
		log.Debug("request rejected", "reason", violation.Message)
		http.Error(w, violation.Message, violation.Code)
		return
	}

	if errors.Is(err, devicemanagement.ErrDeviceNotFound) || errors.Is(err, devicemanagement.ErrDeviceTypeNotFound) || errors.Is(err, devicemanagement.ErrBuildingNotFound) {
		log.Debug("not found", "err", err.Error())
		w.WriteHeader(http.StatusNotFound)
		return
	}

	log.Error("request failed", "err", err.Error())
	w.WriteHeader(http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("unable to marshal response", "err", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func createDeviceTypeHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-device-type")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req createDeviceTypeRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		deviceTypeID, err := svc.CreateDeviceType(ctx, types.DeviceType{
			Name:        req.Name,
			Description: req.Description,
			Notes:       req.Notes,
		}, req.Fields)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, createdResponse{ID: deviceTypeID})
	}
}

func updateDeviceTypeHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-device-type")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceTypeID := chi.URLParam(r, "deviceTypeID")
		if deviceTypeID != "" {
			requestLogger = requestLogger.With(slog.String("device_type_id", deviceTypeID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req updateDeviceTypeRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		deviceType, err := svc.UpdateDeviceType(ctx, deviceTypeID, devicemanagement.DeviceTypeUpdate{
			Name:        req.Name,
			Description: req.Description,
			Notes:       req.Notes,
			Fields:      req.Fields,
			NewFields:   req.NewFields,
		})
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, deviceType)
	}
}

func deleteDeviceTypeHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-device-type")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceTypeID := chi.URLParam(r, "deviceTypeID")
		if deviceTypeID != "" {
			requestLogger = requestLogger.With(slog.String("device_type_id", deviceTypeID))
		}

		err = svc.DeleteDeviceType(ctx, deviceTypeID)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getDeviceTypeDetails(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-device-type")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceTypeID := chi.URLParam(r, "deviceTypeID")
		if deviceTypeID != "" {
			requestLogger = requestLogger.With(slog.String("device_type_id", deviceTypeID))
		}

		deviceType, err := svc.GetDeviceTypeByID(ctx, deviceTypeID)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, deviceType)
	}
}

func queryDeviceTypesHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-device-types")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.QueryDeviceTypes(ctx, r.URL.Query())
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, collection)
	}
}

func createDeviceHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// a literal null body stays a nil pointer and is rejected by the service
		var device *types.Device
		err = json.Unmarshal(body, &device)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		deviceID, err := svc.CreateDevice(ctx, device)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, createdResponse{ID: deviceID})
	}
}

func updateDeviceHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID != "" {
			requestLogger = requestLogger.With(slog.String("device_id", deviceID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var device *types.Device
		err = json.Unmarshal(body, &device)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateDevice(ctx, deviceID, device)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, updated)
	}
}

func deleteDeviceHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID != "" {
			requestLogger = requestLogger.With(slog.String("device_id", deviceID))
		}

		err = svc.DeleteDevice(ctx, deviceID)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getDeviceDetails(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID != "" {
			requestLogger = requestLogger.With(slog.String("device_id", deviceID))
		}

		device, err := svc.GetDeviceByID(ctx, deviceID)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, device)
	}
}

func queryDevicesHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.QueryDevices(ctx, r.URL.Query())
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, collection)
	}
}

func createBuildingHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-building")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var building *types.Building
		err = json.Unmarshal(body, &building)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		buildingID, err := svc.CreateBuilding(ctx, building)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, createdResponse{ID: buildingID})
	}
}

func deleteBuildingHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-building")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		buildingID := chi.URLParam(r, "buildingID")
		if buildingID != "" {
			requestLogger = requestLogger.With(slog.String("building_id", buildingID))
		}

		err = svc.DeleteBuilding(ctx, buildingID)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getBuildingDetails(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-building")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		buildingID := chi.URLParam(r, "buildingID")
		if buildingID != "" {
			requestLogger = requestLogger.With(slog.String("building_id", buildingID))
		}

		building, err := svc.GetBuildingByID(ctx, buildingID)
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, building)
	}
}

func queryBuildingsHandler(log *slog.Logger, svc devicemanagement.DeviceManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-buildings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.QueryBuildings(ctx, r.URL.Query())
		if err != nil {
			writeError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, collection)
	}
}
