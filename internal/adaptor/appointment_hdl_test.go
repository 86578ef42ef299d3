package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// stubAppointmentService scripts the service layer so handler tests only
// exercise decoding, routing and error-to-status mapping.
type stubAppointmentService struct {
	availableTimes func(date string) ([]response.TimeSlotResponse, error)
	create         func(req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error)
	updateStatus   func(id int64, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error)
	listAll        func() ([]response.AppointmentResponse, error)
	listUser       func(userID string) ([]response.AppointmentResponse, error)
}

var _ usecase.AppointmentService = (*stubAppointmentService)(nil)

func (s *stubAppointmentService) AvailableTimes(_ context.Context, date string) ([]response.TimeSlotResponse, error) {
	return s.availableTimes(date)
}

func (s *stubAppointmentService) CreateAppointment(_ context.Context, req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error) {
	return s.create(req)
}

func (s *stubAppointmentService) ListUserAppointments(_ context.Context, userID string) ([]response.AppointmentResponse, error) {
	return s.listUser(userID)
}

func (s *stubAppointmentService) UpdateStatus(_ context.Context, id int64, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error) {
	return s.updateStatus(id, req)
}

func (s *stubAppointmentService) ListAppointments(_ context.Context) ([]response.AppointmentResponse, error) {
	return s.listAll()
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newRouter(service usecase.AppointmentService) *chi.Mux {
	handler := NewAppointmentHandler(service, zap.NewNop())

	router := chi.NewRouter()
	router.Get("/appointments/available-times/{date}", handler.AvailableTimes)
	router.Post("/appointments", handler.CreateAppointment)
	router.Get("/appointments", handler.ListAppointments)
	router.Patch("/appointments/{id}/status", handler.UpdateStatus)
	return router
}

func doRequest(t *testing.T, router *chi.Mux, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response envelope: %v (body %q)", err, rec.Body.String())
	}
	return rec, env
}

func validCreateBody() request.CreateAppointmentRequest {
	return request.CreateAppointmentRequest{
		Name:       "Maria Silva",
		Email:      "maria@example.com",
		Phone:      "11999990000",
		CategoryID: "7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		ServiceID:  "9c858901-8a57-4791-81fe-4c455b099bc9",
		Date:       "2025-04-10",
		Time:       "10:20",
	}
}

func TestAvailableTimes_OK(t *testing.T) {
	router := newRouter(&stubAppointmentService{
		availableTimes: func(date string) ([]response.TimeSlotResponse, error) {
			if date != "2025-04-10" {
				t.Errorf("date param = %q, want 2025-04-10", date)
			}
			return []response.TimeSlotResponse{
				{Time: "09:00", Available: true, Status: response.SlotStatusAvailable},
				{Time: "09:40", Available: false, Status: response.SlotStatusOccupied},
			}, nil
		},
	})

	rec, env := doRequest(t, router, http.MethodGet, "/appointments/available-times/2025-04-10", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !env.Status {
		t.Error("envelope status should be true")
	}

	var slots []response.TimeSlotResponse
	if err := json.Unmarshal(env.Data, &slots); err != nil {
		t.Fatalf("decode slots: %v", err)
	}
	if len(slots) != 2 || slots[1].Status != response.SlotStatusOccupied {
		t.Errorf("unexpected slots payload: %+v", slots)
	}
}

func TestAvailableTimes_BadDate(t *testing.T) {
	router := newRouter(&stubAppointmentService{
		availableTimes: func(date string) ([]response.TimeSlotResponse, error) {
			return nil, fmt.Errorf("invalid date format %s, expected YYYY-MM-DD", date)
		},
	})

	rec, env := doRequest(t, router, http.MethodGet, "/appointments/available-times/nonsense", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Status {
		t.Error("envelope status should be false")
	}
}

func TestCreateAppointment_Created(t *testing.T) {
	router := newRouter(&stubAppointmentService{
		create: func(req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error) {
			return &response.AppointmentResponse{
				ID:     42,
				Name:   req.Name,
				Date:   req.Date,
				Time:   req.Time,
				Status: "pending",
			}, nil
		},
	})

	rec, env := doRequest(t, router, http.MethodPost, "/appointments", validCreateBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var appointment response.AppointmentResponse
	if err := json.Unmarshal(env.Data, &appointment); err != nil {
		t.Fatalf("decode appointment: %v", err)
	}
	if appointment.ID != 42 || appointment.Status != "pending" {
		t.Errorf("unexpected appointment payload: %+v", appointment)
	}
}

func TestCreateAppointment_Conflict(t *testing.T) {
	router := newRouter(&stubAppointmentService{
		create: func(req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error) {
			return nil, fmt.Errorf("time slot %s on %s is already booked", req.Time, req.Date)
		},
	})

	rec, env := doRequest(t, router, http.MethodPost, "/appointments", validCreateBody())
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if env.Status {
		t.Error("envelope status should be false")
	}
	if env.Message == "" {
		t.Error("conflict response should carry the service message")
	}
}

func TestCreateAppointment_UnknownCatalogRef(t *testing.T) {
	router := newRouter(&stubAppointmentService{
		create: func(req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error) {
			return nil, fmt.Errorf("service %s not found", req.ServiceID)
		},
	})

	rec, _ := doRequest(t, router, http.MethodPost, "/appointments", validCreateBody())
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateAppointment_MalformedBody(t *testing.T) {
	// Service must never be reached, a nil create func would panic
	router := newRouter(&stubAppointmentService{})

	rec, env := doRequest(t, router, http.MethodPost, "/appointments", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Status {
		t.Error("envelope status should be false")
	}
}

func TestCreateAppointment_ValidationRejectedBeforeService(t *testing.T) {
	router := newRouter(&stubAppointmentService{})

	body := validCreateBody()
	body.Email = "not-an-email"
	body.Time = "25:99"

	rec, env := doRequest(t, router, http.MethodPost, "/appointments", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(env.Errors) == 0 {
		t.Error("validation response should include field errors")
	}
}

func TestCreateAppointment_InternalError(t *testing.T) {
	router := newRouter(&stubAppointmentService{
		create: func(req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error) {
			return nil, fmt.Errorf("create appointment: connection refused")
		},
	})

	rec, env := doRequest(t, router, http.MethodPost, "/appointments", validCreateBody())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if env.Message != "Internal server error" {
		t.Errorf("internal errors must not leak details, got %q", env.Message)
	}
}

func TestUpdateStatus_OK(t *testing.T) {
	router := newRouter(&stubAppointmentService{
		updateStatus: func(id int64, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error) {
			if id != 7 {
				t.Errorf("id = %d, want 7", id)
			}
			return &response.AppointmentResponse{ID: id, Status: "confirmed"}, nil
		},
	})

	rec, env := doRequest(t, router, http.MethodPatch, "/appointments/7/status",
		request.UpdateAppointmentStatusRequest{Status: "confirmed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var appointment response.AppointmentResponse
	if err := json.Unmarshal(env.Data, &appointment); err != nil {
		t.Fatalf("decode appointment: %v", err)
	}
	if appointment.Status != "confirmed" {
		t.Errorf("status = %s, want confirmed", appointment.Status)
	}
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	router := newRouter(&stubAppointmentService{
		updateStatus: func(id int64, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error) {
			return nil, fmt.Errorf("appointment %d not found", id)
		},
	})

	rec, _ := doRequest(t, router, http.MethodPatch, "/appointments/9999/status",
		request.UpdateAppointmentStatusRequest{Status: "confirmed"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateStatus_NonNumericID(t *testing.T) {
	router := newRouter(&stubAppointmentService{})

	rec, _ := doRequest(t, router, http.MethodPatch, "/appointments/abc/status",
		request.UpdateAppointmentStatusRequest{Status: "confirmed"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateStatus_InvalidStatusValue(t *testing.T) {
	router := newRouter(&stubAppointmentService{})

	rec, env := doRequest(t, router, http.MethodPatch, "/appointments/7/status",
		request.UpdateAppointmentStatusRequest{Status: "archived"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(env.Errors) == 0 {
		t.Error("validation response should include field errors")
	}
}

func TestListAppointments_OK(t *testing.T) {
	router := newRouter(&stubAppointmentService{
		listAll: func() ([]response.AppointmentResponse, error) {
			return []response.AppointmentResponse{
				{ID: 1, Status: "pending"},
				{ID: 2, Status: "cancelled"},
			}, nil
		},
	})

	rec, env := doRequest(t, router, http.MethodGet, "/appointments", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var appointments []response.AppointmentResponse
	if err := json.Unmarshal(env.Data, &appointments); err != nil {
		t.Fatalf("decode appointments: %v", err)
	}
	if len(appointments) != 2 {
		t.Errorf("got %d appointments, want 2", len(appointments))
	}
}
