package controllers

import (
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/dto/requests"
	"athena-relay-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockPatientRegistrationUsecase struct {
	mock.Mock
}

func (m *MockPatientRegistrationUsecase) RegisterPatient(ctx context.Context, request *requests.PatientRegistration) ([]byte, error) {
	args := m.Called(ctx, request)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

func newRegisterRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request-id")
	return req.WithContext(ctx)
}

func TestPatientRegistrationController_RegisterPatient(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Created", func(t *testing.T) {
		usecase := new(MockPatientRegistrationUsecase)
		usecase.On("RegisterPatient", mock.Anything, mock.MatchedBy(func(r *requests.PatientRegistration) bool {
			return r.FirstName.Value == "Jo" && r.DepartmentID.Value == "1"
		})).Return([]byte(`[{"patientid":"12345"}]`), nil).Once()

		rr := httptest.NewRecorder()
		NewPatientRegistrationController(logger, usecase).RegisterPatient(rr, newRegisterRequest(`{"firstname":"Jo","departmentid":1}`))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, `[{"patientid":"12345"}]`, rr.Body.String())
		usecase.AssertExpectations(t)
	})

	t.Run("Non JSON Upstream Body", func(t *testing.T) {
		usecase := new(MockPatientRegistrationUsecase)
		usecase.On("RegisterPatient", mock.Anything, mock.Anything).Return([]byte("created"), nil).Once()

		rr := httptest.NewRecorder()
		NewPatientRegistrationController(logger, usecase).RegisterPatient(rr, newRegisterRequest(`{}`))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, `"created"`, rr.Body.String())
	})

	t.Run("Encoding Failure", func(t *testing.T) {
		marshalJSON = func(interface{}) ([]byte, error) {
			return nil, errors.New("unsupported value")
		}
		t.Cleanup(func() { marshalJSON = json.Marshal })

		usecase := new(MockPatientRegistrationUsecase)
		usecase.On("RegisterPatient", mock.Anything, mock.Anything).Return([]byte("created"), nil).Once()

		rr := httptest.NewRecorder()
		NewPatientRegistrationController(logger, usecase).RegisterPatient(rr, newRegisterRequest(`{}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"unsupported value"}`, rr.Body.String())
	})

	t.Run("Missing Request ID", func(t *testing.T) {
		usecase := new(MockPatientRegistrationUsecase)
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{}`))

		rr := httptest.NewRecorder()
		NewPatientRegistrationController(logger, usecase).RegisterPatient(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "RegisterPatient", mock.Anything, mock.Anything)
	})

	t.Run("Empty Body", func(t *testing.T) {
		usecase := new(MockPatientRegistrationUsecase)
		usecase.On("RegisterPatient", mock.Anything, mock.MatchedBy(func(r *requests.PatientRegistration) bool {
			return !r.FirstName.Set && !r.DepartmentID.Set
		})).Return([]byte(`[]`), nil).Once()

		rr := httptest.NewRecorder()
		NewPatientRegistrationController(logger, usecase).RegisterPatient(rr, newRegisterRequest(""))

		assert.Equal(t, http.StatusCreated, rr.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		usecase := new(MockPatientRegistrationUsecase)

		rr := httptest.NewRecorder()
		NewPatientRegistrationController(logger, usecase).RegisterPatient(rr, newRegisterRequest(`{"firstname":`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"error"`)
		usecase.AssertNotCalled(t, "RegisterPatient", mock.Anything, mock.Anything)
	})

	t.Run("Upstream Rejection", func(t *testing.T) {
		usecase := new(MockPatientRegistrationUsecase)
		usecase.On("RegisterPatient", mock.Anything, mock.Anything).
			Return(nil, exceptions.NewUpstreamStatusError("athena_patient", 400, []byte(`{"error":"Invalid email"}`))).Once()

		rr := httptest.NewRecorder()
		NewPatientRegistrationController(logger, usecase).RegisterPatient(rr, newRegisterRequest(`{"email":"bad"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":{"error":"Invalid email"}}`, rr.Body.String())
	})

	t.Run("Upstream Rejection Logged Once", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		usecase := new(MockPatientRegistrationUsecase)
		usecase.On("RegisterPatient", mock.Anything, mock.Anything).
			Return(nil, exceptions.NewUpstreamStatusError("athena_patient", 400, []byte(`{"error":"Invalid email"}`))).Once()

		rr := httptest.NewRecorder()
		NewPatientRegistrationController(zap.New(core), usecase).RegisterPatient(rr, newRegisterRequest(`{}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("Caller Cancellation Does Not Reach Upstream", func(t *testing.T) {
		usecase := new(MockPatientRegistrationUsecase)
		usecase.On("RegisterPatient", mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), mock.Anything).Return([]byte(`[]`), nil).Once()

		req := newRegisterRequest(`{}`)
		ctx, cancel := context.WithCancel(req.Context())
		cancel()

		rr := httptest.NewRecorder()
		NewPatientRegistrationController(logger, usecase).RegisterPatient(rr, req.WithContext(ctx))

		assert.Equal(t, http.StatusCreated, rr.Code)
		usecase.AssertExpectations(t)
	})
}
