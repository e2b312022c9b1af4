package reservation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "reservas/infras/otel/mocks"
	annotationDto "reservas/internal/domains/annotation/model/dto"
	"reservas/internal/domains/reservation/model/dto"
	serviceMocks "reservas/internal/domains/reservation/service/mocks"
	"reservas/internal/handlers/reservation"
	"reservas/shared/amount"
	"reservas/shared/failure"
)

func setup(t *testing.T) (*serviceMocks.MockReservation, http.Handler) {
	t.Helper()

	svc := serviceMocks.NewMockReservation(gomock.NewController(t))
	handler := reservation.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGetReservations(t *testing.T) {
	svc, router := setup(t)

	room := "HAB 1"
	svc.EXPECT().ListViews(gomock.Any()).Return([]dto.ReservationView{{
		ID:               1,
		Name:             "Reserva 1",
		PartySize:        2,
		Total:            amount.FromCents(10000),
		CommissionStatus: "pendiente",
		Room:             &room,
		Annotations:      []annotationDto.AnnotationResponse{},
	}}, nil)

	rec := do(router, http.MethodGet, "/reservas", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"room":"HAB 1"`)
	assert.Contains(t, rec.Body.String(), `"state":null`)
	assert.Contains(t, rec.Body.String(), `"annotations":[]`)
	assert.Contains(t, rec.Body.String(), `"total":100.00`)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "["))
}

func TestGetReservationByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, router := setup(t)

		rec := do(router, http.MethodGet, "/reservas/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().GetView(gomock.Any(), int64(9)).Return(dto.ReservationView{}, failure.NotFound("reservation not found"))

		rec := do(router, http.MethodGet, "/reservas/9", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"reservation not found"}`, rec.Body.String())
	})
}

func TestCreateReservation(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.CreateReservationRequest) (int64, error) {
			assert.Equal(t, "Reserva 1", req.Name)
			assert.Equal(t, amount.FromCents(10050), *req.Total)

			return 4, nil
		})

		rec := do(router, http.MethodPost, "/reservas", `{
			"name": "Reserva 1",
			"roomId": 1,
			"partySize": 2,
			"stateId": 1,
			"total": "100.50",
			"startDate": "2025-12-01",
			"endDate": "2025-12-05"
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Reserva creada","id":4}`, rec.Body.String())
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, router := setup(t)

		rec := do(router, http.MethodPost, "/reservas", `{"name": "Reserva 1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error"`)
	})

	t.Run("non positive party size", func(t *testing.T) {
		_, router := setup(t)

		rec := do(router, http.MethodPost, "/reservas", `{"name":"x","partySize":0,"total":10,"startDate":"2025-12-01","endDate":"2025-12-02"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, router := setup(t)

		rec := do(router, http.MethodPost, "/reservas", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("party size beyond integer column", func(t *testing.T) {
		_, router := setup(t)

		rec := do(router, http.MethodPost, "/reservas", `{"name":"x","partySize":3000000000,"total":10,"startDate":"2025-12-01","endDate":"2025-12-02"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"partySize must be less than or equal to 2147483647"}`, rec.Body.String())
	})

	t.Run("total beyond numeric column", func(t *testing.T) {
		_, router := setup(t)

		rec := do(router, http.MethodPost, "/reservas", `{"name":"x","partySize":2,"total":200000000000000000,"startDate":"2025-12-01","endDate":"2025-12-02"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateReservation(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(nil)

		rec := do(router, http.MethodPut, "/reservas/1", `{"stateId": 2}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Reserva actualizada"}`, rec.Body.String())
	})

	t.Run("empty update", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Update(gomock.Any(), int64(1), dto.UpdateReservationRequest{}).Return(failure.EmptyUpdateRequest)

		rec := do(router, http.MethodPut, "/reservas/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).Return(failure.NotFound("reservation not found"))

		rec := do(router, http.MethodPut, "/reservas/7", `{"name":"Reserva 7"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteReservation(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		rec := do(router, http.MethodDelete, "/reservas/3", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Reserva eliminada"}`, rec.Body.String())
	})

	t.Run("id beyond serial range", func(t *testing.T) {
		_, router := setup(t)

		rec := do(router, http.MethodDelete, "/reservas/3000000000", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"id 3000000000 not found"}`, rec.Body.String())
	})
}
