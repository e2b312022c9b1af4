package room_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "reservas/infras/otel/mocks"
	"reservas/internal/domains/room/model/dto"
	serviceMocks "reservas/internal/domains/room/service/mocks"
	"reservas/internal/handlers/room"
)

func TestGetRooms(t *testing.T) {
	tests := []struct {
		name     string
		rooms    []dto.RoomResponse
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "list",
			rooms:    []dto.RoomResponse{{ID: 1, Name: "HAB 1"}, {ID: 2, Name: "HAB 2"}},
			wantCode: http.StatusOK,
			wantBody: `[{"id":1,"name":"HAB 1"},{"id":2,"name":"HAB 2"}]`,
		},
		{
			name:     "empty",
			rooms:    []dto.RoomResponse{},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
		{
			name:     "store failure",
			err:      errors.New("failed to get rooms: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"failed to get rooms: connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := serviceMocks.NewMockRoom(gomock.NewController(t))
			svc.EXPECT().GetAll(gomock.Any()).Return(tt.rooms, tt.err)

			handler := room.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/casas", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
