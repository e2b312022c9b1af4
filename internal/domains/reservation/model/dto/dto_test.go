package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	annotationDto "reservas/internal/domains/annotation/model/dto"
	annotationModel "reservas/internal/domains/annotation/model"
	"reservas/internal/domains/reservation/model"
	"reservas/internal/domains/reservation/model/dto"
	"reservas/shared/amount"
	"reservas/shared/failure"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	total := amount.FromCents(10000)

	t.Run("defaults", func(t *testing.T) {
		req := dto.CreateReservationRequest{
			Name:      "Reserva 1",
			RoomID:    ptr(int64(1)),
			PartySize: 2,
			Total:     &total,
			StartDate: "2025-12-01",
			EndDate:   "2025-12-05T11:00:00Z",
		}

		got, err := req.ToModel()
		require.NoError(t, err)

		assert.Equal(t, "Reserva 1", got.Name)
		assert.Equal(t, ptr(int64(1)), got.RoomID)
		assert.Nil(t, got.StateID)
		assert.Equal(t, total, got.Total)
		assert.Equal(t, amount.FromCents(0), got.Deposit)
		assert.Equal(t, amount.FromCents(0), got.CommissionAmount)
		assert.Equal(t, "pendiente", got.CommissionStatus)
		assert.Equal(t, time.Date(2025, 12, 5, 11, 0, 0, 0, time.UTC), got.EndDate.UTC())
	})

	t.Run("explicit financial fields", func(t *testing.T) {
		req := dto.CreateReservationRequest{
			Name:             "Reserva 2",
			PartySize:        3,
			Total:            &total,
			Deposit:          ptr(amount.FromCents(2500)),
			CommissionAmount: ptr(amount.FromCents(1000)),
			CommissionStatus: ptr("pagado"),
			StartDate:        "2025-12-06",
			EndDate:          "2025-12-06",
		}

		got, err := req.ToModel()
		require.NoError(t, err)

		assert.Equal(t, amount.FromCents(2500), got.Deposit)
		assert.Equal(t, amount.FromCents(1000), got.CommissionAmount)
		assert.Equal(t, "pagado", got.CommissionStatus)
	})

	t.Run("end before start", func(t *testing.T) {
		req := dto.CreateReservationRequest{Name: "x", PartySize: 1, Total: &total, StartDate: "2025-12-05", EndDate: "2025-12-01"}

		_, err := req.ToModel()
		require.Error(t, err)
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("unparseable date", func(t *testing.T) {
		req := dto.CreateReservationRequest{Name: "x", PartySize: 1, Total: &total, StartDate: "soon", EndDate: "2025-12-01"}

		_, err := req.ToModel()
		require.Error(t, err)
		assert.Equal(t, "startDate is not a valid date", err.Error())
	})
}

func TestUpdateReservationRequest_ToUpdate(t *testing.T) {
	t.Run("only present fields become columns", func(t *testing.T) {
		var req dto.UpdateReservationRequest
		require.NoError(t, json.Unmarshal([]byte(`{"partySize":4,"deposit":"50.00","endDate":"2025-12-10"}`), &req))

		update, err := req.ToUpdate()
		require.NoError(t, err)

		columns := update.Columns()
		assert.Len(t, columns, 3)
		assert.Equal(t, ptr(int64(4)), columns[model.FieldPartySize])
		assert.Equal(t, ptr(amount.FromCents(5000)), columns[model.FieldDeposit])
		assert.Equal(t, ptr(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)), columns[model.FieldEndDate])
	})

	t.Run("empty request has no columns", func(t *testing.T) {
		update, err := (&dto.UpdateReservationRequest{}).ToUpdate()
		require.NoError(t, err)
		assert.Empty(t, update.Columns())
	})

	t.Run("zero deposit is still written", func(t *testing.T) {
		update, err := (&dto.UpdateReservationRequest{Deposit: ptr(amount.FromCents(0))}).ToUpdate()
		require.NoError(t, err)
		assert.Contains(t, update.Columns(), model.FieldDeposit)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := (&dto.UpdateReservationRequest{EndDate: ptr("31/12/2025")}).ToUpdate()
		require.Error(t, err)
		assert.True(t, failure.IsBadRequest(err))
	})
}

func TestReservationUpdate_CheckDates(t *testing.T) {
	current := model.Reservation{
		StartDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
	}

	before := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	after := time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, dto.ReservationUpdate{}.CheckDates(current))
	assert.NoError(t, dto.ReservationUpdate{EndDate: &after}.CheckDates(current))
	assert.Error(t, dto.ReservationUpdate{EndDate: &before}.CheckDates(current))
	assert.Error(t, dto.ReservationUpdate{StartDate: &late}.CheckDates(current))
	assert.NoError(t, dto.ReservationUpdate{StartDate: &late, EndDate: &late}.CheckDates(current))
}

func TestBuildViews(t *testing.T) {
	created := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)

	reservations := []model.Reservation{
		{
			ID: 1, Name: "Reserva 1", RoomID: ptr(int64(1)), PartySize: 2, StateID: ptr(int64(1)),
			Total: amount.FromCents(10000), CommissionStatus: "pendiente",
			RoomName: ptr("HAB 1"), StateName: ptr("por cobrar"),
		},
		{
			ID: 2, Name: "Reserva 2", PartySize: 3, Total: amount.FromCents(20000), CommissionStatus: "pendiente",
		},
		{
			ID: 3, Name: "Reserva 3", RoomID: ptr(int64(99)), PartySize: 4, Total: amount.FromCents(30000),
		},
	}

	annotations := []annotationModel.Annotation{
		{ID: 10, ReservationID: 3, Content: "primera", CreatedAt: created},
		{ID: 11, ReservationID: 1, Content: "Llega tarde", CreatedAt: created},
		{ID: 12, ReservationID: 3, Content: "segunda", CreatedAt: created},
		{ID: 13, ReservationID: 42, Content: "huérfana", CreatedAt: created},
	}

	views := dto.BuildViews(reservations, annotations)

	want := []dto.ReservationView{
		{
			ID: 1, Name: "Reserva 1", RoomID: ptr(int64(1)), PartySize: 2, StateID: ptr(int64(1)),
			Total: amount.FromCents(10000), CommissionStatus: "pendiente",
			Room: ptr("HAB 1"), State: ptr("por cobrar"),
			Annotations: []annotationDto.AnnotationResponse{
				{ID: 11, ReservationID: 1, Content: "Llega tarde", CreatedAt: created},
			},
		},
		{
			ID: 2, Name: "Reserva 2", PartySize: 3, Total: amount.FromCents(20000), CommissionStatus: "pendiente",
			Annotations: []annotationDto.AnnotationResponse{},
		},
		{
			ID: 3, Name: "Reserva 3", RoomID: ptr(int64(99)), PartySize: 4, Total: amount.FromCents(30000),
			Annotations: []annotationDto.AnnotationResponse{
				{ID: 10, ReservationID: 3, Content: "primera", CreatedAt: created},
				{ID: 12, ReservationID: 3, Content: "segunda", CreatedAt: created},
			},
		},
	}

	if diff := cmp.Diff(want, views); diff != "" {
		t.Errorf("BuildViews() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, dto.BuildViews(nil, annotations))
}

func TestReservationView_JSON(t *testing.T) {
	view := dto.BuildViews([]model.Reservation{{
		ID:               1,
		Name:             "Reserva 1",
		PartySize:        2,
		Total:            amount.FromCents(10000),
		CommissionStatus: "pendiente",
		StartDate:        time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
	}}, nil)

	out, err := json.Marshal(view)
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id": 1,
		"name": "Reserva 1",
		"roomId": null,
		"partySize": 2,
		"stateId": null,
		"total": 100.00,
		"deposit": 0.00,
		"commissionAmount": 0.00,
		"commissionStatus": "pendiente",
		"startDate": "2025-12-01T00:00:00Z",
		"endDate": "2025-12-05T00:00:00Z",
		"room": null,
		"state": null,
		"annotations": []
	}]`, string(out))
}

func TestReservationIDs(t *testing.T) {
	assert.Equal(t, []int64{4, 2}, dto.ReservationIDs([]model.Reservation{{ID: 4}, {ID: 2}}))
	assert.Empty(t, dto.ReservationIDs(nil))
}
