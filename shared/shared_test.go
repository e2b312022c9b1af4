package shared_test

import (
	"context"
	"errors"
	"fmt"
	"reservas/shared"
	"reservas/shared/cache/mocks"
	"reservas/shared/dto"
	"reservas/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lib/pq"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToInt64(t *testing.T) {
	got, err := shared.ConvertStringToInt64("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	got, err = shared.ConvertStringToInt64(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	_, err = shared.ConvertStringToInt64("abc")
	assert.Error(t, err)

	_, err = shared.ConvertStringToInt64("")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	got, err := shared.ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)

	for _, value := range []string{"", "abc", "0", "-3", "1.5", "99999999999999999999"} {
		_, err := shared.ParseID(value)
		assert.True(t, failure.IsBadRequest(err), value)
	}

	got, err = shared.ParseID("2147483647")
	require.NoError(t, err)
	assert.Equal(t, int64(2147483647), got)

	_, err = shared.ParseID("3000000000")
	assert.True(t, failure.IsNotFound(err))
	assert.EqualError(t, err, "id 3000000000 not found")
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339 with offset",
			input: "2025-12-01T15:00:00-05:00",
			want:  time.Date(2025, 12, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 utc",
			input: "2025-12-01T00:00:00Z",
			want:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "local timestamp",
			input: "2025-12-05T11:30:00",
			want:  time.Date(2025, 12, 5, 11, 30, 0, 0, time.UTC),
		},
		{
			name:  "plain date",
			input: "2025-12-05",
			want:  time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
		},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "impossible date", input: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestTransformFields(t *testing.T) {
	type request struct {
		Name      *string `db:"nombre"`
		PartySize *int64  `db:"cant_personas"`
		Status    string  `db:"comision_estado"`
		Ignored   string  `db:"-"`
		NoTag     string
	}

	name := "Reserva 1"
	size := int64(0)

	got := shared.TransformFields(request{
		Name:      &name,
		PartySize: &size,
		Ignored:   "x",
		NoTag:     "y",
	})

	assert.Len(t, got, 2)
	assert.Equal(t, &name, got["nombre"])
	assert.Equal(t, &size, got["cant_personas"])
	assert.NotContains(t, got, "comision_estado")

	assert.Empty(t, shared.TransformFields(request{}))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(5), "id", "reservas")

	where, args := filter.GetWhereClause()

	require.Len(t, filter.Filters, 1)
	assert.Equal(t, dto.FilterOperatorEq, filter.Filters[0].(dto.Filter).Operator)
	assert.Equal(t, "(reservas.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(5)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "reservas:views", shared.BuildCacheKey("reservas:views"))
	assert.Equal(t, "reservas:views:7", shared.BuildCacheKey("reservas:views", 7))
	assert.Equal(t, "a:b:1", shared.BuildCacheKey("a", "b", 1))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	gomock.InOrder(
		mockCache.EXPECT().Incr(gomock.Any(), "generation:reservas:views").Return(int64(3), nil),
		mockCache.EXPECT().Clear(gomock.Any(), "reservas:views*").Return(nil),
	)
	shared.InvalidateCaches(context.Background(), mockCache, "reservas:views")

	mockCache.EXPECT().Incr(gomock.Any(), "generation:casas").Return(int64(0), errors.New("redis down"))
	mockCache.EXPECT().Clear(gomock.Any(), "casas*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "casas")
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pq.Error{Code: "23503", Message: "insert or update violates foreign key constraint"}

	assert.True(t, shared.IsForeignKeyViolation(fkErr))
	assert.True(t, shared.IsForeignKeyViolation(fmt.Errorf("failed to insert data (reservation): %w", fkErr)))
	assert.False(t, shared.IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, shared.IsForeignKeyViolation(errors.New("boom")))
	assert.False(t, shared.IsForeignKeyViolation(nil))
}
