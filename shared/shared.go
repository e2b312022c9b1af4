package shared

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"reservas/shared/cache"
	"reservas/shared/constant"
	"reservas/shared/dto"
	"reservas/shared/failure"
	"reservas/shared/timezone"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var dateLayouts = []string{
	constant.DateFormat,
	constant.DateLocalFormat,
	constant.DateOnlyFormat,
}

func ConvertStringToInt64(value string) (int64, error) {
	res, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", value, err)
	}

	return res, nil
}

// ParseID reads a positive entity id from a path parameter. Ids are SERIAL columns, so a
// number beyond their range names a row that cannot exist and is reported as not found.
func ParseID(value string) (int64, error) {
	id, err := ConvertStringToInt64(value)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestf("invalid id %q", value) //nolint:wrapcheck
	}

	if id > constant.MaxSerialID {
		return 0, failure.NotFound(fmt.Sprintf("id %d not found", id)) //nolint:wrapcheck
	}

	return id, nil
}

// ParseDate accepts RFC3339 timestamps, local timestamps without offset and plain dates.
// Values without an offset are read in the application timezone.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		var (
			parsed time.Time
			err    error
		)

		if layout == constant.DateFormat {
			parsed, err = time.Parse(layout, value)
		} else {
			parsed, err = timezone.Parse(layout, value)
		}

		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// TransformFields converts the non-zero `db` tagged fields of a struct into a column map.
// Pointer fields count as present whenever they are non-nil.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...any) string {
	key := prefix
	for _, part := range parts {
		key = fmt.Sprintf("%s:%v", key, part)
	}

	return key
}

// InvalidateCaches bumps the generation of prefix and removes every key stored under it.
// Failures are logged only; entries written before a failed bump live until their TTL.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := cache.Invalidate(ctx, redisCache, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// IsForeignKeyViolation reports whether err comes from a rejected foreign key reference.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation
}
