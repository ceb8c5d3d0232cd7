package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"salas/shared/cache"
	"salas/shared/constant"
	"salas/shared/dto"
	"salas/shared/timezone"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
// Zero and nil fields are skipped, pointer fields are dereferenced.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.And(dto.Eq(table, fieldID, id))
}

// BuildCacheKey joins a prefix and its parts into a redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a deterministic key from pagination params and filter args.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	_, args := filter.GetWhereClause()

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}

	sort.Strings(names)

	parts := []string{
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
	}

	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, args[name]))
	}

	return BuildCacheKey(prefix, parts...)
}

// InvalidateCaches removes every key under prefix. Errors are only logged.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
