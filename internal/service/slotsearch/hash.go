package slotsearch

import (
	"strconv"
	"strings"
	"time"
)

// ComputeSlotHash строит стабильный идентификатор слота из времени начала и
// набора дверей: "<unix nano>|door|door|...". Используется только для
// отображения и дедупликации: коллизии между площадками допустимы,
// сравнения всегда ограничены одним запросом.
func ComputeSlotHash(startTime time.Time, doorIDs []int64) string {
	parts := make([]string, 0, len(doorIDs)+1)
	parts = append(parts, strconv.FormatInt(startTime.UTC().UnixNano(), 10))
	for _, id := range doorIDs {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, "|")
}
