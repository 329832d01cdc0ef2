package redisx

import (
	"fmt"

	"github.com/google/uuid"
)

const ns = "mmadmin:v1"

func KeyMonthView(year, month int) string {
	return fmt.Sprintf("%s:calendar:%04d-%02d:view", ns, year, month)
}

func KeyMonthStats(year, month int) string {
	return fmt.Sprintf("%s:calendar:%04d-%02d:stats", ns, year, month)
}

func KeyEventSummary(eventID uuid.UUID) string {
	return fmt.Sprintf("%s:event:%s:summary", ns, eventID)
}

func KeyEventRoster(eventID uuid.UUID) string {
	return fmt.Sprintf("%s:event:%s:roster", ns, eventID)
}

// RateLimitPrefix namespaces one limiter's sliding-window keys.
func RateLimitPrefix(scope string) string {
	return fmt.Sprintf("%s:rl:%s", ns, scope)
}

func ChannelEventsChanged() string {
	return ns + ":events:changed"
}
