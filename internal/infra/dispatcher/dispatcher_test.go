package dispatcher

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timemcp/internal/domain"
)

// 2024-01-15 is a Monday.
var fixedInstant = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

func newTestDispatcher(now time.Time) *Dispatcher {
	return New(Config{
		Now: func() time.Time { return now },
	})
}

func TestInvoke_UnknownTool(t *testing.T) {
	d := New(Config{})

	env := d.Invoke(context.Background(), "nonexistent_op", map[string]any{})
	assert.True(t, env.IsError)
	assert.Equal(t, "Error: Unknown tool: nonexistent_op", env.Text)
}

func TestInvoke_CurrentTimeISO(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_current_time", map[string]any{"format": "iso"})
	require.False(t, env.IsError)
	assert.Equal(t, "Current time: 2024-01-15T10:30:00.000Z", env.Text)
}

func TestInvoke_CurrentTimeDefaultsToTwelveHour(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_current_time", map[string]any{})
	require.False(t, env.IsError)
	assert.True(t, strings.HasPrefix(env.Text, "Current time: "))
	hasMarker := strings.Contains(env.Text, "AM") || strings.Contains(env.Text, "PM")
	assert.True(t, hasMarker, "12-hour output must carry an AM/PM marker: %q", env.Text)
}

func TestInvoke_CurrentTimeUnrecognizedFormatFallsBack(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_current_time", map[string]any{"format": "stardate"})
	require.False(t, env.IsError)
	hasMarker := strings.Contains(env.Text, "AM") || strings.Contains(env.Text, "PM")
	assert.True(t, hasMarker)
}

func TestInvoke_CurrentTimeTokyo(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_current_time", map[string]any{
		"timezone": "Asia/Tokyo",
		"format":   "24hour",
	})
	require.False(t, env.IsError)
	assert.Equal(t, "Current time: 1/15/2024, 19:30:00", env.Text)
	assert.NotContains(t, env.Text, "AM")
	assert.NotContains(t, env.Text, "PM")
}

func TestInvoke_CurrentTimeNamedZoneIgnoresISO(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_current_time", map[string]any{
		"timezone": "Asia/Tokyo",
		"format":   "iso",
	})
	require.False(t, env.IsError)
	// iso is only honored for the system zone; a named zone renders the
	// localized string in 12-hour notation.
	assert.Equal(t, "Current time: 1/15/2024, 7:30:00 PM", env.Text)
}

func TestInvoke_CurrentTimeInvalidZoneFailsEnvelope(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_current_time", map[string]any{"timezone": "Not/ARealZone"})
	assert.True(t, env.IsError)
	assert.True(t, strings.HasPrefix(env.Text, "Error: "))
	assert.Contains(t, env.Text, "Not/ARealZone")
}

func TestInvoke_EmptyAndNonStringArgumentsGetDefaults(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_current_time", map[string]any{
		"timezone": "",
		"format":   42,
	})
	require.False(t, env.IsError)
	// Both arguments fall back to their defaults: system zone, 12-hour.
	hasMarker := strings.Contains(env.Text, "AM") || strings.Contains(env.Text, "PM")
	assert.True(t, hasMarker)
}

func TestInvoke_TimeInfoSystemFields(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_time_info", map[string]any{})
	require.False(t, env.IsError)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.Text), &record))

	for _, field := range []string{
		"timestamp", "iso", "local", "day_of_week", "date",
		"year", "month", "day", "hour", "minute", "second",
		"utc_offset_minutes",
	} {
		assert.Contains(t, record, field)
	}
	assert.NotContains(t, record, "timezone_time")
	assert.NotContains(t, record, "requested_timezone")
	assert.NotContains(t, record, "timezone_error")

	assert.Equal(t, "Monday", record["day_of_week"])
	assert.Equal(t, "2024-01-15T10:30:00.000Z", record["iso"])
	assert.Equal(t, float64(fixedInstant.UnixMilli()), record["timestamp"])
}

func TestInvoke_TimeInfoIndentedSerialization(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_time_info", map[string]any{})
	require.False(t, env.IsError)
	assert.True(t, strings.HasPrefix(env.Text, "{\n  \"timestamp\":"), "record must be 2-space indented with timestamp first")
}

func TestInvoke_TimeInfoNamedZone(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_time_info", map[string]any{"timezone": "Asia/Tokyo"})
	require.False(t, env.IsError)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.Text), &record))
	assert.Equal(t, "1/15/2024, 7:30:00 PM JST", record["timezone_time"])
	assert.Equal(t, "Asia/Tokyo", record["requested_timezone"])
	assert.NotContains(t, record, "timezone_error")
}

func TestInvoke_TimeInfoInvalidZoneStaysSuccessful(t *testing.T) {
	d := newTestDispatcher(fixedInstant)

	env := d.Invoke(context.Background(), "get_time_info", map[string]any{"timezone": "Not/ARealZone"})
	require.False(t, env.IsError, "invalid timezone must not fail get_time_info")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.Text), &record))
	assert.Equal(t, "Invalid timezone: Not/ARealZone", record["timezone_error"])
	assert.NotContains(t, record, "timezone_time")
}

func TestInvoke_TimeInfoConsecutiveCallsInternallyConsistent(t *testing.T) {
	d := New(Config{})

	for i := 0; i < 2; i++ {
		env := d.Invoke(context.Background(), "get_time_info", map[string]any{})
		require.False(t, env.IsError)

		var record struct {
			DayOfWeek string `json:"day_of_week"`
			Date      string `json:"date"`
		}
		require.NoError(t, json.Unmarshal([]byte(env.Text), &record))

		parsed, err := time.ParseInLocation("1/2/2006", record.Date, time.Local)
		require.NoError(t, err)
		assert.Equal(t, parsed.Weekday().String(), record.DayOfWeek)
	}
}

type recordingMetrics struct {
	mu           sync.Mutex
	observations []string
}

func (r *recordingMetrics) ObserveInvocation(tool string, status domain.InvocationStatus, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = append(r.observations, tool+"/"+string(status))
}

func TestInvoke_ObservesMetrics(t *testing.T) {
	metrics := &recordingMetrics{}
	d := New(Config{
		Metrics: metrics,
		Now:     func() time.Time { return fixedInstant },
	})

	d.Invoke(context.Background(), "get_current_time", map[string]any{"format": "iso"})
	d.Invoke(context.Background(), "no_such_tool", map[string]any{})

	assert.Equal(t, []string{
		"get_current_time/success",
		"no_such_tool/error",
	}, metrics.observations)
}
