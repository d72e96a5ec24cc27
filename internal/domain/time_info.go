package domain

// TimeInfo is the structured record produced by get_time_info. Field order
// matters: it is serialized as indented JSON and the timezone-dependent
// fields are appended last, only when a timezone other than "system" was
// requested.
type TimeInfo struct {
	Timestamp        int64  `json:"timestamp"`
	ISO              string `json:"iso"`
	Local            string `json:"local"`
	DayOfWeek        string `json:"day_of_week"`
	Date             string `json:"date"`
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	Day              int    `json:"day"`
	Hour             int    `json:"hour"`
	Minute           int    `json:"minute"`
	Second           int    `json:"second"`
	UTCOffsetMinutes int    `json:"utc_offset_minutes"`

	TimezoneTime      string `json:"timezone_time,omitempty"`
	RequestedTimezone string `json:"requested_timezone,omitempty"`
	TimezoneError     string `json:"timezone_error,omitempty"`
}
