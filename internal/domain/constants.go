package domain

const (
	ServerName    = "timemcp"
	ServerVersion = "0.1.0"

	// TimezoneSystem selects the host's local zone instead of a named one.
	TimezoneSystem = "system"

	FormatTwelveHour     = "12hour"
	FormatTwentyFourHour = "24hour"
	FormatISO            = "iso"

	DefaultTimezone = TimezoneSystem
	DefaultFormat   = FormatTwelveHour

	DefaultObservabilityListenAddress = "0.0.0.0:9090"
)
