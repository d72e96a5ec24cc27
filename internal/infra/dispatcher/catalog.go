package dispatcher

import "timemcp/internal/domain"

// Catalog returns the tool descriptors in their stable, published order.
// The slice is rebuilt per call so callers cannot mutate the catalog.
func Catalog() []domain.ToolDescriptor {
	return []domain.ToolDescriptor{
		{
			Name:        "get_current_time",
			Description: "Get the current time, optionally in a specific timezone",
			Parameters: []domain.ParameterSpec{
				{
					Name:        "timezone",
					Kind:        "string",
					Description: "IANA timezone identifier (e.g. America/New_York) or \"system\" for the host zone",
					Default:     domain.DefaultTimezone,
				},
				{
					Name:        "format",
					Kind:        "string",
					Description: "Output format for the time string",
					Enum: []string{
						domain.FormatTwelveHour,
						domain.FormatTwentyFourHour,
						domain.FormatISO,
					},
					Default: domain.DefaultFormat,
				},
			},
		},
		{
			Name:        "get_time_info",
			Description: "Get detailed information about the current time and date",
			Parameters: []domain.ParameterSpec{
				{
					Name:        "timezone",
					Kind:        "string",
					Description: "IANA timezone identifier (e.g. America/New_York) or \"system\" for the host zone",
					Default:     domain.DefaultTimezone,
				},
			},
		},
	}
}
