// Package weather provides a client for the OpenWeatherMap current-weather
// API. Lookups run per city and never return a Go error: every failure is
// folded into the Report for that city so callers can render partial results
// without failure-specific branching.
package weather
