package util

import (
	"fmt"
	"sync"
	"time"
)

// TimeProvider converts timestamps into the display timezone
type TimeProvider struct {
	location *time.Location
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	timeProviderMu     sync.Mutex
)

// InitializeTimeProvider sets the global display timezone. On error the
// previous provider stays in place.
func InitializeTimeProvider(timezone string) error {
	provider := &TimeProvider{}
	if err := provider.SetTimezone(timezone); err != nil {
		return err
	}

	timeProviderMu.Lock()
	globalTimeProvider = provider
	timeProviderMu.Unlock()
	return nil
}

// GetTimeProvider returns the global time provider, defaulting to UTC
func GetTimeProvider() *TimeProvider {
	timeProviderMu.Lock()
	defer timeProviderMu.Unlock()
	if globalTimeProvider == nil {
		globalTimeProvider = &TimeProvider{location: time.UTC}
	}
	return globalTimeProvider
}

// SetTimezone accepts an IANA name, "Local", or "" / "UTC" for UTC
func (tp *TimeProvider) SetTimezone(timezone string) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	loc := time.UTC
	switch timezone {
	case "", "UTC":
	case "Local":
		loc = time.Local
	default:
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w\nValid examples: UTC, Local, America/New_York, Asia/Tokyo, Europe/London", timezone, err)
		}
		loc = l
	}
	tp.location = loc
	return nil
}

// Location returns the configured timezone
func (tp *TimeProvider) Location() *time.Location {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.location
}

// Format formats t according to layout in the configured timezone
func (tp *TimeProvider) Format(t time.Time, layout string) string {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return t.In(tp.location).Format(layout)
}

// FormatRFC3339 parses an RFC 3339 timestamp and re-renders it in the
// configured timezone. Values that fail to parse are returned unchanged.
func (tp *TimeProvider) FormatRFC3339(value, layout string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return tp.Format(t, layout)
}
