package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(day int) time.Time {
	return time.Date(2025, 10, day, 0, 0, 0, 0, time.UTC)
}

func hour(h int) time.Time {
	return time.Date(2025, 10, 10, h, 0, 0, 0, time.UTC)
}

func TestTimeRange_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		r     TimeRange
		valid bool
	}{
		{
			name:  "positive length",
			r:     TimeRange{Start: date(10), End: date(12)},
			valid: true,
		},
		{
			name:  "zero length",
			r:     TimeRange{Start: date(10), End: date(10)},
			valid: false,
		},
		{
			name:  "negative length",
			r:     TimeRange{Start: date(12), End: date(10)},
			valid: false,
		},
		{
			name:  "zero values",
			r:     TimeRange{},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.r.IsValid())
		})
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        TimeRange
		b        TimeRange
		overlaps bool
	}{
		{
			name:     "partial overlap",
			a:        TimeRange{Start: hour(10), End: hour(12)},
			b:        TimeRange{Start: hour(11), End: hour(13)},
			overlaps: true,
		},
		{
			name:     "adjacent ranges do not overlap",
			a:        TimeRange{Start: hour(10), End: hour(12)},
			b:        TimeRange{Start: hour(12), End: hour(13)},
			overlaps: false,
		},
		{
			name:     "identical ranges overlap",
			a:        TimeRange{Start: hour(10), End: hour(12)},
			b:        TimeRange{Start: hour(10), End: hour(12)},
			overlaps: true,
		},
		{
			name:     "contained range overlaps",
			a:        TimeRange{Start: hour(8), End: hour(20)},
			b:        TimeRange{Start: hour(10), End: hour(12)},
			overlaps: true,
		},
		{
			name:     "disjoint ranges do not overlap",
			a:        TimeRange{Start: hour(8), End: hour(9)},
			b:        TimeRange{Start: hour(14), End: hour(15)},
			overlaps: false,
		},
		{
			name:     "one nanosecond of overlap",
			a:        TimeRange{Start: hour(10), End: hour(12).Add(time.Nanosecond)},
			b:        TimeRange{Start: hour(12), End: hour(13)},
			overlaps: true,
		},
		{
			name:     "invalid receiver never overlaps",
			a:        TimeRange{Start: hour(12), End: hour(10)},
			b:        TimeRange{Start: hour(8), End: hour(20)},
			overlaps: false,
		},
		{
			name:     "invalid argument never overlaps",
			a:        TimeRange{Start: hour(8), End: hour(20)},
			b:        TimeRange{Start: hour(12), End: hour(12)},
			overlaps: false,
		},
		{
			name:     "two identical invalid ranges do not overlap",
			a:        TimeRange{Start: hour(10), End: hour(10)},
			b:        TimeRange{Start: hour(10), End: hour(10)},
			overlaps: false,
		},
		{
			name:     "multi-day booking overlap",
			a:        TimeRange{Start: date(10), End: date(12)},
			b:        TimeRange{Start: date(11), End: date(13)},
			overlaps: true,
		},
		{
			name:     "back to back bookings",
			a:        TimeRange{Start: date(10), End: date(12)},
			b:        TimeRange{Start: date(12), End: date(14)},
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_Duration(t *testing.T) {
	r := TimeRange{Start: hour(10), End: hour(12)}
	assert.Equal(t, 2*time.Hour, r.Duration())
}

func TestBooking_IsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s should be active", status)
	}
	for _, status := range CancelledStatuses {
		b := &Booking{Status: status}
		assert.False(t, b.IsActive(), "status %s should not be active", status)
	}
}

func TestBooking_Transitions(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanCheckIn())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanCheckIn())
	assert.False(t, (&Booking{Status: StatusCheckedIn}).CanCheckIn())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanCheckIn())

	assert.True(t, (&Booking{Status: StatusCheckedIn}).CanCheckOut())
	assert.False(t, (&Booking{Status: StatusConfirmed}).CanCheckOut())
	assert.False(t, (&Booking{Status: StatusCheckedOut}).CanCheckOut())
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, status := range AllBookingStatuses {
		assert.True(t, IsValidBookingStatus(status))
	}
	assert.False(t, IsValidBookingStatus("archived"))
	assert.False(t, IsValidBookingStatus(""))
}
