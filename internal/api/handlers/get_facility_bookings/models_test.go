package get_facility_bookings

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulport/DockSlotService/internal/domain"
)

func TestParseFilter(t *testing.T) {
	query := url.Values{}
	query.Set("appointmentTypeId", "100")
	query.Set("from", "2026-03-09")
	query.Set("to", "2026-03-15")
	query.Set("status", "scheduled")
	query.Set("includeInactive", "true")

	filter, err := ParseFilter(10, query)
	require.NoError(t, err)

	assert.Equal(t, int64(10), filter.FacilityID)
	require.NotNil(t, filter.AppointmentTypeID)
	assert.Equal(t, int64(100), *filter.AppointmentTypeID)
	require.NotNil(t, filter.StartDate)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	require.NotNil(t, filter.EndDate)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *filter.EndDate)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.StatusScheduled, *filter.Status)
	assert.True(t, filter.IncludeInactive)

	// The parsed dates survive the conversion into the storage filter.
	storageFilter := filter.ToDomainFilter()
	require.NotNil(t, storageFilter.StartDate)
	assert.Equal(t, *filter.StartDate, *storageFilter.StartDate)
	require.NotNil(t, storageFilter.EndDate)
	assert.Equal(t, *filter.EndDate, *storageFilter.EndDate)
}

func TestParseFilter_Defaults(t *testing.T) {
	filter, err := ParseFilter(10, url.Values{})
	require.NoError(t, err)

	assert.Equal(t, int64(10), filter.FacilityID)
	assert.Nil(t, filter.AppointmentTypeID)
	assert.Nil(t, filter.StartDate)
	assert.Nil(t, filter.EndDate)
	assert.Nil(t, filter.Status)
	assert.False(t, filter.IncludeInactive)
}

func TestParseFilter_BadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric type id", key: "appointmentTypeId", value: "abc"},
		{name: "malformed from date", key: "from", value: "03/09/2026"},
		{name: "malformed to date", key: "to", value: "2026-13-40"},
		{name: "non-boolean includeInactive", key: "includeInactive", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			query.Set(tt.key, tt.value)

			_, err := ParseFilter(10, query)
			assert.Error(t, err)
		})
	}
}
