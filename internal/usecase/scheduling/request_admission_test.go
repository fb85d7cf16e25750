package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockwise/dock-scheduler/internal/audit"
	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/locks"
	"github.com/dockwise/dock-scheduler/internal/models"
)

func newAdmissionUC(repo *fakeRepo) *RequestAdmission {
	return NewRequestAdmission(
		repo,
		locks.NewKeyedMutex(2*time.Second),
		audit.NewDispatcher(noopSink{}),
	)
}

func admissionFor(t *testing.T, hour, min int) domain.AdmissionInput {
	return domain.AdmissionInput{
		FacilityID:        1,
		AppointmentTypeID: 10,
		StartTimeUTC:      nyInstant(t, hour, min).UTC(),
		CarrierName:       "Hauler One",
		CarrierPhone:      "555-0100",
		TruckPlate:        "TRK-1234",
	}
}

func TestRequestAdmission_RoundTrip(t *testing.T) {
	repo := testRepo(t)
	availability := NewGetAvailability(repo)
	admission := newAdmissionUC(repo)

	in := domain.AvailabilityInput{FacilityID: 1, AppointmentTypeID: 10, Date: nyMonday(t)}

	before, err := availability.Execute(context.Background(), in)
	require.NoError(t, err)
	require.True(t, before[0].Available)

	result, err := admission.Execute(context.Background(), admissionFor(t, 8, 0))
	require.NoError(t, err)

	require.True(t, result.Admitted)
	require.NotNil(t, result.Booking)
	assert.NotEmpty(t, result.Booking.Reference)
	assert.Equal(t, "scheduled", result.Booking.Status)
	assert.Equal(t, time.UTC, result.Booking.StartTime.Location())
	assert.Equal(t, nyInstant(t, 8, 0).UTC(), result.Booking.StartTime)
	assert.Equal(t, nyInstant(t, 9, 0).UTC(), result.Booking.EndTime)

	// The admitted booking is visible to the next availability query.
	after, err := availability.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, after[0].RemainingCapacity)
}

func TestRequestAdmission_StructuralRejections(t *testing.T) {
	repo := testRepo(t)
	admission := newAdmissionUC(repo)

	cases := []struct {
		name   string
		start  time.Time
		reason string
	}{
		{"before opening", nyInstant(t, 6, 0), domain.ReasonOutsideHours},
		{"after closing", nyInstant(t, 18, 0), domain.ReasonOutsideHours},
		{"off the grid", nyInstant(t, 9, 10), domain.ReasonSlotNotFound},
		{"tail past close", nyInstant(t, 16, 30), domain.ReasonPastHours},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := admissionFor(t, 0, 0)
			in.StartTimeUTC = tc.start.UTC()

			result, err := admission.Execute(context.Background(), in)
			require.NoError(t, err)

			assert.False(t, result.Admitted)
			assert.Equal(t, tc.reason, result.Reason)
			assert.Nil(t, result.Booking)
		})
	}

	assert.Empty(t, repo.bookings)
}

func TestRequestAdmission_ClosedDay(t *testing.T) {
	repo := testRepo(t)
	admission := newAdmissionUC(repo)

	in := admissionFor(t, 8, 0)
	in.StartTimeUTC = time.Date(2026, time.March, 1, 8, 0, 0, 0, nyLoc(t)).UTC() // Sunday

	result, err := admission.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, result.Admitted)
	assert.Equal(t, domain.ReasonOutsideHours, result.Reason)
}

func TestRequestAdmission_CapacityExhaustion(t *testing.T) {
	repo := testRepo(t)
	admission := newAdmissionUC(repo)

	first, err := admission.Execute(context.Background(), admissionFor(t, 9, 0))
	require.NoError(t, err)
	require.True(t, first.Admitted)

	second, err := admission.Execute(context.Background(), admissionFor(t, 9, 0))
	require.NoError(t, err)
	require.True(t, second.Admitted)

	third, err := admission.Execute(context.Background(), admissionFor(t, 9, 0))
	require.NoError(t, err)
	assert.False(t, third.Admitted)
	assert.Equal(t, domain.ReasonNoCapacity, third.Reason)

	assert.Len(t, repo.bookings, 2)
}

func TestRequestAdmission_DailyCap(t *testing.T) {
	repo := testRepo(t)
	repo.types[10].MaxPerDay = intPtr(1)
	admission := newAdmissionUC(repo)

	first, err := admission.Execute(context.Background(), admissionFor(t, 9, 0))
	require.NoError(t, err)
	require.True(t, first.Admitted)

	// Non-overlapping slot, same day: the cap still applies.
	second, err := admission.Execute(context.Background(), admissionFor(t, 14, 0))
	require.NoError(t, err)
	assert.False(t, second.Admitted)
	assert.Equal(t, domain.ReasonDailyCap, second.Reason)
}

func TestRequestAdmission_DockConflict(t *testing.T) {
	repo := testRepo(t)
	dockID := uint(3)
	repo.docks[dockID] = &models.Dock{ID: dockID, FacilityID: 1, Name: "Dock 3", Active: true}
	admission := newAdmissionUC(repo)

	in := admissionFor(t, 9, 0)
	in.DockID = &dockID

	first, err := admission.Execute(context.Background(), in)
	require.NoError(t, err)
	require.True(t, first.Admitted)

	// Capacity remains for the type, but the dock itself is taken.
	second, err := admission.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, second.Admitted)
	assert.Equal(t, domain.ReasonNoCapacity, second.Reason)
}

func TestRequestAdmission_UnknownDock(t *testing.T) {
	repo := testRepo(t)
	admission := newAdmissionUC(repo)

	dockID := uint(42)
	in := admissionFor(t, 9, 0)
	in.DockID = &dockID

	_, err := admission.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "dock_not_found"))
}

func TestRequestAdmission_InactiveType(t *testing.T) {
	repo := testRepo(t)
	repo.types[10].Active = false
	admission := newAdmissionUC(repo)

	_, err := admission.Execute(context.Background(), admissionFor(t, 9, 0))
	assert.True(t, httperr.IsBusiness(err, "appointment_type_inactive"))
}

func TestRequestAdmission_CarrierDedupByPhone(t *testing.T) {
	repo := testRepo(t)
	admission := newAdmissionUC(repo)

	_, err := admission.Execute(context.Background(), admissionFor(t, 9, 0))
	require.NoError(t, err)

	in := admissionFor(t, 11, 0)
	in.CarrierName = "Hauler One Renamed"

	_, err = admission.Execute(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, repo.carriers, 1)
	assert.Len(t, repo.bookings, 2)
	assert.Equal(t, repo.bookings[0].CarrierID, repo.bookings[1].CarrierID)
}

func TestRequestAdmission_ConcurrentRequestsNeverOverbook(t *testing.T) {
	repo := testRepo(t)
	admission := newAdmissionUC(repo)

	const attempts = 7 // maxConcurrent is 2

	var wg sync.WaitGroup
	results := make([]*AdmissionResult, attempts)
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = admission.Execute(context.Background(), admissionFor(t, 10, 0))
		}(i)
	}
	wg.Wait()

	admitted := 0
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		if results[i].Admitted {
			admitted++
		} else {
			assert.Equal(t, domain.ReasonNoCapacity, results[i].Reason)
		}
	}

	assert.Equal(t, 2, admitted)
	assert.Len(t, repo.bookings, 2)
}
