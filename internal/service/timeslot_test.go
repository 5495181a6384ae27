package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psybook/internal/domain"
)

func validSlotDraft(typeID int64) domain.CreateTimeSlotDTO {
	link := "https://meet.example.com/room"
	address := "12 Clinic St"
	return domain.CreateTimeSlotDTO{
		StartTime:         time.Now().Add(24 * time.Hour),
		EndTime:           time.Now().Add(25 * time.Hour),
		PsychologistID:    psychID,
		AppointmentTypeID: typeID,
		MeetingLink:       &link,
		Address:           &address,
	}
}

func TestTimeSlotCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an available slot", func(t *testing.T) {
		f := newBookingFixture(t)

		slot, err := f.slots.Create(ctx, validSlotDraft(onlineTypeID))
		require.NoError(t, err)
		assert.True(t, slot.IsAvailable)
	})

	t.Run("start must precede end", func(t *testing.T) {
		f := newBookingFixture(t)

		draft := validSlotDraft(onlineTypeID)
		draft.EndTime = draft.StartTime

		_, err := f.slots.Create(ctx, draft)
		require.Error(t, err)
		assert.True(t, domain.IsBadRequest(err))
		assert.EqualError(t, err, "start time must be before end time")
	})

	t.Run("inactive appointment type is not found", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.appointmentTyps[onlineTypeID].IsActive = false

		_, err := f.slots.Create(ctx, validSlotDraft(onlineTypeID))
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.EqualError(t, err, "appointment type not found")
	})

	t.Run("online slot requires a meeting link", func(t *testing.T) {
		f := newBookingFixture(t)

		draft := validSlotDraft(onlineTypeID)
		draft.MeetingLink = nil

		_, err := f.slots.Create(ctx, draft)
		require.Error(t, err)
		assert.EqualError(t, err, "meeting link is required for online appointments")
	})

	t.Run("on-site and at-home slots require an address", func(t *testing.T) {
		f := newBookingFixture(t)

		for _, typeID := range []int64{onSiteTypeID, atHomeTypeID} {
			draft := validSlotDraft(typeID)
			draft.Address = nil

			_, err := f.slots.Create(ctx, draft)
			require.Error(t, err)
			assert.EqualError(t, err, "address is required for on-site and at-home appointments")
		}
	})

	t.Run("empty strings do not satisfy requirements", func(t *testing.T) {
		f := newBookingFixture(t)

		empty := ""
		draft := validSlotDraft(onlineTypeID)
		draft.MeetingLink = &empty

		_, err := f.slots.Create(ctx, draft)
		require.Error(t, err)
		assert.EqualError(t, err, "meeting link is required for online appointments")
	})
}

func TestTimeSlotUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("re-validates completeness against a new type", func(t *testing.T) {
		f := newBookingFixture(t)

		draft := validSlotDraft(onSiteTypeID)
		draft.MeetingLink = nil
		slot, err := f.slots.Create(ctx, draft)
		require.NoError(t, err)

		// Switching an address-only slot to online must demand the link.
		newType := onlineTypeID
		_, err = f.slots.Update(ctx, slot.ID, domain.UpdateTimeSlotDTO{AppointmentTypeID: &newType})
		require.Error(t, err)
		assert.EqualError(t, err, "meeting link is required for online appointments")
	})

	t.Run("keeps start before end after a patch", func(t *testing.T) {
		f := newBookingFixture(t)

		slot, err := f.slots.Create(ctx, validSlotDraft(onlineTypeID))
		require.NoError(t, err)

		badEnd := slot.StartTime.Add(-time.Hour)
		_, err = f.slots.Update(ctx, slot.ID, domain.UpdateTimeSlotDTO{EndTime: &badEnd})
		require.Error(t, err)
		assert.EqualError(t, err, "start time must be before end time")
	})

	t.Run("patches pass through when complete", func(t *testing.T) {
		f := newBookingFixture(t)

		slot, err := f.slots.Create(ctx, validSlotDraft(onlineTypeID))
		require.NoError(t, err)

		newLink := "https://meet.example.com/other"
		updated, err := f.slots.Update(ctx, slot.ID, domain.UpdateTimeSlotDTO{MeetingLink: &newLink})
		require.NoError(t, err)
		assert.Equal(t, &newLink, updated.MeetingLink)
	})

	t.Run("missing slot is not found", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.slots.Update(ctx, 999, domain.UpdateTimeSlotDTO{})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestTimeSlotDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses while an active booking references the slot", func(t *testing.T) {
		f := newBookingFixture(t)
		slot := f.store.addSlot(psychID, onlineTypeID, true)

		booking, err := f.bookings.Create(ctx, validDraft(slot.ID))
		require.NoError(t, err)

		err = f.slots.Delete(ctx, slot.ID)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
		assert.EqualError(t, err, "time slot has an active booking")

		// Releasing the booking unblocks the delete.
		_, err = f.bookings.Cancel(ctx, booking.ID)
		require.NoError(t, err)
		assert.NoError(t, f.slots.Delete(ctx, slot.ID))
	})

	t.Run("missing slot is not found", func(t *testing.T) {
		f := newBookingFixture(t)

		err := f.slots.Delete(ctx, 999)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestTimeSlotAvailabilityToggles(t *testing.T) {
	ctx := context.Background()

	f := newBookingFixture(t)
	slot := f.store.addSlot(psychID, onlineTypeID, true)

	updated, err := f.slots.MarkUnavailable(ctx, slot.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)

	updated, err = f.slots.MarkAvailable(ctx, slot.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable)
}

func TestTimeSlotFindWithFilters(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to available-only", func(t *testing.T) {
		f := newBookingFixture(t)
		available := f.store.addSlot(psychID, onlineTypeID, true)
		f.store.addSlot(psychID, onlineTypeID, false)

		slots, err := f.slots.FindWithFilters(ctx, domain.TimeSlotFilter{})
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, available.ID, slots[0].ID)
	})

	t.Run("explicit is_available=false returns only unavailable slots", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.addSlot(psychID, onlineTypeID, true)
		unavailable := f.store.addSlot(psychID, onlineTypeID, false)

		flag := false
		slots, err := f.slots.FindWithFilters(ctx, domain.TimeSlotFilter{IsAvailable: &flag})
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, unavailable.ID, slots[0].ID)
	})

	t.Run("specialization filters through the owner's capability set", func(t *testing.T) {
		f := newBookingFixture(t)
		slot := f.store.addSlot(psychID, onlineTypeID, true)

		spec := cbtSpecID
		slots, err := f.slots.FindWithFilters(ctx, domain.TimeSlotFilter{SpecializationID: &spec})
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, slot.ID, slots[0].ID)

		other := familySpecID
		slots, err = f.slots.FindWithFilters(ctx, domain.TimeSlotFilter{SpecializationID: &other})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("results are ordered by start time", func(t *testing.T) {
		f := newBookingFixture(t)
		later := f.store.addSlot(psychID, onlineTypeID, true)
		later.StartTime = time.Now().Add(48 * time.Hour)
		earlier := f.store.addSlot(psychID, onlineTypeID, true)
		earlier.StartTime = time.Now().Add(12 * time.Hour)

		slots, err := f.slots.FindWithFilters(ctx, domain.TimeSlotFilter{})
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, earlier.ID, slots[0].ID)
		assert.Equal(t, later.ID, slots[1].ID)
	})
}

func TestTimeSlotFindBookable(t *testing.T) {
	ctx := context.Background()

	f := newBookingFixture(t)
	future := f.store.addSlot(psychID, onlineTypeID, true)
	past := f.store.addSlot(psychID, onlineTypeID, true)
	past.StartTime = time.Now().Add(-2 * time.Hour)
	past.EndTime = time.Now().Add(-time.Hour)
	f.store.addSlot(psychID, onlineTypeID, false)

	// Even a caller explicitly asking for unavailable slots gets the forced
	// available-and-future view.
	flag := false
	slots, err := f.slots.FindBookable(ctx, domain.TimeSlotFilter{IsAvailable: &flag})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, future.ID, slots[0].ID)
}
