package booking

import (
	"context"
	"testing"
	"time"

	"homestay/models"
	"homestay/policy"
	"homestay/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	customer      = policy.Principal{ID: "cust-1", Role: models.RoleCustomer}
	otherCustomer = policy.Principal{ID: "cust-2", Role: models.RoleCustomer}
	provider      = policy.Principal{ID: "prov-1", Role: models.RoleProvider}
	otherProvider = policy.Principal{ID: "prov-2", Role: models.RoleProvider}
	admin         = policy.Principal{ID: "admin-1", Role: models.RoleAdmin}
)

func seedListing(env *testEnv) *models.Listing {
	l := &models.Listing{ID: "listing-1", ProviderID: provider.ID, Category: "homestay", Name: "Lakeside Cabin"}
	env.listings.listings[l.ID] = l
	return l
}

func seedBooking(env *testEnv, status string) *models.Booking {
	b := &models.Booking{
		ID:          "booking-1",
		ListingID:   "listing-1",
		CustomerID:  customer.ID,
		ProviderID:  provider.ID,
		BookingDate: time.Now().Add(48 * time.Hour),
		Status:      status,
		Notes:       "two guests, late arrival",
	}
	env.bookings.bookings[b.ID] = b
	return b
}

func TestCreateBooking(t *testing.T) {
	env := newTestEnv()
	seedListing(env)

	created, err := env.svc.Create(context.Background(), customer, CreateInput{
		ListingID:   "listing-1",
		BookingDate: time.Now().Add(24 * time.Hour),
		Status:      models.BookingStatusPending,
		Notes:       "two guests",
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Equal(t, customer.ID, created.CustomerID)
	assert.Equal(t, provider.ID, created.ProviderID, "provider must come from the listing")
	assert.False(t, created.HasReview)
	assert.Nil(t, created.ReviewID)

	require.Len(t, env.audits.entries, 1)
	entry := env.audits.entries[0]
	assert.Equal(t, models.AuditActionNewBooking, entry.Action)
	assert.Equal(t, "bookings", entry.ServiceName)
	assert.Equal(t, "New booking created for listing listing-1.", entry.Message)
	assert.Equal(t, created.ID, entry.BookingID)
}

func TestCreateBookingAlwaysEntersPending(t *testing.T) {
	env := newTestEnv()
	seedListing(env)

	// A client-supplied status other than pending is not honored.
	created, err := env.svc.Create(context.Background(), customer, CreateInput{
		ListingID: "listing-1",
		Status:    models.BookingStatusConfirmed,
		Notes:     "trying to skip the queue",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, created.Status)
}

func TestCreateBookingValidation(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, customer, CreateInput{ListingID: "listing-1", Notes: "hi there"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation), "missing status: %v", err)

	_, err = env.svc.Create(ctx, customer, CreateInput{ListingID: "listing-1", Status: "pending"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation), "missing notes: %v", err)

	_, err = env.svc.Create(ctx, customer, CreateInput{Status: "pending", Notes: "hi there"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation), "missing listingId: %v", err)

	_, err = env.svc.Create(ctx, customer, CreateInput{ListingID: "missing", Status: "pending", Notes: "hi"})
	assert.True(t, utils.IsCode(err, utils.CodeNotFound), "unknown listing: %v", err)

	assert.Empty(t, env.audits.entries, "rejected creates must not audit")
}

func TestAcceptBooking(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	seedBooking(env, models.BookingStatusPending)
	env.staff.members["staff-1"] = &models.StaffInfo{ID: "staff-1", ProviderID: provider.ID, Name: "Amina"}

	updated, err := env.svc.Accept(context.Background(), provider, "booking-1", AcceptInput{
		AssignedStaff: "staff-1",
		TimeSlot:      "14:00-16:00",
		ProviderNotes: "early check-in ok",
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, "staff-1", updated.AssignedStaff)
	assert.Equal(t, "14:00-16:00", updated.TimeSlot)

	require.Len(t, env.audits.entries, 1)
	entry := env.audits.entries[0]
	assert.Equal(t, models.AuditActionStatusChange, entry.Action)
	assert.Equal(t, "Booking status changed to confirmed.", entry.Message)
	assert.Equal(t, models.BookingStatusConfirmed, entry.Meta["to"])
}

func TestAcceptBookingAuthorization(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	seedBooking(env, models.BookingStatusPending)
	ctx := context.Background()

	_, err := env.svc.Accept(ctx, otherProvider, "booking-1", AcceptInput{})
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "foreign provider: %v", err)

	_, err = env.svc.Accept(ctx, admin, "booking-1", AcceptInput{})
	assert.NoError(t, err, "admin may accept any booking")
}

func TestAcceptBookingInvalidState(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	seedBooking(env, models.BookingStatusCompleted)

	_, err := env.svc.Accept(context.Background(), provider, "booking-1", AcceptInput{})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidTransition), "got %v", err)
}

func TestAcceptBookingRejectsForeignStaff(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	seedBooking(env, models.BookingStatusPending)
	env.staff.members["staff-x"] = &models.StaffInfo{ID: "staff-x", ProviderID: otherProvider.ID}

	_, err := env.svc.Accept(context.Background(), provider, "booking-1", AcceptInput{AssignedStaff: "staff-x"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation), "got %v", err)

	stored, _ := env.bookings.GetByID(context.Background(), "booking-1")
	assert.Equal(t, models.BookingStatusPending, stored.Status, "booking must stay pending")
}

func TestAdvanceFullLifecycle(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	seedBooking(env, models.BookingStatusPending)
	ctx := context.Background()

	for _, next := range []string{
		models.BookingStatusConfirmed,
		models.BookingStatusInProgress,
		models.BookingStatusCompleted,
	} {
		updated, err := env.svc.Advance(ctx, provider, "booking-1", next)
		require.NoError(t, err, "advance to %s", next)
		assert.Equal(t, next, updated.Status)
	}

	require.Len(t, env.audits.entries, 3)
	for _, entry := range env.audits.entries {
		assert.Equal(t, models.AuditActionStatusChange, entry.Action)
	}
}

func TestAdvanceRejectsIllegalTransition(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	seedBooking(env, models.BookingStatusPending)
	ctx := context.Background()

	_, err := env.svc.Advance(ctx, provider, "booking-1", models.BookingStatusCompleted)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidTransition), "pending -> completed: %v", err)

	stored, _ := env.bookings.GetByID(ctx, "booking-1")
	assert.Equal(t, models.BookingStatusPending, stored.Status)
	assert.Empty(t, env.audits.entries, "rejected transitions must not audit")
}

func TestAdvanceTerminalStatesAreFinal(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	ctx := context.Background()

	for _, terminal := range []string{models.BookingStatusCompleted, models.BookingStatusCancelled} {
		seedBooking(env, terminal)
		for _, next := range []string{
			models.BookingStatusPending,
			models.BookingStatusConfirmed,
			models.BookingStatusInProgress,
			models.BookingStatusCompleted,
			models.BookingStatusCancelled,
		} {
			_, err := env.svc.Advance(ctx, admin, "booking-1", next)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidTransition),
				"%s -> %s should be rejected, got %v", terminal, next, err)
		}
	}
}

func TestAdvanceCustomerMayOnlyCancel(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	seedBooking(env, models.BookingStatusPending)
	ctx := context.Background()

	_, err := env.svc.Advance(ctx, customer, "booking-1", models.BookingStatusConfirmed)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "got %v", err)

	_, err = env.svc.Advance(ctx, otherCustomer, "booking-1", models.BookingStatusCancelled)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "foreign customer: %v", err)

	updated, err := env.svc.Advance(ctx, customer, "booking-1", models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
}

func TestAdvanceProviderScopedToOwnBookings(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	seedBooking(env, models.BookingStatusPending)

	_, err := env.svc.Advance(context.Background(), otherProvider, "booking-1", models.BookingStatusConfirmed)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "got %v", err)
}

func TestGetByIDOwnership(t *testing.T) {
	env := newTestEnv()
	seedListing(env)
	seedBooking(env, models.BookingStatusPending)
	ctx := context.Background()

	_, err := env.svc.GetByID(ctx, customer, "booking-1")
	assert.NoError(t, err)
	_, err = env.svc.GetByID(ctx, provider, "booking-1")
	assert.NoError(t, err)
	_, err = env.svc.GetByID(ctx, admin, "booking-1")
	assert.NoError(t, err)

	_, err = env.svc.GetByID(ctx, otherCustomer, "booking-1")
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "got %v", err)
	_, err = env.svc.GetByID(ctx, otherProvider, "booking-1")
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "got %v", err)
}
