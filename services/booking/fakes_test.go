package booking

import (
	"context"

	"homestay/models"
	"homestay/services/audit"
	"homestay/services/rating"
	"homestay/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NewNotFoundError("booking", id)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return utils.NewNotFoundError("booking", b.ID)
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) Find(ctx context.Context, filter bson.M, projection bson.M, limit, skip int64) ([]models.Booking, int64, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	var removed int64
	for id, b := range r.bookings {
		if b.CustomerID == userID || b.ProviderID == userID {
			delete(r.bookings, id)
			removed++
		}
	}
	return removed, nil
}

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*models.Review{}}
}

func (r *fakeReviewRepo) Create(ctx context.Context, rv *models.Review) error {
	for _, existing := range r.reviews {
		if existing.BookingID == rv.BookingID {
			return utils.NewAlreadyReviewedError(rv.BookingID)
		}
	}
	cp := *rv
	r.reviews[rv.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, utils.NewNotFoundError("review", id)
	}
	cp := *rv
	return &cp, nil
}

func (r *fakeReviewRepo) ListActiveByListing(ctx context.Context, listingID string) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ListingID == listingID && rv.Status == models.ReviewStatusActive {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.Review, int64, error) {
	var out []models.Review
	for _, rv := range r.reviews {
		out = append(out, *rv)
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return utils.NewNotFoundError("review", id)
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) DeleteByCustomer(ctx context.Context, customerID string) (int64, error) {
	var removed int64
	for id, rv := range r.reviews {
		if rv.CustomerID == customerID {
			delete(r.reviews, id)
			removed++
		}
	}
	return removed, nil
}

type fakeListingRepo struct {
	listings map[string]*models.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*models.Listing{}}
}

func (r *fakeListingRepo) Create(ctx context.Context, l *models.Listing) error {
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, utils.NewNotFoundError("listing", id)
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.Listing, int64, error) {
	var out []models.Listing
	for _, l := range r.listings {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) Update(ctx context.Context, l *models.Listing) error {
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) SetRating(ctx context.Context, id string, rating *float64) error {
	l, ok := r.listings[id]
	if !ok {
		return utils.NewNotFoundError("listing", id)
	}
	l.Rating = rating
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) AllIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for id := range r.listings {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeStaffRepo struct {
	members map[string]*models.StaffInfo
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{members: map[string]*models.StaffInfo{}}
}

func (r *fakeStaffRepo) Create(ctx context.Context, m *models.StaffInfo) error {
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffInfo, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, utils.NewNotFoundError("staff member", id)
	}
	cp := *m
	return &cp, nil
}

func (r *fakeStaffRepo) Find(ctx context.Context, filter bson.M, limit, skip int64) ([]models.StaffInfo, int64, error) {
	var out []models.StaffInfo
	for _, m := range r.members {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeStaffRepo) Update(ctx context.Context, m *models.StaffInfo) error {
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeStaffRepo) Delete(ctx context.Context, id string) error {
	delete(r.members, id)
	return nil
}

// fakeRecorder captures audit entries in memory.
type fakeRecorder struct {
	entries []models.Audit
}

func (r *fakeRecorder) Record(ctx context.Context, entry models.Audit) {
	r.entries = append(r.entries, entry)
}

func (r *fakeRecorder) ListRecent(ctx context.Context, filter bson.M, limit, skip int64) (*models.Page[models.Audit], error) {
	return &models.Page[models.Audit]{
		Total: int64(len(r.entries)),
		Limit: limit,
		Skip:  skip,
		Data:  r.entries,
	}, nil
}

func (r *fakeRecorder) lastAction() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1].Action
}

type testEnv struct {
	svc      *DefaultLifecycleService
	bookings *fakeBookingRepo
	reviews  *fakeReviewRepo
	listings *fakeListingRepo
	staff    *fakeStaffRepo
	audits   *fakeRecorder
}

func newTestEnv() *testEnv {
	bookings := newFakeBookingRepo()
	reviews := newFakeReviewRepo()
	listings := newFakeListingRepo()
	staffMembers := newFakeStaffRepo()
	audits := &fakeRecorder{}

	svc := &DefaultLifecycleService{
		Bookings: bookings,
		Reviews:  reviews,
		Listings: listings,
		Staff:    staffMembers,
		Audit:    audits,
		Ratings:  &rating.DefaultAggregator{Reviews: reviews, Listings: listings},
	}
	return &testEnv{svc: svc, bookings: bookings, reviews: reviews, listings: listings, staff: staffMembers, audits: audits}
}

var _ audit.Recorder = (*fakeRecorder)(nil)
