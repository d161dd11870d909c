package policy

import (
	"testing"

	"homestay/models"
	"homestay/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEvaluateAnonymous(t *testing.T) {
	_, err := Evaluate("bookings", nil, OpFind, bson.M{}, nil)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthenticated), "got %v", err)

	_, err = Evaluate("listings", nil, OpFind, bson.M{}, nil)
	assert.NoError(t, err, "listings are public")

	_, err = Evaluate("users", nil, OpCreate, bson.M{}, nil)
	assert.NoError(t, err, "signup is public")

	_, err = Evaluate("users", nil, OpFind, bson.M{}, nil)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthenticated), "got %v", err)
}

func TestPublicBookingQueryShapes(t *testing.T) {
	// Shape 1: filtering by rating.
	assert.True(t, PublicBookingQuery(bson.M{"rating": 5}, nil))

	// Shape 2: listing's reviews with a projection.
	assert.True(t, PublicBookingQuery(bson.M{"listingId": "l1"}, bson.M{"rating": 1, "comment": 1}))

	// listingId without a projection exposes whole documents.
	assert.False(t, PublicBookingQuery(bson.M{"listingId": "l1"}, nil))
	assert.False(t, PublicBookingQuery(bson.M{"listingId": "l1"}, bson.M{}))

	// Anything else is private.
	assert.False(t, PublicBookingQuery(bson.M{"customerId": "c1"}, bson.M{"rating": 1}))
	assert.False(t, PublicBookingQuery(bson.M{}, bson.M{"rating": 1}))
	assert.False(t, PublicBookingQuery(nil, nil))
}

func TestEvaluateAnonymousPublicBookingShapes(t *testing.T) {
	scoped, err := Evaluate("bookings", nil, OpFind, bson.M{"rating": 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"rating": 5}, scoped, "public shapes pass through unscoped")

	_, err = Evaluate("bookings", nil, OpFind, bson.M{"listingId": "l1"}, bson.M{"rating": 1})
	assert.NoError(t, err)

	_, err = Evaluate("bookings", nil, OpFind, bson.M{"customerId": "c1"}, nil)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthenticated), "got %v", err)
}

func TestEvaluateCustomerScope(t *testing.T) {
	p := &Principal{ID: "c1", Role: models.RoleCustomer}

	scoped, err := Evaluate("bookings", p, OpFind, bson.M{"status": "pending"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "c1", scoped["customerId"])
	assert.Equal(t, "pending", scoped["status"])

	// A customer cannot widen the scope to someone else's bookings.
	scoped, err = Evaluate("bookings", p, OpFind, bson.M{"customerId": "someone-else"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "c1", scoped["customerId"], "scope overrides the client filter")
}

func TestEvaluateProviderScope(t *testing.T) {
	p := &Principal{ID: "p1", Role: models.RoleProvider}

	scoped, err := Evaluate("bookings", p, OpFind, bson.M{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "p1", scoped["providerId"])

	scoped, err = Evaluate("staffinfo", p, OpFind, bson.M{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "p1", scoped["providerId"])
}

func TestEvaluateDeniesMissingRules(t *testing.T) {
	provider := &Principal{ID: "p1", Role: models.RoleProvider}
	customer := &Principal{ID: "c1", Role: models.RoleCustomer}

	// Providers do not create bookings.
	_, err := Evaluate("bookings", provider, OpCreate, bson.M{}, nil)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "got %v", err)

	// Customers have no staff roster.
	_, err = Evaluate("staffinfo", customer, OpFind, bson.M{}, nil)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "got %v", err)

	// Providers never remove bookings.
	_, err = Evaluate("bookings", provider, OpRemove, bson.M{}, nil)
	assert.True(t, utils.IsCode(err, utils.CodeNotAuthorized), "got %v", err)
}

func TestEvaluateAdminBypass(t *testing.T) {
	admin := &Principal{ID: "a1", Role: models.RoleAdmin}

	for _, collection := range []string{"bookings", "users", "staffinfo", "audits", "reviews"} {
		scoped, err := Evaluate(collection, admin, OpFind, bson.M{"x": 1}, nil)
		require.NoError(t, err, collection)
		assert.Equal(t, bson.M{"x": 1}, scoped, "admin queries are not scoped")
	}
}

func TestEvaluateDoesNotMutateCallerQuery(t *testing.T) {
	p := &Principal{ID: "c1", Role: models.RoleCustomer}
	query := bson.M{"status": "pending"}

	_, err := Evaluate("bookings", p, OpFind, query, nil)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"status": "pending"}, query)
}

func TestEvaluateSelfScope(t *testing.T) {
	p := &Principal{ID: "u1", Role: models.RoleCustomer}

	scoped, err := Evaluate("users", p, OpPatch, bson.M{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "u1", scoped["id"])

	scoped, err = Evaluate("favorites", p, OpFind, bson.M{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "u1", scoped["userId"])
}
