// Package policy holds the declarative access rules evaluated before every
// collection read or write. Each rule maps {collection, role, operation} to
// a denial, an unrestricted allow, or a query scope pinned to the caller.
package policy

import (
	"homestay/models"
	"homestay/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Principal is the authenticated caller, as established by the auth
// middleware. A nil *Principal means the request carried no valid token.
type Principal struct {
	ID   string
	Role string
}

// Operation names follow the service-call convention of the API surface.
type Operation string

const (
	OpFind   Operation = "find"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpPatch  Operation = "patch"
	OpRemove Operation = "remove"
)

type effect int

const (
	deny effect = iota
	allow
	scopeCustomer // query pinned to customerId == caller
	scopeProvider // query pinned to providerId == caller
	scopeOwner    // query pinned to userId == caller
	scopeSelf     // query pinned to id == caller
)

// rules is the per-collection access table for authenticated, non-admin
// callers. Admins bypass it entirely; unauthenticated access is governed by
// publicOps and the public booking-query shapes.
var rules = map[string]map[string]map[Operation]effect{
	"bookings": {
		models.RoleCustomer: {
			OpFind: scopeCustomer, OpGet: allow, OpCreate: allow,
			OpUpdate: scopeCustomer, OpPatch: scopeCustomer, OpRemove: scopeCustomer,
		},
		models.RoleProvider: {
			OpFind: scopeProvider, OpGet: allow,
			OpUpdate: scopeProvider, OpPatch: scopeProvider,
		},
	},
	"staffinfo": {
		models.RoleProvider: {
			OpFind: scopeProvider, OpGet: scopeProvider, OpCreate: allow,
			OpUpdate: scopeProvider, OpPatch: scopeProvider, OpRemove: scopeProvider,
		},
	},
	"listings": {
		models.RoleCustomer: {OpFind: allow, OpGet: allow},
		models.RoleProvider: {
			OpFind: allow, OpGet: allow, OpCreate: allow,
			OpUpdate: scopeProvider, OpPatch: scopeProvider, OpRemove: scopeProvider,
		},
	},
	"reviews": {
		models.RoleCustomer: {
			OpFind: allow, OpGet: allow, OpCreate: allow,
			OpUpdate: scopeCustomer, OpPatch: scopeCustomer, OpRemove: scopeCustomer,
		},
		models.RoleProvider: {OpFind: allow, OpGet: allow},
	},
	"users": {
		models.RoleCustomer: {OpGet: allow, OpUpdate: scopeSelf, OpPatch: scopeSelf, OpRemove: scopeSelf},
		models.RoleProvider: {OpGet: allow, OpUpdate: scopeSelf, OpPatch: scopeSelf, OpRemove: scopeSelf},
	},
	"audits": {
		models.RoleCustomer: {OpFind: scopeCustomer, OpGet: allow, OpCreate: allow},
		models.RoleProvider: {OpFind: scopeProvider, OpGet: allow, OpCreate: allow},
	},
	"profiles": {
		models.RoleCustomer: {
			OpFind: allow, OpGet: allow, OpCreate: allow,
			OpUpdate: scopeOwner, OpPatch: scopeOwner, OpRemove: scopeOwner,
		},
		models.RoleProvider: {
			OpFind: allow, OpGet: allow, OpCreate: allow,
			OpUpdate: scopeOwner, OpPatch: scopeOwner, OpRemove: scopeOwner,
		},
	},
	"favorites": {
		models.RoleCustomer: {
			OpFind: scopeOwner, OpGet: scopeOwner, OpCreate: allow,
			OpRemove: scopeOwner,
		},
		models.RoleProvider: {
			OpFind: scopeOwner, OpGet: scopeOwner, OpCreate: allow,
			OpRemove: scopeOwner,
		},
	},
}

// publicOps lists the operations open to unauthenticated callers.
var publicOps = map[string]map[Operation]bool{
	"listings": {OpFind: true, OpGet: true},
	"users":    {OpCreate: true}, // signup
	"audits":   {OpCreate: true}, // login events land here before a token exists
}

// PublicBookingQuery reports whether an unauthenticated bookings query
// matches one of the two allowed public shapes: filtering strictly by
// rating, or filtering by listingId with a field projection.
func PublicBookingQuery(query bson.M, projection bson.M) bool {
	if query == nil {
		return false
	}
	if _, ok := query["rating"]; ok {
		return true
	}
	if _, ok := query["listingId"]; ok && len(projection) > 0 {
		return true
	}
	return false
}

// Evaluate checks the access table and returns the caller's query with any
// role scope merged in. It fails with NotAuthenticated for anonymous callers
// outside the public surface, and NotAuthorized for callers whose role has
// no rule for the operation.
func Evaluate(collection string, p *Principal, op Operation, query bson.M, projection bson.M) (bson.M, error) {
	scoped := bson.M{}
	for k, v := range query {
		scoped[k] = v
	}

	if p == nil {
		if publicOps[collection][op] {
			return scoped, nil
		}
		if collection == "bookings" && op == OpFind && PublicBookingQuery(query, projection) {
			return scoped, nil
		}
		return nil, utils.NewNotAuthenticatedError()
	}

	if p.Role == models.RoleAdmin {
		return scoped, nil
	}

	switch rules[collection][p.Role][op] {
	case allow:
		return scoped, nil
	case scopeCustomer:
		scoped["customerId"] = p.ID
		return scoped, nil
	case scopeProvider:
		scoped["providerId"] = p.ID
		return scoped, nil
	case scopeOwner:
		scoped["userId"] = p.ID
		return scoped, nil
	case scopeSelf:
		scoped["id"] = p.ID
		return scoped, nil
	default:
		return nil, utils.NewNotAuthorizedError("you are not allowed to perform this operation")
	}
}
