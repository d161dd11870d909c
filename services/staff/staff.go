package staff

import (
	"context"

	staffRepo "homestay/database/repository/staff"
	"homestay/models"
	"homestay/policy"
	"homestay/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// StaffService manages a provider's roster. Every operation is scoped to the
// calling provider; admins see everything.
type StaffService interface {
	Create(ctx context.Context, actor policy.Principal, input CreateInput) (*models.StaffInfo, error)
	Find(ctx context.Context, actor policy.Principal, limit, skip int64) (*models.Page[models.StaffInfo], error)
	Update(ctx context.Context, actor policy.Principal, id string, input CreateInput) (*models.StaffInfo, error)
	Delete(ctx context.Context, actor policy.Principal, id string) error
}

// CreateInput carries the editable staff fields. The provider is always the
// caller, never client-supplied.
type CreateInput struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}

func (s *DefaultStaffService) Create(ctx context.Context, actor policy.Principal, input CreateInput) (*models.StaffInfo, error) {
	if actor.Role != models.RoleProvider {
		return nil, utils.NewNotAuthorizedError("only providers manage staff")
	}
	if input.Name == "" {
		return nil, utils.NewValidationError("name is required")
	}

	member := &models.StaffInfo{
		ID:         uuid.New().String(),
		ProviderID: actor.ID,
		Name:       input.Name,
		Position:   input.Position,
		Email:      input.Email,
	}
	if err := s.Repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *DefaultStaffService) Find(ctx context.Context, actor policy.Principal, limit, skip int64) (*models.Page[models.StaffInfo], error) {
	filter, err := policy.Evaluate("staffinfo", &actor, policy.OpFind, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	members, total, err := s.Repo.Find(ctx, filter, limit, skip)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.StaffInfo]{Total: total, Limit: limit, Skip: skip, Data: members}, nil
}

func (s *DefaultStaffService) Update(ctx context.Context, actor policy.Principal, id string, input CreateInput) (*models.StaffInfo, error) {
	member, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin && actor.ID != member.ProviderID {
		return nil, utils.NewNotAuthorizedError("staff member belongs to another provider")
	}

	member.Name = input.Name
	member.Position = input.Position
	member.Email = input.Email
	if err := s.Repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *DefaultStaffService) Delete(ctx context.Context, actor policy.Principal, id string) error {
	member, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleAdmin && actor.ID != member.ProviderID {
		return utils.NewNotAuthorizedError("staff member belongs to another provider")
	}
	return s.Repo.Delete(ctx, id)
}
