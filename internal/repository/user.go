package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRole struct {
	UserID string
	RoleID int64
}

func (userRole) TableName() string { return "user_roles" }

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User, roleCodes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			if storage.IsUniqueViolation(err) {
				return domain.ErrEmailTaken
			}
			return fmt.Errorf("insert user: %w", err)
		}

		roles, err := assignRoles(tx, user.ID, roleCodes)
		if err != nil {
			return err
		}
		user.Roles = roles
		return nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Preload("Roles").First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrUserNotFound, "get user")
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Preload("Roles").First(&u, "email = ?", email).Error; err != nil {
		return nil, translate(err, domain.ErrUserNotFound, "get user by email")
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context, page domain.Page) ([]*domain.User, error) {
	var res []*domain.User
	err := paginate(r.db.WithContext(ctx), page).
		Preload("Roles").
		Order("created_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return res, nil
}

func (r *UserRepository) SetRoles(ctx context.Context, userID string, roleCodes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.User{}).Where("id = ?", userID).Count(&n).Error; err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		if n == 0 {
			return domain.ErrUserNotFound
		}

		if err := tx.Where("user_id = ?", userID).Delete(&userRole{}).Error; err != nil {
			return fmt.Errorf("clear roles: %w", err)
		}
		_, err := assignRoles(tx, userID, roleCodes)
		return err
	})
}

// Delete removes the user and everything they own. Seats held by their active
// bookings go back to the tours first.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active []domain.Booking
		err := tx.Clauses(forUpdate).
			Where("user_id = ? AND status IN ?", id, domain.ActiveStatuses).
			Find(&active).Error
		if err != nil {
			return fmt.Errorf("find active bookings: %w", err)
		}

		now := time.Now().UTC()
		for _, b := range active {
			if err = releaseSeats(tx, b.TourID, b.NumberOfParticipants, now); err != nil {
				return err
			}
		}

		for _, m := range []any{&domain.Booking{}, &domain.Review{}, &domain.Wishlist{}, &userRole{}} {
			if err = tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return fmt.Errorf("delete user data: %w", err)
			}
		}

		res := tx.Delete(&domain.User{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

func assignRoles(tx *gorm.DB, userID string, codes []string) ([]domain.Role, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	var roles []domain.Role
	if err := tx.Where("code IN ?", codes).Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	if len(roles) != len(uniq(codes)) {
		return nil, domain.ErrRoleNotFound
	}

	links := make([]userRole, 0, len(roles))
	for _, role := range roles {
		links = append(links, userRole{UserID: userID, RoleID: role.ID})
	}
	if err := tx.Create(&links).Error; err != nil {
		return nil, fmt.Errorf("assign roles: %w", err)
	}
	return roles, nil
}

func uniq(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
