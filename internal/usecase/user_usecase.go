package usecase

import (
	"context"
	"fmt"

	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/infrastructure/cache"
	"github.com/AlexCL0320/backend-banco-angeles/internal/service"

	"github.com/sirupsen/logrus"
)

type UserUsecase interface {
	GetAll(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*entity.User, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}

type userUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	tokenStore   cache.TokenStore
	auditService service.AuditService
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenStore cache.TokenStore,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		tokenStore:   tokenStore,
		auditService: auditService,
	}
}

func (u *userUsecase) GetAll(ctx context.Context) ([]entity.User, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}
	return users, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, notFound(ErrUserNotFound, id)
	}
	return user, nil
}

func (u *userUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: email %q", ErrUserNotFound, email)
	}
	return user, nil
}

func (u *userUsecase) checkEmail(ctx context.Context, email string, excludeID int64) error {
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return fmt.Errorf("%w: %s", ErrEmailAlreadyExists, email)
	}
	return nil
}

func (u *userUsecase) findRole(ctx context.Context, roleID int64) (*entity.Role, error) {
	role, err := u.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role by ID: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, notFound(ErrRoleNotValid, roleID)
	}
	return role, nil
}

// resolveRole returns the requested role, or the default role when none is requested.
func (u *userUsecase) resolveRole(ctx context.Context, roleID *int64) (*entity.Role, error) {
	if roleID != nil {
		return u.findRole(ctx, *roleID)
	}

	role, err := u.roleRepo.FindDefault(ctx)
	if err != nil {
		u.log.Warnf("Failed to find default role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrDefaultRoleNotFound
	}
	return role, nil
}

// userStoreError tells the email and username backstops apart.
func userStoreError(err error) error {
	if name, ok := apperror.ViolatedConstraint(err); ok && name == repository.ConstraintUserUsername {
		return storeError(err, ErrUsernameAlreadyExists)
	}
	return storeError(err, ErrEmailAlreadyExists)
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*entity.User, error) {
	if err := u.checkEmail(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	role, err := u.resolveRole(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(req.Username, req.Email, req.Sex, req.Password, role)
	if err != nil {
		return nil, err
	}

	saved, err := u.userRepo.Save(ctx, user)
	if err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, userStoreError(err)
	}

	u.auditService.LogCreate(ctx, entity.AuditEntityUser, saved.ID, saved)
	return saved, nil
}

// Update re-hashes the password when one is given. Changing the password or
// deactivating the account revokes every issued token of the user.
func (u *userUsecase) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*entity.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *user

	if _, err := setText("username", req.Username, &user.Username, true); err != nil {
		return nil, err
	}
	emailChanged, err := setText("email", req.Email, &user.Email, true)
	if err != nil {
		return nil, err
	}
	if emailChanged {
		if err := u.checkEmail(ctx, user.Email, id); err != nil {
			return nil, err
		}
	}
	if _, err := setText("sex", req.Sex, &user.Sex, true); err != nil {
		return nil, err
	}
	if setID(req.RoleID, &user.RoleID) {
		role, err := u.findRole(ctx, user.RoleID)
		if err != nil {
			return nil, err
		}
		user.Role = *role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsStaff != nil {
		user.IsStaff = *req.IsStaff
	}

	passwordChanged := req.Password != nil && *req.Password != ""
	if passwordChanged {
		user.Password = *req.Password
	}

	saved, err := u.userRepo.Save(ctx, user)
	if err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, userStoreError(err)
	}

	if passwordChanged || (old.IsActive && !saved.IsActive) {
		u.revokeTokens(ctx, id)
	}
	if passwordChanged || !old.Equal(saved) {
		u.auditService.LogUpdate(ctx, entity.AuditEntityUser, id, old, saved)
	}
	return saved, nil
}

func (u *userUsecase) Delete(ctx context.Context, id int64) error {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	u.revokeTokens(ctx, id)
	u.auditService.LogDelete(ctx, entity.AuditEntityUser, id, user)
	return nil
}

func (u *userUsecase) revokeTokens(ctx context.Context, userID int64) {
	if err := u.tokenStore.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke user tokens: %+v", err)
	}
}
