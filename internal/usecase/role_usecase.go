package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type RoleUsecase interface {
	GetAll(ctx context.Context) ([]entity.Role, error)
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	GetDefault(ctx context.Context) (*entity.Role, error)
	Create(ctx context.Context, req *dto.CreateRoleRequest) (*entity.Role, error)
	Update(ctx context.Context, id int64, req *dto.UpdateRoleRequest) (*entity.Role, error)
	Delete(ctx context.Context, id int64) error
}

type roleUsecase struct {
	log          *logrus.Logger
	roleRepo     repository.RoleRepository
	auditService service.AuditService
}

func NewRoleUsecase(log *logrus.Logger, roleRepo repository.RoleRepository, auditService service.AuditService) RoleUsecase {
	return &roleUsecase{
		log:          log,
		roleRepo:     roleRepo,
		auditService: auditService,
	}
}

func (u *roleUsecase) GetAll(ctx context.Context) ([]entity.Role, error) {
	roles, err := u.roleRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all roles: %+v", err)
		return nil, err
	}
	return roles, nil
}

func (u *roleUsecase) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	role, err := u.roleRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find role by ID: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, notFound(ErrRoleNotFound, id)
	}
	return role, nil
}

func (u *roleUsecase) GetDefault(ctx context.Context) (*entity.Role, error) {
	role, err := u.roleRepo.FindDefault(ctx)
	if err != nil {
		u.log.Warnf("Failed to find default role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w: no default role", ErrRoleNotFound)
	}
	return role, nil
}

func (u *roleUsecase) checkDuplicate(ctx context.Context, name string, excludeID int64) error {
	existing, err := u.roleRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to find role by name: %+v", err)
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return fmt.Errorf("%w: name %q", ErrRoleAlreadyExists, name)
	}
	return nil
}

// roleStoreError keeps a race on the default flag apart from a name clash.
func roleStoreError(err error) error {
	if name, ok := apperror.ViolatedConstraint(err); ok && name == repository.ConstraintRoleDefault {
		return fmt.Errorf("%w: another role became default concurrently", apperror.ErrPersistence)
	}
	return storeError(err, ErrRoleAlreadyExists)
}

func (u *roleUsecase) Create(ctx context.Context, req *dto.CreateRoleRequest) (*entity.Role, error) {
	role, err := entity.NewRole(req.Name, req.Permissions, req.IsDefault)
	if err != nil {
		return nil, err
	}

	if err := u.checkDuplicate(ctx, role.Name, 0); err != nil {
		return nil, err
	}

	saved, err := u.roleRepo.Save(ctx, role)
	if err != nil {
		u.log.Warnf("Failed to create role: %+v", err)
		return nil, roleStoreError(err)
	}

	u.auditService.LogCreate(ctx, entity.AuditEntityRole, saved.ID, saved)
	return saved, nil
}

func (u *roleUsecase) Update(ctx context.Context, id int64, req *dto.UpdateRoleRequest) (*entity.Role, error) {
	role, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *role
	old.Permissions = slices.Clone(role.Permissions)

	nameChanged, err := setText("name", req.Name, &role.Name, true)
	if err != nil {
		return nil, err
	}
	if nameChanged && !strings.EqualFold(old.Name, role.Name) {
		if err := u.checkDuplicate(ctx, role.Name, id); err != nil {
			return nil, err
		}
	}
	if req.Permissions != nil {
		permissions := *req.Permissions
		if permissions == nil {
			permissions = []string{}
		}
		role.Permissions = datatypes.JSONSlice[string](permissions)
	}
	if req.IsDefault != nil {
		role.IsDefault = *req.IsDefault
	}

	saved, err := u.roleRepo.Save(ctx, role)
	if err != nil {
		u.log.Warnf("Failed to update role: %+v", err)
		return nil, roleStoreError(err)
	}

	if !old.Equal(saved) {
		u.auditService.LogUpdate(ctx, entity.AuditEntityRole, id, old, saved)
	}
	return saved, nil
}

func (u *roleUsecase) Delete(ctx context.Context, id int64) error {
	role, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.roleRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete role: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditEntityRole, id, role)
	return nil
}
