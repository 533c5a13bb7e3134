package usecase

import (
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

func (s *UsecaseSuite) TestUser_DefaultRoleResolution() {
	_, err := s.roles.Create(s.ctx, &dto.CreateRoleRequest{Name: "admin", Permissions: []string{"*"}})
	s.Require().NoError(err)
	donor, err := s.roles.Create(s.ctx, &dto.CreateRoleRequest{Name: "donor", IsDefault: true})
	s.Require().NoError(err)
	s.EqualValues(2, donor.ID)

	user, err := s.users.Create(s.ctx, &dto.CreateUserRequest{Username: "ana", Email: "a@x.com", Sex: "F", Password: "pw"})
	s.Require().NoError(err)
	s.EqualValues(2, user.RoleID)
	s.Equal("donor", user.Role.Name)
	s.True(user.IsActive)
	s.False(user.IsStaff)
}

func (s *UsecaseSuite) TestUser_RoleErrors() {
	_, err := s.users.Create(s.ctx, &dto.CreateUserRequest{Username: "ana", Email: "a@x.com", Sex: "F", Password: "pw"})
	s.ErrorIs(err, ErrDefaultRoleNotFound)
	s.ErrorIs(err, apperror.ErrInvalidReference)

	s.seedRoles()
	_, err = s.users.Create(s.ctx, &dto.CreateUserRequest{Username: "ana", Email: "a@x.com", Sex: "F", Password: "pw", RoleID: ptr(int64(9))})
	s.ErrorIs(err, ErrRoleNotValid)

	admin, err := s.users.Create(s.ctx, &dto.CreateUserRequest{Username: "root", Email: "root@x.com", Sex: "M", Password: "pw", RoleID: ptr(int64(1))})
	s.Require().NoError(err)
	s.EqualValues(1, admin.RoleID)

	_, err = s.users.Update(s.ctx, admin.ID, &dto.UpdateUserRequest{RoleID: ptr(int64(9))})
	s.ErrorIs(err, ErrRoleNotValid)
}

func (s *UsecaseSuite) TestUser_EmailAndUsernameUniqueness() {
	ana := s.user("ana")
	s.user("bea")

	_, err := s.users.Create(s.ctx, &dto.CreateUserRequest{Username: "ana2", Email: ana.Email, Sex: "F", Password: "pw"})
	s.ErrorIs(err, ErrEmailAlreadyExists)

	// only the store enforces usernames
	_, err = s.users.Create(s.ctx, &dto.CreateUserRequest{Username: "ana", Email: "other@x.com", Sex: "F", Password: "pw"})
	s.ErrorIs(err, ErrUsernameAlreadyExists)

	_, err = s.users.Update(s.ctx, ana.ID, &dto.UpdateUserRequest{Email: ptr("bea@example.com")})
	s.ErrorIs(err, ErrEmailAlreadyExists)

	got, err := s.users.GetByEmail(s.ctx, ana.Email)
	s.Require().NoError(err)
	s.Equal(ana.ID, got.ID)

	_, err = s.users.GetByEmail(s.ctx, "nobody@x.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UsecaseSuite) TestUser_PasswordRequired() {
	s.seedRoles()
	_, err := s.users.Create(s.ctx, &dto.CreateUserRequest{Username: "ana", Email: "a@x.com", Sex: "F"})
	s.ErrorIs(err, apperror.ErrValidation)
}

func (s *UsecaseSuite) TestUser_SexRequiredOnCreateAndUpdate() {
	s.seedRoles()
	_, err := s.users.Create(s.ctx, &dto.CreateUserRequest{Username: "ana", Email: "a@x.com", Password: "pw"})
	s.ErrorIs(err, apperror.ErrValidation)

	ana := s.user("ana")
	_, err = s.users.Update(s.ctx, ana.ID, &dto.UpdateUserRequest{Sex: ptr("")})
	s.ErrorIs(err, apperror.ErrValidation)
}

func (s *UsecaseSuite) TestUser_PasswordHashing() {
	ana := s.user("ana")
	stored, err := s.users.GetByID(s.ctx, ana.ID)
	s.Require().NoError(err)
	s.Empty(stored.Password)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-pw")))

	_, err = s.users.Update(s.ctx, ana.ID, &dto.UpdateUserRequest{Username: ptr("ana.l"), Password: ptr("")})
	s.Require().NoError(err)
	kept, _ := s.users.GetByID(s.ctx, ana.ID)
	s.Equal(stored.PasswordHash, kept.PasswordHash)

	_, err = s.users.Update(s.ctx, ana.ID, &dto.UpdateUserRequest{Password: ptr("new-secret")})
	s.Require().NoError(err)
	changed, _ := s.users.GetByID(s.ctx, ana.ID)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(changed.PasswordHash), []byte("new-secret")))
}

func (s *UsecaseSuite) TestUser_PasswordChangeRevokesTokens() {
	ana := s.user("ana")
	s.Require().NoError(s.tokenStore.Store(s.ctx, jwt.AccessToken, ana.ID, "t1", time.Minute))

	_, err := s.users.Update(s.ctx, ana.ID, &dto.UpdateUserRequest{Password: ptr("new-secret")})
	s.Require().NoError(err)

	ok, err := s.tokenStore.Exists(s.ctx, jwt.AccessToken, ana.ID, "t1")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *UsecaseSuite) TestUser_NoOpUpdate() {
	ana := s.user("ana")
	got, err := s.users.Update(s.ctx, ana.ID, &dto.UpdateUserRequest{Email: ptr(ana.Email)})
	s.Require().NoError(err)
	s.True(ana.Equal(got))
	s.Equal([]string{"user.create"}, s.auditActions())
}

func (s *UsecaseSuite) TestUser_DeleteReferencedByDonor() {
	d := s.donor("ana")

	err := s.users.Delete(s.ctx, d.UserID)
	s.ErrorIs(err, apperror.ErrPersistence)

	s.Require().NoError(s.donors.Delete(s.ctx, d.ID))
	s.Require().NoError(s.users.Delete(s.ctx, d.UserID))

	_, err = s.users.GetByID(s.ctx, d.UserID)
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UsecaseSuite) TestRole_DefaultSwitch() {
	s.seedRoles()

	def, err := s.roles.GetDefault(s.ctx)
	s.Require().NoError(err)
	s.Equal("donor", def.Name)

	nurse, err := s.roles.Create(s.ctx, &dto.CreateRoleRequest{Name: "nurse", Permissions: []string{"donors.read"}, IsDefault: true})
	s.Require().NoError(err)

	def, err = s.roles.GetDefault(s.ctx)
	s.Require().NoError(err)
	s.Equal(nurse.ID, def.ID)

	previous, err := s.roles.GetByID(s.ctx, 2)
	s.Require().NoError(err)
	s.False(previous.IsDefault)

	_, err = s.roles.Update(s.ctx, nurse.ID, &dto.UpdateRoleRequest{IsDefault: ptr(false)})
	s.Require().NoError(err)
	_, err = s.roles.GetDefault(s.ctx)
	s.ErrorIs(err, ErrRoleNotFound)
}

func (s *UsecaseSuite) TestRole_DuplicateAndPermissions() {
	s.seedRoles()

	_, err := s.roles.Create(s.ctx, &dto.CreateRoleRequest{Name: "Donor"})
	s.ErrorIs(err, ErrRoleAlreadyExists)

	role, err := s.roles.Create(s.ctx, &dto.CreateRoleRequest{Name: "viewer"})
	s.Require().NoError(err)
	s.Empty(role.Permissions)
	s.False(role.HasPermission("donors.read"))

	updated, err := s.roles.Update(s.ctx, role.ID, &dto.UpdateRoleRequest{Permissions: &[]string{"donors.read"}})
	s.Require().NoError(err)
	s.True(updated.HasPermission("donors.read"))

	_, err = s.roles.Update(s.ctx, role.ID, &dto.UpdateRoleRequest{Name: ptr("admin")})
	s.ErrorIs(err, ErrRoleAlreadyExists)
}

func (s *UsecaseSuite) TestRole_DeleteInUse() {
	s.user("ana")

	err := s.roles.Delete(s.ctx, 2)
	s.ErrorIs(err, apperror.ErrPersistence)

	err = s.roles.Delete(s.ctx, 42)
	s.ErrorIs(err, ErrRoleNotFound)
}
