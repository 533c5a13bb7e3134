package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestTranslateError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name       string
		err        error
		category   error
		constraint string
	}{
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "ux_users_email"}, apperror.ErrAlreadyExists, "ux_users_email"},
		{"foreign key", &pgconn.PgError{Code: "23503", ConstraintName: "fk_donors_address"}, apperror.ErrInvalidReference, "fk_donors_address"},
		{"not null", &pgconn.PgError{Code: "23502", ConstraintName: "donors_name"}, apperror.ErrPersistence, "donors_name"},
		{"other", plain, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError(tt.err)
			if tt.category == nil {
				assert.Same(t, plain, err)
				return
			}
			assert.ErrorIs(t, err, tt.category)
			name, ok := apperror.ViolatedConstraint(err)
			assert.True(t, ok)
			assert.Equal(t, tt.constraint, name)
		})
	}

	assert.NoError(t, translateError(nil))
}

func TestTranslateDeleteError(t *testing.T) {
	err := translateDeleteError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_donors_user"}, "user", 4)

	assert.ErrorIs(t, err, apperror.ErrPersistence)
	assert.Contains(t, err.Error(), "user 4 is still referenced")
}

// GormSuite runs the gorm adapters against sqlmock.
type GormSuite struct {
	suite.Suite
	ctx            context.Context
	mock           sqlmock.Sqlmock
	municipalities domainRepo.MunicipalityRepository
	users          domainRepo.UserRepository
}

func TestGormSuite(t *testing.T) {
	suite.Run(t, new(GormSuite))
}

func (s *GormSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.T().Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.mock = mock
	s.municipalities = NewMunicipalityRepository(db)
	s.users = NewUserRepository(db)
}

func (s *GormSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *GormSuite) TestFindByIDWithoutRow() {
	s.mock.ExpectQuery(`SELECT \* FROM "municipalities" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	municipality, err := s.municipalities.FindByID(s.ctx, 5)
	s.NoError(err)
	s.Nil(municipality)
}

func (s *GormSuite) TestFindByNameIgnoresCase() {
	s.mock.ExpectQuery(`SELECT \* FROM "municipalities" WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Puebla"))

	municipality, err := s.municipalities.FindByName(s.ctx, "PUEBLA")
	s.Require().NoError(err)
	s.Equal(int64(3), municipality.ID)
	s.Equal("Puebla", municipality.Name)
}

func (s *GormSuite) TestCreateDuplicate() {
	s.mock.ExpectQuery(`INSERT INTO "municipalities"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ux_municipalities_name", Message: "duplicate key value"})

	_, err := s.municipalities.Save(s.ctx, &entity.Municipality{Name: "Puebla"})
	s.ErrorIs(err, apperror.ErrAlreadyExists)
}

func (s *GormSuite) TestUpdateMissingRow() {
	s.mock.ExpectExec(`UPDATE "municipalities" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := s.municipalities.Save(s.ctx, &entity.Municipality{ID: 9, Name: "Puebla"})
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *GormSuite) TestDeleteReferenced() {
	s.mock.ExpectExec(`DELETE FROM "municipalities"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_neighborhoods_municipality"})

	err := s.municipalities.Delete(s.ctx, 2)
	s.ErrorIs(err, apperror.ErrPersistence)
}

func (s *GormSuite) TestDeleteMissingRow() {
	s.mock.ExpectExec(`DELETE FROM "municipalities"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.municipalities.Delete(s.ctx, 2)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *GormSuite) TestFailedUserInsertKeepsPassword() {
	s.mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ux_users_email", Message: "duplicate key value"})

	user := &entity.User{Username: "ana", Email: "ana@banco.mx", Sex: "F", RoleID: 2, Password: "secret-pw"}
	_, err := s.users.Save(s.ctx, user)
	s.ErrorIs(err, apperror.ErrAlreadyExists)
	s.Equal("secret-pw", user.Password)
}

func (s *GormSuite) TestFailedUserUpdateKeepsPassword() {
	s.mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	user := &entity.User{ID: 7, Username: "ana", Email: "ana@banco.mx", Sex: "F", RoleID: 2, Password: "new-secret"}
	_, err := s.users.Save(s.ctx, user)
	s.ErrorIs(err, apperror.ErrNotFound)
	s.Equal("new-secret", user.Password)
	s.NotEmpty(user.PasswordHash)
}
