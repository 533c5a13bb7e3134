package usecase

import (
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/jwt"
)

func (s *UsecaseSuite) login(email, password string) *dto.TokenResponse {
	tokens, err := s.auth.Login(s.ctx, &dto.LoginRequest{Email: email, Password: password})
	s.Require().NoError(err)
	return tokens
}

func (s *UsecaseSuite) claims(token string) *jwt.Claims {
	claims, err := s.jwtService.ValidateToken(token)
	s.Require().NoError(err)
	return claims
}

func (s *UsecaseSuite) tokenLive(tokenType jwt.TokenType, claims *jwt.Claims) bool {
	ok, err := s.tokenStore.Exists(s.ctx, tokenType, claims.UserID, claims.TokenID)
	s.Require().NoError(err)
	return ok
}

func (s *UsecaseSuite) TestAuth_Login() {
	ana := s.user("ana")

	tokens := s.login(ana.Email, "secret-pw")
	s.EqualValues(15*60, tokens.ExpiresIn)

	access := s.claims(tokens.AccessToken)
	s.Equal(ana.ID, access.UserID)
	s.Equal(jwt.AccessToken, access.TokenType)
	s.EqualValues(2, access.RoleID)
	s.True(s.tokenLive(jwt.AccessToken, access))
	s.True(s.tokenLive(jwt.RefreshToken, s.claims(tokens.RefreshToken)))

	current, err := s.auth.GetCurrentUser(s.ctx, access.UserID)
	s.Require().NoError(err)
	s.Equal("ana", current.Username)
}

func (s *UsecaseSuite) TestAuth_LoginFailures() {
	ana := s.user("ana")

	_, err := s.auth.Login(s.ctx, &dto.LoginRequest{Email: ana.Email, Password: "wrong"})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.auth.Login(s.ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret-pw"})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.users.Update(s.ctx, ana.ID, &dto.UpdateUserRequest{IsActive: ptr(false)})
	s.Require().NoError(err)
	_, err = s.auth.Login(s.ctx, &dto.LoginRequest{Email: ana.Email, Password: "secret-pw"})
	s.ErrorIs(err, ErrUserInactive)
}

func (s *UsecaseSuite) TestAuth_RefreshRotates() {
	ana := s.user("ana")
	first := s.login(ana.Email, "secret-pw")

	second, err := s.auth.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	s.Require().NoError(err)
	s.NotEqual(first.RefreshToken, second.RefreshToken)
	s.False(s.tokenLive(jwt.RefreshToken, s.claims(first.RefreshToken)))
	s.True(s.tokenLive(jwt.RefreshToken, s.claims(second.RefreshToken)))

	_, err = s.auth.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	s.ErrorIs(err, ErrTokenRevoked)

	_, err = s.auth.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: second.AccessToken})
	s.ErrorIs(err, ErrInvalidToken)

	_, err = s.auth.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: "garbage"})
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *UsecaseSuite) TestAuth_RefreshPicksUpStaffFlag() {
	ana := s.user("ana")
	tokens := s.login(ana.Email, "secret-pw")
	s.False(s.claims(tokens.AccessToken).IsStaff)

	_, err := s.users.Update(s.ctx, ana.ID, &dto.UpdateUserRequest{IsStaff: ptr(true)})
	s.Require().NoError(err)

	refreshed, err := s.auth.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	s.Require().NoError(err)
	s.True(s.claims(refreshed.AccessToken).IsStaff)
}

func (s *UsecaseSuite) TestAuth_Logout() {
	ana := s.user("ana")
	tokens := s.login(ana.Email, "secret-pw")
	access := s.claims(tokens.AccessToken)
	refresh := s.claims(tokens.RefreshToken)

	s.Require().NoError(s.auth.Logout(s.ctx, ana.ID, access.TokenID, tokens.RefreshToken))

	s.False(s.tokenLive(jwt.AccessToken, access))
	s.False(s.tokenLive(jwt.RefreshToken, refresh))

	_, err := s.auth.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	s.ErrorIs(err, ErrTokenRevoked)
}

func (s *UsecaseSuite) TestAuth_LogoutIgnoresForeignRefreshToken() {
	ana := s.user("ana")
	bea := s.user("bea")
	anaTokens := s.login(ana.Email, "secret-pw")
	beaTokens := s.login(bea.Email, "secret-pw")

	s.Require().NoError(s.auth.Logout(s.ctx, ana.ID, s.claims(anaTokens.AccessToken).TokenID, beaTokens.RefreshToken))

	s.True(s.tokenLive(jwt.RefreshToken, s.claims(beaTokens.RefreshToken)))
}

func (s *UsecaseSuite) TestAuth_PasswordChangeEndsSessions() {
	ana := s.user("ana")
	tokens := s.login(ana.Email, "secret-pw")

	_, err := s.users.Update(s.ctx, ana.ID, &dto.UpdateUserRequest{Password: ptr("another-pw")})
	s.Require().NoError(err)

	s.False(s.tokenLive(jwt.AccessToken, s.claims(tokens.AccessToken)))
	_, err = s.auth.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	s.ErrorIs(err, ErrTokenRevoked)

	s.login(ana.Email, "another-pw")
}
