// Copyright (C) 2024 the tccflow authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/tccflow/tccflow/internal/accesscontrol"
	"github.com/tccflow/tccflow/internal/database/models"
)

// Session carries the authenticated identity through a request. The
// capability ids are nil unless the user holds that capability.
type Session struct {
	UserID             uuid.UUID
	UserType           models.UserType
	ProfessorID        *uuid.UUID
	ProfessorAdvisorID *uuid.UUID
	ProfessorTccID     *uuid.UUID
	StudentID          *uuid.UUID
	Roles              []accesscontrol.Role
}

func NewSession(user models.User) Session {
	session := Session{
		UserID:   user.ID,
		UserType: user.Type,
		Roles:    accesscontrol.DeriveRoles(user),
	}
	if user.Professor != nil {
		session.ProfessorID = &user.Professor.ID
		if user.Professor.ProfessorAdvisor != nil {
			session.ProfessorAdvisorID = &user.Professor.ProfessorAdvisor.ID
		}
		if user.Professor.ProfessorTcc != nil {
			session.ProfessorTccID = &user.Professor.ProfessorTcc.ID
		}
	}
	if user.Student != nil {
		session.StudentID = &user.Student.ID
	}
	return session
}

func (s Session) HasRole(role accesscontrol.Role) bool {
	return accesscontrol.HasRole(s.Roles, role)
}

type sessionClaims struct {
	UserID   uuid.UUID       `json:"uid"`
	UserType models.UserType `json:"typ"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

func NewTokenIssuer(secret string, expiry time.Duration) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), expiry: expiry}
}

func (t TokenIssuer) Sign(user models.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID:   user.ID,
		UserType: user.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses the token and returns the user id it was issued for.
// The session itself is rebuilt from the database on every request, so
// a revoked capability takes effect immediately.
func (t TokenIssuer) Verify(tokenString string) (uuid.UUID, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
