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
package testutils

import (
	"github.com/tccflow/tccflow/internal/core"
	"gorm.io/gorm"
)

type hasID[ID any] interface {
	GetID() ID
}

// MockRepository is an in-memory stand-in for the gorm-backed
// repositories. Deleting drops the item, mirroring how soft-deleted rows
// vanish from default reads.
type MockRepository[ID comparable, T hasID[ID]] struct {
	Items []T
}

func NewMockRepository[ID comparable, T hasID[ID]]() *MockRepository[ID, T] {
	return &MockRepository[ID, T]{
		Items: make([]T, 0),
	}
}

func (m *MockRepository[ID, T]) Create(tx core.DB, t *T) error {
	m.Items = append(m.Items, *t)
	return nil
}

func (m *MockRepository[ID, T]) Save(tx core.DB, t *T) error {
	for i, item := range m.Items {
		if item.GetID() == (*t).GetID() {
			m.Items[i] = *t
			return nil
		}
	}
	m.Items = append(m.Items, *t)
	return nil
}

func (m *MockRepository[ID, T]) Read(id ID) (T, error) {
	for _, item := range m.Items {
		if item.GetID() == id {
			return item, nil
		}
	}
	var t T
	return t, gorm.ErrRecordNotFound
}

func (m *MockRepository[ID, T]) Delete(tx core.DB, id ID) error {
	for i, item := range m.Items {
		if item.GetID() == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Transaction runs f directly. The fakes have no rollback, tests assert
// on the happy and the failing path separately.
func (m *MockRepository[ID, T]) Transaction(f func(tx core.DB) error) error {
	return f(nil)
}
