package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
	"phish-analytics/internal/core/port/mocks"
)

func TestImportEmployees_Normalises(t *testing.T) {
	repo := mocks.NewMockEmployeeRepository(t)

	var stored []domain.Employee
	repo.EXPECT().
		ImportEmployees(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, e []domain.Employee) (int64, error) {
			stored = e
			return int64(len(e)), nil
		})

	n, err := NewDirectoryUseCase(repo).ImportEmployees(context.Background(), "admin-1", []domain.Employee{
		{FirstName: " Ada ", Email: " ADA@example.com", Department: " IT "},
		{FirstName: "Ada again", Email: "ada@example.com"},
		{FirstName: "No email"},
		{FirstName: "Bob", Email: "bob@example.com"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	require.Len(t, stored, 2)
	assert.Equal(t, "ada@example.com", stored[0].Email)
	assert.Equal(t, "Ada", stored[0].FirstName)
	assert.Equal(t, "IT", stored[0].Department)
	assert.Equal(t, "admin-1", stored[0].AdminID)
	assert.NotEmpty(t, stored[0].ID)
	assert.NotEqual(t, stored[0].ID, stored[1].ID)
}

func TestImportEmployees_NothingToImport(t *testing.T) {
	repo := mocks.NewMockEmployeeRepository(t)

	n, err := NewDirectoryUseCase(repo).ImportEmployees(context.Background(), "a", []domain.Employee{{FirstName: "x"}})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	repo := mocks.NewMockEmployeeRepository(t)
	repo.EXPECT().DeleteEmployee(mock.Anything, "e1").Return(port.ErrEmployeeNotFound)

	err := NewDirectoryUseCase(repo).DeleteEmployee(context.Background(), "e1")
	assert.ErrorIs(t, err, port.ErrEmployeeNotFound)
}
