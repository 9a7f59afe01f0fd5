package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unilink-et/backend/internal/models"
)

func TestResolve_ByObjectID(t *testing.T) {
	ur := &mockUserRepository{}
	want := &models.User{FullName: "Abel Tesfaye"}
	ur.On("GetUserByID", mock.Anything, "656e1f77bcf86cd799439011").Return(want, nil)

	r := NewIdentityResolver(ur)
	got := r.Resolve(context.Background(), "656e1f77bcf86cd799439011")

	require.NotNil(t, got)
	assert.Equal(t, "Abel Tesfaye", got.FullName)
	ur.AssertNotCalled(t, "GetUserByUserID", mock.Anything, mock.Anything)
	ur.AssertNotCalled(t, "GetUserByStudentID", mock.Anything, mock.Anything)
}

func TestResolve_FallsBackToLegacyID(t *testing.T) {
	ur := &mockUserRepository{}
	want := &models.User{UserID: "u1", FullName: "Hana Girma"}
	ur.On("GetUserByID", mock.Anything, "u1").Return(nil, models.ErrNotFound)
	ur.On("GetUserByUserID", mock.Anything, "u1").Return(want, nil)

	r := NewIdentityResolver(ur)
	got := r.Resolve(context.Background(), "u1")

	require.NotNil(t, got)
	assert.Equal(t, "Hana Girma", got.FullName)
	ur.AssertNotCalled(t, "GetUserByStudentID", mock.Anything, mock.Anything)
}

func TestResolve_FallsBackToStudentID(t *testing.T) {
	ur := &mockUserRepository{}
	want := &models.User{StudentID: "ETS-0042", FullName: "Hana Girma"}
	ur.On("GetUserByID", mock.Anything, "ETS-0042").Return(nil, models.ErrNotFound)
	ur.On("GetUserByUserID", mock.Anything, "ETS-0042").Return(nil, models.ErrNotFound)
	ur.On("GetUserByStudentID", mock.Anything, "ETS-0042").Return(want, nil)

	r := NewIdentityResolver(ur)
	got := r.Resolve(context.Background(), "ETS-0042")

	require.NotNil(t, got)
	assert.Equal(t, "Hana Girma", got.FullName)
	ur.AssertExpectations(t)
}

func TestResolve_MissReturnsNil(t *testing.T) {
	ur := &mockUserRepository{}
	ur.On("GetUserByID", mock.Anything, "ghost").Return(nil, models.ErrNotFound)
	ur.On("GetUserByUserID", mock.Anything, "ghost").Return(nil, models.ErrNotFound)
	ur.On("GetUserByStudentID", mock.Anything, "ghost").Return(nil, models.ErrNotFound)

	r := NewIdentityResolver(ur)
	assert.Nil(t, r.Resolve(context.Background(), "ghost"))
}

func TestResolve_EmptyID(t *testing.T) {
	ur := &mockUserRepository{}

	r := NewIdentityResolver(ur)
	assert.Nil(t, r.Resolve(context.Background(), ""))
	ur.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}
