package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"obtconnect/internal/errors"
	"obtconnect/internal/model"
)

func pendingUser() *model.User {
	return &model.User{
		ID:       "u1",
		Name:     "Priya",
		Phone:    "9876543210",
		District: "Chennai",
		Role:     model.RoleMember,
		Category: model.CategoryCollegeGirls,
	}
}

func TestAdminService_ListPending(t *testing.T) {
	t.Run("privileged caller sees the queue", func(t *testing.T) {
		users := new(MockUserRepository)
		members := new(MockMemberRepository)
		users.On("ListPending", mock.Anything).Return([]model.User{*pendingUser()}, nil)

		svc := NewAdminService(users, members)
		pending, err := svc.ListPending(context.Background(), masterIdentity())

		assert.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("regular identities are refused", func(t *testing.T) {
		users := new(MockUserRepository)
		members := new(MockMemberRepository)

		svc := NewAdminService(users, members)
		_, err := svc.ListPending(context.Background(), memberIdentity("Chennai", model.CategoryCollegeBoys))

		assert.ErrorIs(t, err, errors.ErrPermissionDenied)
		users.AssertNotCalled(t, "ListPending", mock.Anything)
	})
}

func TestAdminService_Approve(t *testing.T) {
	t.Run("approval copies identity fields onto the district roster", func(t *testing.T) {
		user := pendingUser()
		users := new(MockUserRepository)
		members := new(MockMemberRepository)
		users.On("FindByID", mock.Anything, "u1").Return(user, nil)
		users.On("Approve", mock.Anything, "u1", mock.MatchedBy(func(m *model.Member) bool {
			return m.ID == user.ID &&
				m.Roster == model.RosterDistrict &&
				m.Name == user.Name &&
				m.Phone == user.Phone &&
				m.District == user.District &&
				m.Category == user.Category &&
				m.Designation == "Member"
		})).Return(nil)

		svc := NewAdminService(users, members)
		member, err := svc.Approve(context.Background(), masterIdentity(), "u1")

		assert.NoError(t, err)
		assert.Equal(t, user.ID, member.ID)
		users.AssertExpectations(t)
	})

	t.Run("approve is refused for non-privileged callers", func(t *testing.T) {
		users := new(MockUserRepository)
		members := new(MockMemberRepository)

		svc := NewAdminService(users, members)
		_, err := svc.Approve(context.Background(), captainIdentity("Chennai", model.CategoryCollegeBoys), "u1")

		assert.ErrorIs(t, err, errors.ErrPermissionDenied)
		users.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepository)
		members := new(MockMemberRepository)
		users.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAdminService(users, members)
		_, err := svc.Approve(context.Background(), masterIdentity(), "ghost")

		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("double approve passes the same member id twice", func(t *testing.T) {
		// The repository upserts by (roster, id), so the second call updates
		// the existing roster entry instead of inserting a duplicate.
		user := pendingUser()
		users := new(MockUserRepository)
		members := new(MockMemberRepository)
		users.On("FindByID", mock.Anything, "u1").Return(user, nil).Twice()
		users.On("Approve", mock.Anything, "u1", mock.MatchedBy(func(m *model.Member) bool {
			return m.ID == "u1"
		})).Return(nil).Twice()

		svc := NewAdminService(users, members)
		first, err := svc.Approve(context.Background(), masterIdentity(), "u1")
		assert.NoError(t, err)
		second, err := svc.Approve(context.Background(), masterIdentity(), "u1")
		assert.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		users.AssertExpectations(t)
	})
}

func TestAdminService_Reject(t *testing.T) {
	t.Run("reject deletes the pending account", func(t *testing.T) {
		users := new(MockUserRepository)
		members := new(MockMemberRepository)
		users.On("FindByID", mock.Anything, "u1").Return(pendingUser(), nil)
		users.On("Delete", mock.Anything, "u1").Return(nil)

		svc := NewAdminService(users, members)
		err := svc.Reject(context.Background(), masterIdentity(), "u1")

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("reject is privileged", func(t *testing.T) {
		users := new(MockUserRepository)
		members := new(MockMemberRepository)

		svc := NewAdminService(users, members)
		err := svc.Reject(context.Background(), memberIdentity("Chennai", model.CategoryCollegeBoys), "u1")

		assert.ErrorIs(t, err, errors.ErrPermissionDenied)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestMessageService_Post(t *testing.T) {
	repo := new(MockMessageRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *model.TeamMessage) bool {
		return m.AuthorID == "mem1" && m.Content == "Meeting at 6pm"
	})).Return(nil)

	svc := NewMessageService(repo)
	msg, err := svc.Post(context.Background(), memberIdentity("Chennai", model.CategoryCollegeBoys), "  Meeting at 6pm  ")

	assert.NoError(t, err)
	assert.Equal(t, "Meeting at 6pm", msg.Content)
	assert.NotEmpty(t, msg.ID)
	repo.AssertExpectations(t)
}

func TestMessageService_Post_Empty(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	_, err := svc.Post(context.Background(), memberIdentity("Chennai", model.CategoryCollegeBoys), "   ")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
