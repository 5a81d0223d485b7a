package service

import (
	"testing"

	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/errors"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/model"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	util.InitLogger("error")
}

// MockUserRepository 是 UserRepository 接口的模拟实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// TestRegister 测试用户注册功能
func TestRegister(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockFeedRepo := new(MockFeedRepository)
	service := NewUserService(mockUserRepo, mockFeedRepo)

	user := &model.User{
		Username:     "testuser",
		DisplayName:  "Test User",
		PasswordHash: "password123",
	}

	// 测试成功注册
	mockUserRepo.On("FindByUsername", "testuser").Return(nil, nil)
	mockUserRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

	err := service.Register(user)
	assert.NoError(t, err)
	// 密码应当被替换为哈希值
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	mockUserRepo.AssertExpectations(t)

	// 测试用户名已存在
	mockUserRepo.On("FindByUsername", "existinguser").Return(&model.User{}, nil)
	user.Username = "existinguser"
	err = service.Register(user)
	assert.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrUserExists, appErr.Code)
}

// TestLogin 测试用户登录功能
func TestLogin(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockFeedRepo := new(MockFeedRepository)
	service := NewUserService(mockUserRepo, mockFeedRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &model.User{
		ID:           1,
		Username:     "testuser",
		PasswordHash: string(hash),
	}

	// 测试成功登录
	mockUserRepo.On("FindByUsername", "testuser").Return(stored, nil)
	user, err := service.Login("testuser", "password123")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	// 测试密码错误
	_, err = service.Login("testuser", "wrongpassword")
	assert.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrInvalidCredentials, appErr.Code)

	// 测试用户不存在
	mockUserRepo.On("FindByUsername", "nobody").Return(nil, nil)
	_, err = service.Login("nobody", "password123")
	assert.Error(t, err)
	appErr, ok = err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrInvalidCredentials, appErr.Code)
}

// TestGetProfile 测试用户主页数据组装
func TestGetProfile(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockFeedRepo := new(MockFeedRepository)
	service := NewUserService(mockUserRepo, mockFeedRepo)

	stored := &model.User{ID: 1, Username: "alice", DisplayName: "Alice"}
	posts := []*model.Post{{ID: 3, UserID: 1, Content: "hello"}}
	followers := []model.UserRef{{ID: 2, Username: "bob"}}

	mockUserRepo.On("FindByID", 1).Return(stored, nil)
	mockFeedRepo.On("GetUserPosts", 1, 10).Return(posts, nil)
	mockFeedRepo.On("GetFollowers", 1).Return(followers, nil)
	mockFeedRepo.On("GetFollowing", 1).Return([]model.UserRef{}, nil)

	profile, err := service.GetProfile(1)
	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Len(t, profile.Posts, 1)
	assert.Len(t, profile.Followers, 1)
	assert.Empty(t, profile.Following)
	mockFeedRepo.AssertExpectations(t)

	// 测试用户不存在
	mockUserRepo.On("FindByID", 999).Return(nil, nil)
	_, err = service.GetProfile(999)
	assert.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrUserNotFound, appErr.Code)
}
