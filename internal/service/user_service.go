package service

import (
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/errors"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/model"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/repository/interfaces"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// 用户主页最多展示最近的10条帖子
const profilePostLimit = 10

// UserServiceInterface 定义用户服务的对外接口，便于处理器测试时替换
type UserServiceInterface interface {
	Register(user *model.User) error
	Login(username, password string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	GetProfile(id int) (*model.Profile, error)
}

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo interfaces.UserRepository
	feedRepo interfaces.FeedRepository
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository, feedRepo interfaces.FeedRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		feedRepo: feedRepo,
	}
}

// IsUsernameTaken 检查用户名是否已被使用
func (s *UserService) IsUsernameTaken(username string) (bool, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// Register 注册新用户。user.PasswordHash 传入时为明文密码，
// 注册成功后被替换为哈希值。
func (s *UserService) Register(user *model.User) error {
	taken, err := s.IsUsernameTaken(user.Username)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if taken {
		return errors.New(errors.ErrUserExists, "用户名已存在")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "生成密码哈希失败", err)
	}
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		return errors.Wrap(errors.ErrDatabase, "创建用户失败", err)
	}

	util.Logger.Info("新用户注册成功",
		zap.Int("user_id", user.ID),
		zap.String("username", user.Username))
	return nil
}

// Login 用户登录，校验用户名与密码
func (s *UserService) Login(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrInvalidCredentials, "用户名或密码错误")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		util.Logger.Warn("登录失败，密码不正确", zap.String("username", username))
		return nil, errors.New(errors.ErrInvalidCredentials, "用户名或密码错误")
	}

	util.Logger.Info("用户登录成功", zap.Int("user_id", user.ID))
	return user, nil
}

// GetUserByID 通过ID获取用户信息
func (s *UserService) GetUserByID(id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "用户不存在")
	}
	return user, nil
}

// GetProfile 获取用户主页：公开字段、最近帖子、关注者与关注列表
func (s *UserService) GetProfile(id int) (*model.Profile, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	posts, err := s.feedRepo.GetUserPosts(id, profilePostLimit)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "获取用户帖子失败", err)
	}

	followers, err := s.feedRepo.GetFollowers(id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "获取关注者列表失败", err)
	}

	following, err := s.feedRepo.GetFollowing(id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "获取关注列表失败", err)
	}

	if followers == nil {
		followers = []model.UserRef{}
	}
	if following == nil {
		following = []model.UserRef{}
	}
	if posts == nil {
		posts = []*model.Post{}
	}

	return &model.Profile{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		Posts:       posts,
		Followers:   followers,
		Following:   following,
	}, nil
}
