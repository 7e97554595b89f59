package auth

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userstore "talent-bridge-backend/lib/users/store"
	authutils "talent-bridge-backend/lib/utils/auth-utils"
	authapimodels "talent-bridge-backend/models/api/auth"
	dbmodels "talent-bridge-backend/models/db"
)

var ErrInvalidCredentials = errors.New("неверный email или пароль")
var ErrEmailTaken = errors.New("пользователь с таким email уже зарегистрирован")

type Provider interface {
	Register(request authapimodels.RegisterRequest) (*authapimodels.TokenResponse, error)
	Login(request authapimodels.LoginRequest) (*authapimodels.TokenResponse, error)
	Refresh(request authapimodels.RefreshRequest) (*authapimodels.TokenResponse, error)
	Profile(userID string) (*authapimodels.ProfileView, error)
}

var Instance Provider

func NewHandler(users userstore.Provider) {
	Instance = &impl{
		users: users,
	}
}

type impl struct {
	users userstore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) (*authapimodels.TokenResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	exist, err := i.users.ExistByEmail(request.Email)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, ErrEmailTaken
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка хеширования пароля")
	}
	user := dbmodels.User{
		Role:         request.Role,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: string(passwordHash),
		CompanyName:  request.CompanyName,
		IsActive:     true,
	}
	if err = i.users.Create(&user); err != nil {
		return nil, err
	}
	log.WithField("user_id", user.ID).WithField("role", user.Role).Info("зарегистрирован новый пользователь")
	return i.issueTokens(&user)
}

func (i impl) Login(request authapimodels.LoginRequest) (*authapimodels.TokenResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	user, err := i.users.GetByEmail(request.Email)
	if err != nil {
		if errors.Is(errors.Cause(err), gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return i.issueTokens(user)
}

func (i impl) Refresh(request authapimodels.RefreshRequest) (*authapimodels.TokenResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	userID, err := authutils.ParseRefreshToken(request.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "недействительный refresh токен")
	}
	user, err := i.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return i.issueTokens(user)
}

func (i impl) Profile(userID string) (*authapimodels.ProfileView, error) {
	user, err := i.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return &authapimodels.ProfileView{
		ID:          user.ID,
		Role:        user.Role,
		RoleName:    user.Role.ToHuman(),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		CompanyName: user.CompanyName,
	}, nil
}

func (i impl) issueTokens(user *dbmodels.User) (*authapimodels.TokenResponse, error) {
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка выпуска токена")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка выпуска refresh токена")
	}
	return &authapimodels.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
