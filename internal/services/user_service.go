package services

import (
	stderrors "errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"blitzscan/internal/dao"
	"blitzscan/internal/models"
	"blitzscan/pkg/errors"
	"blitzscan/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	Organization string
}

type ProfileUpdate struct {
	FirstName    string
	LastName     string
	Organization string
}

type UserServiceMethods interface {
	Register(input RegisterInput) (*models.User, error)
	Login(email, password string) (*models.User, error)
	ChangePassword(userID uint, currentPassword, newPassword string) error
	UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error)
	SaveProfileImage(userID uint, file *multipart.FileHeader, save func(*multipart.FileHeader, string) error) (string, error)
}

type userService struct {
	userDao   dao.UserDAO
	uploadDir string
	logger    *logger.Logger
}

func NewUserService(userDao dao.UserDAO, uploadDir string) UserServiceMethods {
	return &userService{
		userDao:   userDao,
		uploadDir: uploadDir,
		logger:    logger.NewLogger(logrus.InfoLevel),
	}
}

func (s *userService) Register(input RegisterInput) (*models.User, error) {
	if _, err := s.userDao.GetByEmail(input.Email); err == nil {
		return nil, errors.ErrEmailTaken
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         "user",
		Organization: input.Organization,
	}
	if err := s.userDao.CreateUser(user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", logger.Fields{"user_id": user.ID, "email": user.Email})
	return user, nil
}

// Login validates credentials. Unknown email and wrong password produce
// the same error so login cannot be used to enumerate accounts.
func (s *userService) Login(email, password string) (*models.User, error) {
	user, err := s.userDao.GetByEmail(email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.userDao.GetByID(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return errors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	return s.userDao.UpdateUser(user)
}

func (s *userService) UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.userDao.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != "" {
		user.FirstName = update.FirstName
	}
	if update.LastName != "" {
		user.LastName = update.LastName
	}
	if update.Organization != "" {
		user.Organization = update.Organization
	}

	if err := s.userDao.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SaveProfileImage stores an uploaded image under the upload dir with a
// random name and records the path on the user. The save callback is
// gin's SaveUploadedFile, injected to keep the service transport-free.
func (s *userService) SaveProfileImage(userID uint, file *multipart.FileHeader, save func(*multipart.FileHeader, string) error) (string, error) {
	user, err := s.userDao.GetByID(userID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", errors.NewValidationError("image", "unsupported image type")
	}

	filename := uuid.New().String() + ext
	path := filepath.Join(s.uploadDir, filename)
	if err := save(file, path); err != nil {
		return "", err
	}

	user.ProfileImage = path
	if err := s.userDao.UpdateUser(user); err != nil {
		return "", err
	}

	s.logger.Info("Profile image updated", logger.Fields{"user_id": userID, "path": path})
	return path, nil
}
