package dao

import (
	"blitzscan/internal/models"

	"gorm.io/gorm"
)

type UserDAO interface {
	CreateUser(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	UpdateUser(user *models.User) error
}

type userDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) UserDAO {
	return &userDAO{db: db}
}

func (dao *userDAO) CreateUser(user *models.User) error {
	return dao.db.Create(user).Error
}

func (dao *userDAO) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := dao.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *userDAO) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := dao.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *userDAO) UpdateUser(user *models.User) error {
	return dao.db.Save(user).Error
}
