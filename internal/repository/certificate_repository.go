package repository

import (
	"elearning_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	return r.DB.Create(cert).Error
}

func (r *CertificateRepository) FindByID(id uint) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.First(&cert, id).Error
	return &cert, err
}

func (r *CertificateRepository) List() ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.DB.Order("name asc").Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) Update(cert *model.Certificate) error {
	return r.DB.Save(cert).Error
}

func (r *CertificateRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Certificate{}, id).Error
}
