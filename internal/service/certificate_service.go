package service

import (
	"errors"

	"elearning_backend/internal/model"
	"elearning_backend/internal/repository"
	"elearning_backend/internal/util"

	"gorm.io/gorm"
)

type CertificateService struct {
	CertRepo *repository.CertificateRepository
}

func NewCertificateService(certRepo *repository.CertificateRepository) *CertificateService {
	return &CertificateService{CertRepo: certRepo}
}

type CertificateRequest struct {
	Name string `json:"name"`
}

func (s *CertificateService) CreateCertificate(req CertificateRequest) (*model.Certificate, error) {
	if req.Name == "" {
		return nil, util.Validationf("certificate name is required")
	}

	cert := &model.Certificate{Name: req.Name}
	if err := s.CertRepo.Create(cert); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.Conflictf("certificate %s already exists", req.Name)
		}
		return nil, err
	}
	return cert, nil
}

func (s *CertificateService) ListCertificates() ([]model.Certificate, error) {
	return s.CertRepo.List()
}

func (s *CertificateService) UpdateCertificate(id uint, req CertificateRequest) (*model.Certificate, error) {
	if req.Name == "" {
		return nil, util.Validationf("certificate name is required")
	}

	cert, err := s.CertRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("certificate", id)
		}
		return nil, err
	}

	cert.Name = req.Name
	if err := s.CertRepo.Update(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *CertificateService) DeleteCertificate(id uint) error {
	if _, err := s.CertRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundErr("certificate", id)
		}
		return err
	}
	return s.CertRepo.Delete(id)
}
