package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"mantleflow-backend/apperrors"
	"mantleflow-backend/models"
	"mantleflow-backend/repository"
)

// BusinessStore is the persistence surface the business service needs.
type BusinessStore interface {
	Create(business *models.Business) error
	FindByAddress(address string) (*models.Business, error)
	FindAllWithInvoices() ([]models.Business, error)
	FindByAddressWithInvoices(address string) (*models.Business, error)
	ExistsByID(id uint) (bool, error)
}

type BusinessService struct {
	store BusinessStore
}

func NewBusinessService(store BusinessStore) *BusinessService {
	return &BusinessService{store: store}
}

// Register creates a business for ownerAddress. At most one business may
// exist per address; the pre-insert lookup catches the common case and the
// database constraint catches concurrent registrations.
func (s *BusinessService) Register(name, ownerAddress string) (*models.Business, error) {
	if name == "" || ownerAddress == "" {
		return nil, apperrors.Validation("Name and ownerAddress are required")
	}

	_, err := s.store.FindByAddress(ownerAddress)
	if err == nil {
		log.Printf("Business already exists for address: %s", ownerAddress)
		return nil, apperrors.Conflict("Business already registered for this address")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Failed to register business", err)
	}

	business := &models.Business{
		Name:         name,
		OwnerAddress: ownerAddress,
	}

	if err := s.store.Create(business); err != nil {
		if errors.Is(err, repository.ErrDuplicateOwnerAddress) {
			return nil, apperrors.Conflict("Business already registered for this address")
		}
		return nil, apperrors.Internal("Failed to register business", err)
	}

	return business, nil
}

// GetAll returns every business with its invoices.
func (s *BusinessService) GetAll() ([]models.Business, error) {
	businesses, err := s.store.FindAllWithInvoices()
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch businesses", err)
	}
	return businesses, nil
}

// GetByAddress returns the business registered for address with its invoices.
func (s *BusinessService) GetByAddress(address string) (*models.Business, error) {
	business, err := s.store.FindByAddressWithInvoices(address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Business not found")
		}
		return nil, apperrors.Internal("Failed to fetch business", err)
	}
	return business, nil
}
