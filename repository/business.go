// Package repository contains the data access layer. Queries that load a
// business together with its invoices are explicit methods here, so the
// services never depend on ORM eager/lazy loading behavior.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"mantleflow-backend/models"
)

// ErrDuplicateOwnerAddress is returned when an insert hits the unique
// constraint on owner_address. Concurrent registrations for the same address
// are serialized by the database and surface here.
var ErrDuplicateOwnerAddress = errors.New("owner address already registered")

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(business *models.Business) error {
	if err := r.db.Create(business).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateOwnerAddress
		}
		return err
	}
	return nil
}

// FindByAddress looks up a business without its invoices. Returns
// gorm.ErrRecordNotFound when the address is unknown.
func (r *BusinessRepository) FindByAddress(address string) (*models.Business, error) {
	var business models.Business
	if err := r.db.Where("owner_address = ?", address).First(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

// FindAllWithInvoices returns every business with its invoices loaded, in
// storage order.
func (r *BusinessRepository) FindAllWithInvoices() ([]models.Business, error) {
	var businesses []models.Business
	if err := r.db.Preload("Invoices").Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

// FindByAddressWithInvoices returns the business for address with its
// invoices loaded, or gorm.ErrRecordNotFound.
func (r *BusinessRepository) FindByAddressWithInvoices(address string) (*models.Business, error) {
	var business models.Business
	if err := r.db.Preload("Invoices").
		Where("owner_address = ?", address).
		First(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Business{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
