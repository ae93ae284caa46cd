package repository

import (
	"time"

	"gorm.io/gorm"

	"mantleflow-backend/models"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// FindOverdue returns unpaid invoices whose due date has passed.
func (r *InvoiceRepository) FindOverdue(now time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Where("is_paid = ? AND due_date < ?", false, now).
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
