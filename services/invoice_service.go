package services

import (
	"time"

	"mantleflow-backend/apperrors"
	"mantleflow-backend/models"
	"mantleflow-backend/utils"
)

// InvoiceStore is the persistence surface the invoice service needs.
type InvoiceStore interface {
	Create(invoice *models.Invoice) error
	FindOverdue(now time.Time) ([]models.Invoice, error)
}

// BusinessLookup verifies that an invoice's business exists before insert.
type BusinessLookup interface {
	ExistsByID(id uint) (bool, error)
}

type InvoiceService struct {
	store      InvoiceStore
	businesses BusinessLookup
}

func NewInvoiceService(store InvoiceStore, businesses BusinessLookup) *InvoiceService {
	return &InvoiceService{store: store, businesses: businesses}
}

// Create persists a new unpaid invoice for the given business. The due date
// is an ISO-8601 string; the business must exist.
func (s *InvoiceService) Create(businessID uint, amount int64, dueDate, tokenURI string) (*models.Invoice, error) {
	due, err := utils.ParseDueDate(dueDate)
	if err != nil {
		return nil, apperrors.Validation("dueDate must be a valid ISO-8601 date")
	}

	exists, err := s.businesses.ExistsByID(businessID)
	if err != nil {
		return nil, apperrors.Internal("Failed to create invoice", err)
	}
	if !exists {
		return nil, apperrors.NotFound("Business not found")
	}

	invoice := &models.Invoice{
		Amount:     amount,
		DueDate:    due,
		IsPaid:     false,
		TokenURI:   tokenURI,
		BusinessID: businessID,
	}

	if err := s.store.Create(invoice); err != nil {
		return nil, apperrors.Internal("Failed to create invoice", err)
	}

	return invoice, nil
}
