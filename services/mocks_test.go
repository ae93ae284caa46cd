package services

import (
	"time"

	"gorm.io/gorm"

	"mantleflow-backend/models"
)

// fakeBusinessStore is an in-memory BusinessStore.
type fakeBusinessStore struct {
	businesses []*models.Business
	nextID     uint
	createErr  error
	findErr    error
}

func newFakeBusinessStore() *fakeBusinessStore {
	return &fakeBusinessStore{nextID: 1}
}

func (f *fakeBusinessStore) Create(business *models.Business) error {
	if f.createErr != nil {
		return f.createErr
	}
	business.ID = f.nextID
	f.nextID++
	copied := *business
	f.businesses = append(f.businesses, &copied)
	return nil
}

func (f *fakeBusinessStore) FindByAddress(address string) (*models.Business, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, b := range f.businesses {
		if b.OwnerAddress == address {
			copied := *b
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBusinessStore) FindAllWithInvoices() ([]models.Business, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]models.Business, 0, len(f.businesses))
	for _, b := range f.businesses {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBusinessStore) FindByAddressWithInvoices(address string) (*models.Business, error) {
	return f.FindByAddress(address)
}

func (f *fakeBusinessStore) ExistsByID(id uint) (bool, error) {
	if f.findErr != nil {
		return false, f.findErr
	}
	for _, b := range f.businesses {
		if b.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// fakeInvoiceStore is an in-memory InvoiceStore.
type fakeInvoiceStore struct {
	invoices          []*models.Invoice
	nextID            uint
	createErr         error
	findErr           error
	lastOverdueCutoff time.Time
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{nextID: 1}
}

func (f *fakeInvoiceStore) Create(invoice *models.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	invoice.ID = f.nextID
	f.nextID++
	copied := *invoice
	f.invoices = append(f.invoices, &copied)
	return nil
}

func (f *fakeInvoiceStore) FindOverdue(now time.Time) ([]models.Invoice, error) {
	f.lastOverdueCutoff = now
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Invoice
	for _, inv := range f.invoices {
		if !inv.IsPaid && inv.DueDate.Before(now) {
			out = append(out, *inv)
		}
	}
	return out, nil
}
