package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"mantleflow-backend/utils"
)

// OverdueService periodically reports unpaid invoices past their due date.
// It only observes: payment confirmation happens out-of-band (on-chain), so
// the sweep never flips isPaid.
type OverdueService struct {
	store InvoiceStore
	cron  *cron.Cron
}

func NewOverdueService(store InvoiceStore) *OverdueService {
	return &OverdueService{
		store: store,
		cron:  cron.New(),
	}
}

func (s *OverdueService) StartScheduler() {
	// Run every day at 9 AM
	s.cron.AddFunc("0 9 * * *", s.ReportOverdueInvoices)

	s.cron.Start()
	log.Println("Overdue invoice scheduler started")
}

func (s *OverdueService) Stop() {
	s.cron.Stop()
}

// ReportOverdueInvoices logs every unpaid invoice whose due date is before
// the start of today, grouped by business.
func (s *OverdueService) ReportOverdueInvoices() {
	log.Println("Starting overdue invoice sweep...")

	cutoff := utils.BeginningOfDay(time.Now())
	invoices, err := s.store.FindOverdue(cutoff)
	if err != nil {
		log.Printf("Failed to fetch overdue invoices: %v", err)
		return
	}

	byBusiness := make(map[uint]int)
	for _, invoice := range invoices {
		byBusiness[invoice.BusinessID]++
		log.Printf("Business %d: invoice %d for %d overdue since %s",
			invoice.BusinessID, invoice.ID, invoice.Amount,
			invoice.DueDate.Format("2006-01-02"))
	}

	log.Printf("Overdue invoice sweep completed: %d invoices across %d businesses",
		len(invoices), len(byBusiness))
}
