package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/filemytax/tax-engine/internal/domain"
)

// MemoryStore holds one taxpayer's records in memory. It backs the offline
// snapshot CLI path and the engine tests. Nil category fields model the
// "no record yet" state.
type MemoryStore struct {
	TaxpayerRec *domain.Taxpayer
	InterestRec *domain.InterestIncome
	GainRecs    []domain.CapitalGain
	DeemedRec   *domain.DeemedIncome
	DividendRec *domain.DividendIncome
	RentRec     *domain.RentalIncome
	ProfRec     *domain.ProfessionalIncome
	BusinessRec *domain.BusinessIncome
	PLRec       *domain.ProfitLoss
	TDSRec      *domain.TDSRecord
	PaidTotal   decimal.Decimal

	mu        sync.Mutex
	summaries []*domain.TaxSummary
}

// FromSnapshot builds a MemoryStore from a loaded income snapshot
func FromSnapshot(snap *domain.IncomeSnapshot) *MemoryStore {
	taxpayer := snap.Taxpayer
	return &MemoryStore{
		TaxpayerRec: &taxpayer,
		InterestRec: snap.Interest,
		GainRecs:    snap.CapitalGains,
		DeemedRec:   snap.Deemed,
		DividendRec: snap.Dividends,
		RentRec:     snap.Rent,
		ProfRec:     snap.Professional,
		BusinessRec: snap.Business,
		PLRec:       snap.ProfitLoss,
		TDSRec:      snap.TDS,
		PaidTotal:   snap.TaxesPaid,
	}
}

func (m *MemoryStore) Taxpayer(_ context.Context, taxpayerID string) (*domain.Taxpayer, error) {
	if m.TaxpayerRec == nil || m.TaxpayerRec.ID != taxpayerID {
		return nil, ErrTaxpayerNotFound
	}
	return m.TaxpayerRec, nil
}

func (m *MemoryStore) owns(taxpayerID string) bool {
	return m.TaxpayerRec != nil && m.TaxpayerRec.ID == taxpayerID
}

func (m *MemoryStore) Interest(_ context.Context, taxpayerID string) (*domain.InterestIncome, error) {
	if !m.owns(taxpayerID) {
		return nil, nil
	}
	return m.InterestRec, nil
}

func (m *MemoryStore) CapitalGains(_ context.Context, taxpayerID string) ([]domain.CapitalGain, error) {
	if !m.owns(taxpayerID) {
		return nil, nil
	}
	return m.GainRecs, nil
}

func (m *MemoryStore) Deemed(_ context.Context, taxpayerID string) (*domain.DeemedIncome, error) {
	if !m.owns(taxpayerID) {
		return nil, nil
	}
	return m.DeemedRec, nil
}

func (m *MemoryStore) Dividends(_ context.Context, taxpayerID string) (*domain.DividendIncome, error) {
	if !m.owns(taxpayerID) {
		return nil, nil
	}
	return m.DividendRec, nil
}

func (m *MemoryStore) Rent(_ context.Context, taxpayerID string) (*domain.RentalIncome, error) {
	if !m.owns(taxpayerID) {
		return nil, nil
	}
	return m.RentRec, nil
}

func (m *MemoryStore) Professional(_ context.Context, taxpayerID string) (*domain.ProfessionalIncome, error) {
	if !m.owns(taxpayerID) {
		return nil, nil
	}
	return m.ProfRec, nil
}

func (m *MemoryStore) Business(_ context.Context, taxpayerID string) (*domain.BusinessIncome, error) {
	if !m.owns(taxpayerID) {
		return nil, nil
	}
	return m.BusinessRec, nil
}

func (m *MemoryStore) ProfitLoss(_ context.Context, taxpayerID string) (*domain.ProfitLoss, error) {
	if !m.owns(taxpayerID) {
		return nil, nil
	}
	return m.PLRec, nil
}

func (m *MemoryStore) TDS(_ context.Context, taxpayerID string) (*domain.TDSRecord, error) {
	if !m.owns(taxpayerID) {
		return nil, nil
	}
	return m.TDSRec, nil
}

func (m *MemoryStore) TaxesPaid(_ context.Context, taxpayerID string) (decimal.Decimal, error) {
	if !m.owns(taxpayerID) {
		return decimal.Zero, nil
	}
	return m.PaidTotal, nil
}

func (m *MemoryStore) SaveSummary(_ context.Context, summary *domain.TaxSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries = append(m.summaries, summary)
	return nil
}

// SavedSummaries returns every summary persisted so far, newest last
func (m *MemoryStore) SavedSummaries() []*domain.TaxSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.TaxSummary, len(m.summaries))
	copy(out, m.summaries)
	return out
}
