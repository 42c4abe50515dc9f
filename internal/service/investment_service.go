package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// InvestmentService handles investment and pension accounts
type InvestmentService struct {
	recordService
}

// NewInvestmentService creates a new InvestmentService
func NewInvestmentService(repo domain.BudgetRepository) *InvestmentService {
	return &InvestmentService{recordService: newRecordService(repo)}
}

// AccountInput contains the fields shared by investment and pension accounts
type AccountInput struct {
	AccountName         string
	AccountType         string
	Provider            string
	CurrentValue        decimal.Decimal
	InitialInvestment   decimal.Decimal
	MonthlyContribution decimal.Decimal
}

func (in AccountInput) apply(a *domain.InvestmentAccount) {
	a.AccountName = strings.TrimSpace(in.AccountName)
	a.AccountType = strings.TrimSpace(in.AccountType)
	a.Provider = strings.TrimSpace(in.Provider)
	a.CurrentValue = in.CurrentValue
	a.InitialInvestment = in.InitialInvestment
	a.MonthlyContribution = in.MonthlyContribution
}

// PensionInput contains input for creating or updating a pension
type PensionInput struct {
	AccountInput
	PensionType          string
	EmployerContribution decimal.Decimal
}

func (in PensionInput) apply(p *domain.PensionAccount) {
	in.AccountInput.apply(&p.InvestmentAccount)
	p.PensionType = strings.TrimSpace(in.PensionType)
	p.EmployerContribution = in.EmployerContribution
}

func investmentID(a domain.InvestmentAccount) domain.ID { return a.ID }
func pensionID(p domain.PensionAccount) domain.ID       { return p.ID }

// GetInvestments returns all investment and pension accounts
func (s *InvestmentService) GetInvestments(ctx context.Context) (*domain.Investments, error) {
	return s.repo.GetInvestments(ctx)
}

// mutate runs fn on the stored investments and saves them when fn succeeds
func (s *InvestmentService) mutate(ctx context.Context, fn func(inv *domain.Investments) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.repo.GetInvestments(ctx)
	if err != nil {
		return err
	}
	if err := fn(inv); err != nil {
		return err
	}
	return s.repo.SaveInvestments(ctx, inv)
}

// AddInvestment appends an investment account
func (s *InvestmentService) AddInvestment(ctx context.Context, input AccountInput) (*domain.InvestmentAccount, error) {
	account := domain.InvestmentAccount{ID: domain.NewID()}
	input.apply(&account)
	if err := account.Validate(); err != nil {
		return nil, err
	}

	err := s.mutate(ctx, func(inv *domain.Investments) error {
		inv.Investments = append(inv.Investments, account)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Created(websocket.EntityTypeInvestment, account))
	return &account, nil
}

// UpdateInvestment replaces the editable fields of an investment account
func (s *InvestmentService) UpdateInvestment(ctx context.Context, id domain.ID, input AccountInput) (*domain.InvestmentAccount, error) {
	var updated domain.InvestmentAccount
	err := s.mutate(ctx, func(inv *domain.Investments) error {
		idx := indexOf(inv.Investments, id, investmentID)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		updated = inv.Investments[idx]
		input.apply(&updated)
		if err := updated.Validate(); err != nil {
			return err
		}
		inv.Investments[idx] = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Updated(websocket.EntityTypeInvestment, updated))
	return &updated, nil
}

// DeleteInvestment removes an investment account
func (s *InvestmentService) DeleteInvestment(ctx context.Context, id domain.ID) error {
	err := s.mutate(ctx, func(inv *domain.Investments) error {
		idx := indexOf(inv.Investments, id, investmentID)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		inv.Investments = append(inv.Investments[:idx], inv.Investments[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.publishEvent(websocket.Deleted(websocket.EntityTypeInvestment, map[string]domain.ID{"id": id}))
	return nil
}

// ToggleInvestmentIgnored flips whether an account receives any surplus
func (s *InvestmentService) ToggleInvestmentIgnored(ctx context.Context, id domain.ID) (*domain.InvestmentAccount, error) {
	var updated domain.InvestmentAccount
	err := s.mutate(ctx, func(inv *domain.Investments) error {
		idx := indexOf(inv.Investments, id, investmentID)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		inv.Investments[idx].IsIgnored = !inv.Investments[idx].IsIgnored
		updated = inv.Investments[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Updated(websocket.EntityTypeInvestment, updated))
	return &updated, nil
}

// AddPension appends a pension account
func (s *InvestmentService) AddPension(ctx context.Context, input PensionInput) (*domain.PensionAccount, error) {
	pension := domain.PensionAccount{InvestmentAccount: domain.InvestmentAccount{ID: domain.NewID()}}
	input.apply(&pension)
	if err := pension.Validate(); err != nil {
		return nil, err
	}

	err := s.mutate(ctx, func(inv *domain.Investments) error {
		inv.Pensions = append(inv.Pensions, pension)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Created(websocket.EntityTypePension, pension))
	return &pension, nil
}

// UpdatePension replaces the editable fields of a pension
func (s *InvestmentService) UpdatePension(ctx context.Context, id domain.ID, input PensionInput) (*domain.PensionAccount, error) {
	var updated domain.PensionAccount
	err := s.mutate(ctx, func(inv *domain.Investments) error {
		idx := indexOf(inv.Pensions, id, pensionID)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		updated = inv.Pensions[idx]
		input.apply(&updated)
		if err := updated.Validate(); err != nil {
			return err
		}
		inv.Pensions[idx] = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Updated(websocket.EntityTypePension, updated))
	return &updated, nil
}

// DeletePension removes a pension
func (s *InvestmentService) DeletePension(ctx context.Context, id domain.ID) error {
	err := s.mutate(ctx, func(inv *domain.Investments) error {
		idx := indexOf(inv.Pensions, id, pensionID)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		inv.Pensions = append(inv.Pensions[:idx], inv.Pensions[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.publishEvent(websocket.Deleted(websocket.EntityTypePension, map[string]domain.ID{"id": id}))
	return nil
}

// TogglePensionIgnored flips whether a pension receives any surplus
func (s *InvestmentService) TogglePensionIgnored(ctx context.Context, id domain.ID) (*domain.PensionAccount, error) {
	var updated domain.PensionAccount
	err := s.mutate(ctx, func(inv *domain.Investments) error {
		idx := indexOf(inv.Pensions, id, pensionID)
		if idx < 0 {
			return domain.ErrAccountNotFound
		}
		inv.Pensions[idx].IsIgnored = !inv.Pensions[idx].IsIgnored
		updated = inv.Pensions[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Updated(websocket.EntityTypePension, updated))
	return &updated, nil
}

// ReplaceInvestments overwrites the whole investments category
func (s *InvestmentService) ReplaceInvestments(ctx context.Context, inv *domain.Investments) (*domain.Investments, error) {
	for i := range inv.Investments {
		if err := inv.Investments[i].Validate(); err != nil {
			return nil, err
		}
	}
	for i := range inv.Pensions {
		if err := inv.Pensions[i].Validate(); err != nil {
			return nil, err
		}
	}
	assignIDs(inv.Investments, func(a *domain.InvestmentAccount) *domain.ID { return &a.ID })
	assignIDs(inv.Pensions, func(p *domain.PensionAccount) *domain.ID { return &p.ID })

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveInvestments(ctx, inv); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryReplaced(string(domain.CategoryInvestments)))
	return inv, nil
}
