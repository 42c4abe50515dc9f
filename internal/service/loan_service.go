package service

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// LoanService handles loan business logic
type LoanService struct {
	recordService
}

// NewLoanService creates a new LoanService
func NewLoanService(repo domain.BudgetRepository) *LoanService {
	return &LoanService{recordService: newRecordService(repo)}
}

// LoanInput contains input for creating or updating a loan
type LoanInput struct {
	Name           string
	Category       string
	MonthlyPayment decimal.Decimal
	StartDate      domain.Date
	EndDate        domain.Date
}

func (in LoanInput) apply(l *domain.Loan) {
	l.Name = strings.TrimSpace(in.Name)
	l.Category = strings.TrimSpace(in.Category)
	l.MonthlyPayment = in.MonthlyPayment
	l.StartDate = in.StartDate
	l.EndDate = in.EndDate
}

func loanID(l domain.Loan) domain.ID { return l.ID }

// ListLoans returns every loan with progress and completion as of today
func (s *LoanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.repo.GetLoans(ctx)
	if err != nil {
		return nil, err
	}
	today := s.today()
	for i := range loans {
		loans[i] = loans[i].WithDerived(today)
	}
	return loans, nil
}

// GetLoan returns a single loan
func (s *LoanService) GetLoan(ctx context.Context, id domain.ID) (*domain.Loan, error) {
	loans, err := s.ListLoans(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(loans, id, loanID)
	if idx < 0 {
		return nil, domain.ErrLoanNotFound
	}
	return &loans[idx], nil
}

// CreateLoan appends a new loan
func (s *LoanService) CreateLoan(ctx context.Context, input LoanInput) (*domain.Loan, error) {
	loan := domain.Loan{ID: domain.NewID()}
	input.apply(&loan)
	if loan.MonthlyPayment.IsZero() {
		return nil, domain.ErrLoanPaymentRequired
	}
	if err := loan.Validate(); err != nil {
		return nil, err
	}
	loan = loan.WithDerived(s.today())

	s.mu.Lock()
	defer s.mu.Unlock()

	loans, err := s.repo.GetLoans(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveLoans(ctx, append(loans, loan)); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Created(websocket.EntityTypeLoan, loan))
	return &loan, nil
}

// UpdateLoan replaces the editable fields of a loan and recomputes its
// progress and completion
func (s *LoanService) UpdateLoan(ctx context.Context, id domain.ID, input LoanInput) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans, err := s.repo.GetLoans(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(loans, id, loanID)
	if idx < 0 {
		return nil, domain.ErrLoanNotFound
	}

	updated := loans[idx]
	input.apply(&updated)
	if updated.MonthlyPayment.IsZero() {
		return nil, domain.ErrLoanPaymentRequired
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated = updated.WithDerived(s.today())
	loans[idx] = updated
	if err := s.repo.SaveLoans(ctx, loans); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Updated(websocket.EntityTypeLoan, updated))
	return &updated, nil
}

// DeleteLoan removes a loan
func (s *LoanService) DeleteLoan(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans, err := s.repo.GetLoans(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(loans, id, loanID)
	if idx < 0 {
		return domain.ErrLoanNotFound
	}
	if err := s.repo.SaveLoans(ctx, append(loans[:idx], loans[idx+1:]...)); err != nil {
		return err
	}

	s.publishEvent(websocket.Deleted(websocket.EntityTypeLoan, map[string]domain.ID{"id": id}))
	return nil
}

// ToggleLoanIgnored flips whether a loan is left out of every total
func (s *LoanService) ToggleLoanIgnored(ctx context.Context, id domain.ID) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans, err := s.repo.GetLoans(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(loans, id, loanID)
	if idx < 0 {
		return nil, domain.ErrLoanNotFound
	}
	loans[idx].IsIgnored = !loans[idx].IsIgnored
	if err := s.repo.SaveLoans(ctx, loans); err != nil {
		return nil, err
	}

	loan := loans[idx].WithDerived(s.today())
	s.publishEvent(websocket.Updated(websocket.EntityTypeLoan, loan))
	return &loan, nil
}

// LoanSortOrder selects how SortLoans orders loans
type LoanSortOrder string

const (
	LoanSortByName        LoanSortOrder = "name"
	LoanSortByPaymentAsc  LoanSortOrder = "payment_asc"
	LoanSortByPaymentDesc LoanSortOrder = "payment_desc"
)

// ParseLoanSortOrder validates a sort order taken from a query string.
// An empty string sorts by name.
func ParseLoanSortOrder(s string) (LoanSortOrder, error) {
	switch o := LoanSortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return LoanSortByName, nil
	case LoanSortByName, LoanSortByPaymentAsc, LoanSortByPaymentDesc:
		return o, nil
	}
	return "", domain.ErrInvalidInput
}

// SortLoans stores the loans in the requested order
func (s *LoanService) SortLoans(ctx context.Context, order LoanSortOrder) ([]domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans, err := s.repo.GetLoans(ctx)
	if err != nil {
		return nil, err
	}

	var less func(a, b domain.Loan) bool
	switch order {
	case LoanSortByPaymentAsc:
		less = func(a, b domain.Loan) bool { return a.MonthlyPayment.LessThan(b.MonthlyPayment) }
	case LoanSortByPaymentDesc:
		less = func(a, b domain.Loan) bool { return a.MonthlyPayment.GreaterThan(b.MonthlyPayment) }
	default:
		less = func(a, b domain.Loan) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	}
	sort.SliceStable(loans, func(i, j int) bool { return less(loans[i], loans[j]) })

	if err := s.repo.SaveLoans(ctx, loans); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryReplaced(string(domain.CategoryLoans)))
	return loans, nil
}

// ReplaceLoans overwrites the whole loan list, refreshing derived fields
func (s *LoanService) ReplaceLoans(ctx context.Context, loans []domain.Loan) ([]domain.Loan, error) {
	today := s.today()
	for i := range loans {
		if err := loans[i].Validate(); err != nil {
			return nil, err
		}
		loans[i] = loans[i].WithDerived(today)
	}
	assignIDs(loans, func(l *domain.Loan) *domain.ID { return &l.ID })

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveLoans(ctx, loans); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryReplaced(string(domain.CategoryLoans)))
	return loans, nil
}

// RefreshLoans stores recomputed progress and completion for loans whose
// cached values are stale. It returns how many loans changed.
func (s *LoanService) RefreshLoans(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans, err := s.repo.GetLoans(ctx)
	if err != nil {
		return 0, err
	}
	today := s.today()
	changed := 0
	for i, loan := range loans {
		refreshed := loan.WithDerived(today)
		if refreshed.IsCompleted != loan.IsCompleted || !refreshed.Progress.Equal(loan.Progress) {
			loans[i] = refreshed
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := s.repo.SaveLoans(ctx, loans); err != nil {
		return 0, err
	}
	return changed, nil
}
