package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// SavingsService handles the emergency fund and savings goals
type SavingsService struct {
	recordService
}

// NewSavingsService creates a new SavingsService
func NewSavingsService(repo domain.BudgetRepository) *SavingsService {
	return &SavingsService{recordService: newRecordService(repo)}
}

// EmergencyFundInput updates the emergency fund. Fields that are not
// valid are left unchanged.
type EmergencyFundInput struct {
	CurrentAmount       decimal.NullDecimal
	MonthlyContribution decimal.NullDecimal
}

// GoalInput contains input for creating or updating a savings goal
type GoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	TargetDate    domain.Date
	CurrentAmount decimal.Decimal
}

func (in GoalInput) apply(g *domain.SavingsGoal) {
	g.Name = strings.TrimSpace(in.Name)
	g.TargetAmount = in.TargetAmount
	g.TargetDate = in.TargetDate
	g.CurrentAmount = in.CurrentAmount
}

func goalID(g domain.SavingsGoal) domain.ID { return g.ID }

// GetSavings returns the savings category with goal contributions as of today
func (s *SavingsService) GetSavings(ctx context.Context) (*domain.Savings, error) {
	savings, err := s.repo.GetSavings(ctx)
	if err != nil {
		return nil, err
	}
	today := s.today()
	for i := range savings.Goals {
		savings.Goals[i] = savings.Goals[i].WithDerived(today)
	}
	return savings, nil
}

// SetEmergencyFund updates the emergency fund balance and/or monthly target
func (s *SavingsService) SetEmergencyFund(ctx context.Context, input EmergencyFundInput) (*domain.EmergencyFund, error) {
	if !input.CurrentAmount.Valid && !input.MonthlyContribution.Valid {
		return nil, domain.ErrAmountRequired
	}
	if (input.CurrentAmount.Valid && input.CurrentAmount.Decimal.IsNegative()) ||
		(input.MonthlyContribution.Valid && input.MonthlyContribution.Decimal.IsNegative()) {
		return nil, domain.ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	savings, err := s.repo.GetSavings(ctx)
	if err != nil {
		return nil, err
	}
	if input.CurrentAmount.Valid {
		savings.EmergencyFunds = input.CurrentAmount.Decimal
	}
	if input.MonthlyContribution.Valid {
		savings.MonthlySavings = input.MonthlyContribution.Decimal
	}
	if err := s.repo.SaveSavings(ctx, savings); err != nil {
		return nil, err
	}

	fund := savings.EmergencyFund()
	s.publishEvent(websocket.Updated(websocket.EntityTypeEmergencyFund, fund))
	return &fund, nil
}

// AddGoal appends a savings goal. Its monthly contribution is derived from
// the remaining amount and the months left.
func (s *SavingsService) AddGoal(ctx context.Context, input GoalInput) (*domain.SavingsGoal, error) {
	goal := domain.SavingsGoal{ID: domain.NewID()}
	input.apply(&goal)
	if err := goal.Validate(); err != nil {
		return nil, err
	}
	goal = goal.WithDerived(s.today())

	s.mu.Lock()
	defer s.mu.Unlock()

	savings, err := s.repo.GetSavings(ctx)
	if err != nil {
		return nil, err
	}
	savings.Goals = append(savings.Goals, goal)
	if err := s.repo.SaveSavings(ctx, savings); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Created(websocket.EntityTypeSavingsGoal, goal))
	return &goal, nil
}

// UpdateGoal replaces the editable fields of a goal and recomputes its
// contribution and progress
func (s *SavingsService) UpdateGoal(ctx context.Context, id domain.ID, input GoalInput) (*domain.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	savings, err := s.repo.GetSavings(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(savings.Goals, id, goalID)
	if idx < 0 {
		return nil, domain.ErrGoalNotFound
	}

	updated := savings.Goals[idx]
	input.apply(&updated)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated = updated.WithDerived(s.today())
	savings.Goals[idx] = updated
	if err := s.repo.SaveSavings(ctx, savings); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Updated(websocket.EntityTypeSavingsGoal, updated))
	return &updated, nil
}

// DeleteGoal removes a savings goal
func (s *SavingsService) DeleteGoal(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	savings, err := s.repo.GetSavings(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(savings.Goals, id, goalID)
	if idx < 0 {
		return domain.ErrGoalNotFound
	}
	savings.Goals = append(savings.Goals[:idx], savings.Goals[idx+1:]...)
	if err := s.repo.SaveSavings(ctx, savings); err != nil {
		return err
	}

	s.publishEvent(websocket.Deleted(websocket.EntityTypeSavingsGoal, map[string]domain.ID{"id": id}))
	return nil
}

// ToggleGoalIgnored flips whether a goal receives any of the surplus
func (s *SavingsService) ToggleGoalIgnored(ctx context.Context, id domain.ID) (*domain.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	savings, err := s.repo.GetSavings(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(savings.Goals, id, goalID)
	if idx < 0 {
		return nil, domain.ErrGoalNotFound
	}
	savings.Goals[idx].IsIgnored = !savings.Goals[idx].IsIgnored
	if err := s.repo.SaveSavings(ctx, savings); err != nil {
		return nil, err
	}

	goal := savings.Goals[idx]
	s.publishEvent(websocket.Updated(websocket.EntityTypeSavingsGoal, goal))
	return &goal, nil
}

// ReplaceSavings overwrites the whole savings category
func (s *SavingsService) ReplaceSavings(ctx context.Context, savings *domain.Savings) (*domain.Savings, error) {
	if savings.EmergencyFunds.IsNegative() || savings.MonthlySavings.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}
	today := s.today()
	for i := range savings.Goals {
		if err := savings.Goals[i].Validate(); err != nil {
			return nil, err
		}
		savings.Goals[i] = savings.Goals[i].WithDerived(today)
	}
	assignIDs(savings.Goals, func(g *domain.SavingsGoal) *domain.ID { return &g.ID })

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveSavings(ctx, savings); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryReplaced(string(domain.CategorySavings)))
	return savings, nil
}

// RefreshGoals stores recomputed contributions and progress for goals whose
// cached values are stale. It returns how many goals changed.
func (s *SavingsService) RefreshGoals(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	savings, err := s.repo.GetSavings(ctx)
	if err != nil {
		return 0, err
	}
	today := s.today()
	changed := 0
	for i, goal := range savings.Goals {
		refreshed := goal.WithDerived(today)
		if !refreshed.MonthlyContribution.Equal(goal.MonthlyContribution) || !refreshed.Progress.Equal(goal.Progress) {
			savings.Goals[i] = refreshed
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := s.repo.SaveSavings(ctx, savings); err != nil {
		return 0, err
	}
	return changed, nil
}
