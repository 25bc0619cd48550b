package settings

import (
	"context"
	"errors"
)

type Service struct {
	repo SettingsRepository
}

func NewService(repo SettingsRepository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (s *Service) Get(ctx context.Context) (*Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return Defaults(), nil
		}
		return nil, err
	}
	return stored, nil
}

// SavePaymentInput carries the optional sections of a settings update.
// A nil section leaves the stored values untouched.
type SavePaymentInput struct {
	PaymentMethods *PaymentMethods `json:"paymentMethods"`
	PaymentGateway *PaymentGateway `json:"paymentGateway"`
	Shipping       *Shipping       `json:"shipping"`
}

// SavePayment loads or creates the singleton document and overwrites the
// supplied sections.
func (s *Service) SavePayment(ctx context.Context, in SavePaymentInput) (*Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if in.PaymentMethods != nil {
		current.PaymentMethods = *in.PaymentMethods
	}
	if in.PaymentGateway != nil {
		if in.PaymentGateway.Provider == "" {
			in.PaymentGateway.Provider = "Stripe"
		}
		current.PaymentGateway = *in.PaymentGateway
	}
	if in.Shipping != nil {
		current.Shipping = *in.Shipping
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
