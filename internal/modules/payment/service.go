package payment

import (
	"context"
	"errors"
	"fmt"

	"sharksports/internal/config"
	"sharksports/internal/domain"
	"sharksports/internal/pkg/payu"
	"sharksports/internal/repository"
	"sharksports/internal/scope"
)

const provider = "payu"

type Service struct {
	bookings BookingRepository
	configs  ConfigRepository
	activity ActivityLogger
	appCfg   *config.Config
}

func NewService(bookings BookingRepository, configs ConfigRepository, activity ActivityLogger, appCfg *config.Config) *Service {
	return &Service{bookings: bookings, configs: configs, activity: activity, appCfg: appCfg}
}

// Initiate builds the signed checkout form for a pending booking in the
// actor's scope and stores the transaction id on the booking.
func (s *Service) Initiate(ctx context.Context, actor scope.Actor, bookingID int64) (*payu.PaymentRequest, error) {
	pred, err := scope.Bookings(actor)
	if err != nil {
		return nil, ErrNotFound
	}

	b, err := s.bookings.GetByID(ctx, pred, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.PaymentStatus != domain.PaymentPending {
		return nil, ErrNotPending
	}

	gw, err := s.gatewayConfig(ctx)
	if err != nil {
		return nil, err
	}

	req := payu.NewPaymentRequest(*gw, payu.BookingInfo{
		BookingID:     b.ID,
		Amount:        b.TotalAmount,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		VenueName:     b.VenueName,
		SuccessURL:    s.appCfg.PublicBaseURL + "/api/payments/success",
		FailureURL:    s.appCfg.PublicBaseURL + "/api/payments/failure",
	})

	if err := s.bookings.SetPaymentID(ctx, b.ID, req.TxnID); err != nil {
		return nil, err
	}

	return &req, nil
}

// HandleCallback processes a gateway postback and returns the page to
// redirect the customer to. The gateway is unauthenticated here, so the
// booking is only ever moved between payment states, never mutated
// otherwise.
func (s *Service) HandleCallback(ctx context.Context, result *payu.CallbackResult) string {
	status := domain.PaymentFailed
	action := "payment_failed"
	page := "/payment/failure"
	if result.Succeeded {
		status = domain.PaymentPaid
		action = "payment_received"
		page = "/payment/success"
	}

	if err := s.bookings.SetPaymentStatus(ctx, result.BookingID, status); err != nil {
		return s.appCfg.PublicBaseURL + "/payment/failure"
	}

	_ = s.activity.Log(ctx, nil, action,
		fmt.Sprintf("Gateway callback %s for booking #%d", result.TransactionID, result.BookingID),
		"booking", result.BookingID)

	return fmt.Sprintf("%s%s?bookingId=%d", s.appCfg.PublicBaseURL, page, result.BookingID)
}

// GetConfig returns the stored gateway credentials for the admin settings
// screen, or an inactive placeholder when none are stored yet.
func (s *Service) GetConfig(ctx context.Context) (*domain.PaymentConfig, error) {
	cfg, err := s.configs.Get(ctx, provider)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.PaymentConfig{Provider: provider, Environment: "test"}, nil
		}
		return nil, err
	}
	return cfg, nil
}

func (s *Service) UpdateConfig(ctx context.Context, actor scope.Actor, req UpdateConfigRequest) error {
	cfg := &domain.PaymentConfig{
		Provider:     provider,
		MerchantKey:  req.MerchantKey,
		MerchantSalt: req.MerchantSalt,
		Environment:  req.Environment,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	if err := s.configs.Upsert(ctx, cfg); err != nil {
		return err
	}

	_ = s.activity.Log(ctx, &actor.UserID, "payment_config_updated",
		"Payment gateway credentials updated", "payment_config", cfg.ID)
	return nil
}

// gatewayConfig resolves credentials: the active database row wins, the
// environment variables are the fallback for setups without the admin
// settings screen.
func (s *Service) gatewayConfig(ctx context.Context) (*payu.Config, error) {
	cfg, err := s.configs.GetActive(ctx, provider)
	if err == nil {
		return &payu.Config{
			Key:         cfg.MerchantKey,
			Salt:        cfg.MerchantSalt,
			Environment: cfg.Environment,
			BaseURL:     s.appCfg.PayUBaseURL,
		}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if s.appCfg.PayUKey == "" || s.appCfg.PayUSalt == "" {
		return nil, ErrNotConfigured
	}
	return &payu.Config{
		Key:         s.appCfg.PayUKey,
		Salt:        s.appCfg.PayUSalt,
		Environment: "test",
		BaseURL:     s.appCfg.PayUBaseURL,
	}, nil
}
