package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"studiobook/internal/domain"
	"studiobook/internal/metrics"
	"studiobook/internal/pkg/validator"
	"studiobook/internal/repository"
)

// failureOdds makes 1 draw in 10 fail, the advertised 90% success rate of
// the simulated gateway.
const failureOdds = 10

type Service struct {
	payments PaymentRepository
	bookings BookingReader
	config   ConfigProvider
	log      zerolog.Logger

	// delay simulates gateway processing time; tests set it to zero.
	delay time.Duration
	// draw returns a uniform value in [0, failureOdds); injectable for tests.
	draw func() int
}

func NewService(
	payments PaymentRepository,
	bookings BookingReader,
	config ConfigProvider,
	delay time.Duration,
	log zerolog.Logger,
) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		config:   config,
		log:      log,
		delay:    delay,
		draw:     func() int { return rand.Intn(failureOdds) },
	}
}

// ProcessPayment runs the full simulated settlement: validate, persist a
// PENDING record, wait the configured delay, then resolve COMPLETED or FAILED.
// The returned record's status is authoritative; there is no webhook path.
func (s *Service) ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*domain.Payment, error) {
	method := domain.PaymentMethod(req.PaymentMethod)
	if !method.Valid() || req.Amount <= 0 || req.ClientID == "" {
		return nil, ErrValidation
	}

	cfg, err := s.config.GetSystemConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !methodAccepted(cfg, method) {
		return nil, ErrMethodNotAccepted
	}

	if method.RequiresCard() {
		if req.Card == nil || !ValidateCard(*req.Card) {
			return nil, ErrInvalidCard
		}
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Payment{
		ID:            uuid.NewString(),
		BookingID:     b.ID,
		ClientID:      req.ClientID,
		ClientName:    b.ClientName,
		Amount:        req.Amount,
		PaymentMethod: method,
		Status:        domain.PaymentPending,
		TransactionID: fmt.Sprintf("TXN%d", now.UnixMilli()),
		CreatedAt:     now,
	}
	if fields := validator.Check(p); fields != nil {
		return nil, ErrValidation
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	status := domain.PaymentCompleted
	if s.draw() == 0 {
		status = domain.PaymentFailed
	}
	processedAt := time.Now().UnixMilli()

	if err := s.payments.Resolve(ctx, p.ID, status, processedAt); err != nil {
		return nil, err
	}

	p.Status = status
	p.ProcessedAt = processedAt

	metrics.IncPaymentOutcome(string(status))
	s.log.Info().
		Str("payment_id", p.ID).
		Str("booking_id", p.BookingID).
		Str("status", string(status)).
		Float64("amount", p.Amount).
		Msg("payment processed")

	return p, nil
}

func (s *Service) GetPaymentsByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	return s.payments.GetByClient(ctx, clientID)
}

func (s *Service) GetAllPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.GetAll(ctx)
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func methodAccepted(cfg domain.SystemConfig, method domain.PaymentMethod) bool {
	switch method {
	case domain.MethodCreditCard, domain.MethodDebitCard:
		return cfg.AcceptCards
	case domain.MethodBankTransfer:
		return cfg.AcceptBankTransfer
	case domain.MethodCash:
		return cfg.AcceptCash
	}
	return true
}
