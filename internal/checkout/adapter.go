package checkout

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/shopspring/decimal"

	"nynf/internal/errors"
	"nynf/internal/logging"
	"nynf/internal/store"
	"nynf/internal/txn"
	"nynf/internal/validate"
)

// ErrCancelled reports a session the user aborted or that timed out.
// No transaction record is stored for a cancelled session.
var ErrCancelled = stderrors.New("checkout session cancelled")

// SessionRequest enumerates every field a checkout session recognizes
type SessionRequest struct {
	Amount    decimal.Decimal
	Purpose   string
	Identity  txn.Identity
	Anonymous bool
	Notes     map[string]string
}

// SessionAdapter opens checkout sessions against the external provider and
// turns each resolved session into a stored transaction record.
type SessionAdapter struct {
	provider Provider
	log      store.TransactionLog
	currency string
	timeout  time.Duration
	logger   *logging.Logger
}

// NewSessionAdapter creates a session adapter
func NewSessionAdapter(provider Provider, log store.TransactionLog, currency string, timeout time.Duration) *SessionAdapter {
	return &SessionAdapter{
		provider: provider,
		log:      log,
		currency: currency,
		timeout:  timeout,
		logger:   logging.NewDefaultLogger("checkout"),
	}
}

// Open runs one checkout session end to end. The amount must be strictly
// positive or no session is opened. On success the stored record is passed
// to onSuccess (used to generate documents); on provider failure a failed
// record is stored and a provider error returned; on cancel or timeout
// ErrCancelled is returned and nothing is stored.
func (a *SessionAdapter) Open(ctx context.Context, req SessionRequest, onSuccess func(txn.Record)) (txn.Record, error) {
	if err := validate.Collect(validate.PositiveAmount(req.Amount)); err != nil {
		return txn.Record{}, err
	}

	identity := req.Identity
	if req.Anonymous {
		identity = identity.Redacted()
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	orderReq := OrderRequest{
		AmountMinorUnits: req.Amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency:         a.currency,
		Description:      req.Purpose,
		Prefill: Prefill{
			Name:    identity.Name,
			Email:   identity.Email,
			Contact: identity.Phone,
		},
		Notes: req.Notes,
	}

	orderID, err := a.provider.CreateOrder(ctx, orderReq)
	if err != nil {
		return txn.Record{}, errors.Provider("failed to open checkout session", err)
	}

	result, err := a.provider.AwaitPayment(ctx, orderID)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
			return txn.Record{}, ErrCancelled
		}
		return txn.Record{}, errors.Provider("checkout session did not resolve", err)
	}

	switch result.Outcome {
	case OutcomeSuccess:
		record := a.buildRecord(req, identity, result)
		a.append(record)
		if onSuccess != nil {
			onSuccess(record)
		}
		return record, nil

	case OutcomeFailed:
		record := a.buildRecord(req, identity, result)
		record.Error = result.ErrorDescription
		a.append(record)
		return record, errors.Provider(result.ErrorDescription, nil)

	default:
		return txn.Record{}, ErrCancelled
	}
}

func (a *SessionAdapter) buildRecord(req SessionRequest, identity txn.Identity, result PaymentResult) txn.Record {
	return txn.Record{
		ID:        txn.NewRecordID(),
		PaymentID: result.PaymentID,
		OrderID:   result.OrderID,
		Signature: result.Signature,
		Status:    txn.Status(result.Outcome),
		Date:      time.Now(),
		Amount:    req.Amount,
		Purpose:   req.Purpose,
		Name:      identity.Name,
		Email:     identity.Email,
		Phone:     identity.Phone,
		Address:   identity.Address,
		PAN:       identity.PAN,
	}
}

// append is best-effort: the store is a local cache, not a ledger, so a
// full or unavailable store only logs a warning.
func (a *SessionAdapter) append(record txn.Record) {
	if err := a.log.Append(record); err != nil {
		a.logger.Warn("failed to store transaction %s: %v", record.ID, err)
	}
}
