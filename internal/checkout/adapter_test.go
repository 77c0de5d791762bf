package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nynf/internal/errors"
	"nynf/internal/txn"
)

// MockProvider is a scripted implementation of the Provider interface
type MockProvider struct {
	orderID        string
	createErr      error
	result         PaymentResult
	awaitErr       error
	createdOrders  []OrderRequest
	awaitedOrders  []string
	blockUntilCtx  bool
}

func (m *MockProvider) CreateOrder(ctx context.Context, req OrderRequest) (string, error) {
	m.createdOrders = append(m.createdOrders, req)
	if m.createErr != nil {
		return "", m.createErr
	}
	return m.orderID, nil
}

func (m *MockProvider) AwaitPayment(ctx context.Context, orderID string) (PaymentResult, error) {
	m.awaitedOrders = append(m.awaitedOrders, orderID)
	if m.blockUntilCtx {
		<-ctx.Done()
		return PaymentResult{}, ctx.Err()
	}
	if m.awaitErr != nil {
		return PaymentResult{}, m.awaitErr
	}
	return m.result, nil
}

// MockLog records appends in memory
type MockLog struct {
	records   []txn.Record
	appendErr error
}

func (m *MockLog) Append(record txn.Record) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *MockLog) All() []txn.Record {
	return m.records
}

func donationRequest(amount int64) SessionRequest {
	return SessionRequest{
		Amount:  decimal.NewFromInt(amount),
		Purpose: "Donation",
		Identity: txn.Identity{
			Name:  "Asha",
			Email: "a@x.com",
			Phone: "9999999999",
		},
	}
}

func TestOpenRejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []int64{0, -5} {
		provider := &MockProvider{}
		log := &MockLog{}
		adapter := NewSessionAdapter(provider, log, "INR", time.Minute)

		_, err := adapter.Open(context.Background(), donationRequest(amount), nil)

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation), "expected validation error, got %v", err)
		assert.Empty(t, provider.createdOrders, "no session may be opened for amount %d", amount)
		assert.Empty(t, log.records)
	}
}

func TestOpenSuccessStoresRecordAndInvokesCallback(t *testing.T) {
	provider := &MockProvider{
		orderID: "order_1",
		result: PaymentResult{
			Outcome:   OutcomeSuccess,
			PaymentID: "pay_1",
			OrderID:   "order_1",
			Signature: "sig_1",
		},
	}
	log := &MockLog{}
	adapter := NewSessionAdapter(provider, log, "INR", time.Minute)

	var callbackRecord txn.Record
	record, err := adapter.Open(context.Background(), donationRequest(500), func(r txn.Record) {
		callbackRecord = r
	})

	require.NoError(t, err)
	require.Len(t, log.records, 1)
	assert.Equal(t, record, log.records[0])
	assert.Equal(t, record, callbackRecord)

	assert.Equal(t, txn.StatusSuccess, record.Status)
	assert.Equal(t, "pay_1", record.PaymentID)
	assert.Equal(t, "order_1", record.OrderID)
	assert.Equal(t, "sig_1", record.Signature)
	assert.Equal(t, "Asha", record.Name)
	assert.NotEmpty(t, record.ID)

	// provider is handed minor units
	require.Len(t, provider.createdOrders, 1)
	assert.Equal(t, int64(50000), provider.createdOrders[0].AmountMinorUnits)
	assert.Equal(t, "INR", provider.createdOrders[0].Currency)
}

func TestOpenAnonymousRedactsIdentity(t *testing.T) {
	provider := &MockProvider{
		orderID: "order_1",
		result:  PaymentResult{Outcome: OutcomeSuccess, PaymentID: "pay_1", OrderID: "order_1"},
	}
	log := &MockLog{}
	adapter := NewSessionAdapter(provider, log, "INR", time.Minute)

	req := donationRequest(500)
	req.Anonymous = true
	req.Identity.Address = "12 Seva Marg"
	req.Identity.PAN = "ABCDE1234F"

	record, err := adapter.Open(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, txn.PlaceholderAnonymousName, record.Name)
	assert.Equal(t, txn.PlaceholderAnonymousEmail, record.Email)
	assert.Equal(t, txn.PlaceholderNA, record.Phone)
	assert.Equal(t, txn.PlaceholderNA, record.Address)
	assert.Equal(t, txn.PlaceholderNA, record.PAN)

	// redaction applies to the provider prefill too
	require.Len(t, provider.createdOrders, 1)
	assert.Equal(t, txn.PlaceholderAnonymousName, provider.createdOrders[0].Prefill.Name)
}

func TestOpenFailureStoresFailedRecordWithoutCallback(t *testing.T) {
	provider := &MockProvider{
		orderID: "order_1",
		result: PaymentResult{
			Outcome:          OutcomeFailed,
			PaymentID:        "pay_1",
			OrderID:          "order_1",
			ErrorDescription: "card declined",
		},
	}
	log := &MockLog{}
	adapter := NewSessionAdapter(provider, log, "INR", time.Minute)

	callbackInvoked := false
	_, err := adapter.Open(context.Background(), donationRequest(500), func(txn.Record) {
		callbackInvoked = true
	})

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeProvider), "expected provider error, got %v", err)
	assert.False(t, callbackInvoked, "failed session must not generate documents")

	require.Len(t, log.records, 1)
	assert.Equal(t, txn.StatusFailed, log.records[0].Status)
	assert.Equal(t, "card declined", log.records[0].Error)
}

func TestOpenCancelledStoresNothing(t *testing.T) {
	provider := &MockProvider{
		orderID: "order_1",
		result:  PaymentResult{Outcome: OutcomeCancelled},
	}
	log := &MockLog{}
	adapter := NewSessionAdapter(provider, log, "INR", time.Minute)

	_, err := adapter.Open(context.Background(), donationRequest(500), nil)

	require.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, log.records, "cancelled session must not store a record")
}

func TestOpenTimeoutTreatedAsCancelled(t *testing.T) {
	provider := &MockProvider{orderID: "order_1", blockUntilCtx: true}
	log := &MockLog{}
	adapter := NewSessionAdapter(provider, log, "INR", 50*time.Millisecond)

	_, err := adapter.Open(context.Background(), donationRequest(500), nil)

	require.ErrorIs(t, err, ErrCancelled)
	assert.Empty(t, log.records)
}

func TestOpenStorageFailureIsSilent(t *testing.T) {
	provider := &MockProvider{
		orderID: "order_1",
		result:  PaymentResult{Outcome: OutcomeSuccess, PaymentID: "pay_1", OrderID: "order_1"},
	}
	log := &MockLog{appendErr: errors.Storage("disk full", nil)}
	adapter := NewSessionAdapter(provider, log, "INR", time.Minute)

	record, err := adapter.Open(context.Background(), donationRequest(500), nil)

	// best-effort cache: the session still succeeds
	require.NoError(t, err)
	assert.Equal(t, txn.StatusSuccess, record.Status)
}
