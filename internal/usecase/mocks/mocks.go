package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/gocredit/internal/usecase"
)

// StubTransactionManager is a func-field implementation of TransactionManager.
// Without BeginFunc it hands out a fresh StubTransaction and remembers it.
type StubTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu           sync.Mutex
	transactions []*StubTransaction
}

func NewStubTransactionManager() *StubTransactionManager {
	return &StubTransactionManager{}
}

func (m *StubTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &StubTransaction{}
	m.transactions = append(m.transactions, tx)
	return tx, nil
}

// Transactions returns the transactions handed out so far.
func (m *StubTransactionManager) Transactions() []*StubTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*StubTransaction(nil), m.transactions...)
}

// StubTransaction is a func-field implementation of Transaction that records
// whether it was committed.
type StubTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed bool
}

func (m *StubTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *StubTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// SequentialIDGenerator returns "id-1", "id-2", ...
type SequentialIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewSequentialIDGenerator() *SequentialIDGenerator {
	return &SequentialIDGenerator{}
}

func (m *SequentialIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// PassthroughRetrier runs the operation exactly once.
type PassthroughRetrier struct {
	Calls int
}

func (r *PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	r.Calls++
	return operation()
}

// StaticPriceOracle serves prices from a map.
type StaticPriceOracle struct {
	Prices map[string]string
	Err    error
}

func (o *StaticPriceOracle) GetTokenPriceBySymbol(ctx context.Context, symbol string) (string, error) {
	if o.Err != nil {
		return "", o.Err
	}
	price, ok := o.Prices[symbol]
	if !ok {
		return "", fmt.Errorf("no price for %s", symbol)
	}
	return price, nil
}

// MemoryIdempotencyStore is an in-memory IdempotencyStore.
type MemoryIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMemoryIdempotencyStore() *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MemoryIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MemoryIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
