package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/agalyaece/e-commerce-website/internal/apperrors"
	"github.com/agalyaece/e-commerce-website/internal/cart"
	"github.com/agalyaece/e-commerce-website/internal/models"
	"github.com/agalyaece/e-commerce-website/internal/session"
)

// memSessionStore mimics the Redis store: sessions round-trip through
// JSON so tests see the same copy semantics production does.
type memSessionStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{data: make(map[string][]byte)}
}

func (m *memSessionStore) Get(_ context.Context, id string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.data[id]
	if !ok {
		return &session.Session{ID: id, Cart: cart.New()}, nil
	}

	var sess session.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	if sess.Cart == nil {
		sess.Cart = cart.New()
	}
	return &sess, nil
}

func (m *memSessionStore) Save(_ context.Context, sess *session.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[sess.ID] = raw
	return nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}

type stubCatalog struct {
	products map[string]*models.Product
}

func (s *stubCatalog) GetProduct(_ context.Context, id string) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrNotFound
}

type stubOrderRepo struct {
	saveErr error
	saved   []*models.OrderRecord
}

func (s *stubOrderRepo) Save(_ context.Context, order *models.OrderRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, order)
	return nil
}

func (s *stubOrderRepo) GetByInvoice(_ context.Context, invoice string) (*models.OrderRecord, error) {
	for _, o := range s.saved {
		if o.Invoice == invoice {
			return o, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubOrderRepo) ListByCustomer(_ context.Context, customerID string, _, _ int) ([]*models.OrderRecord, int, error) {
	out := make([]*models.OrderRecord, 0)
	for _, o := range s.saved {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, len(out), nil
}

type stubInvoices struct {
	token string
}

func (s *stubInvoices) NewToken() string { return s.token }

type stubPublisher struct {
	created []*models.OrderRecord
	failed  []string
}

func (s *stubPublisher) PublishOrderCreated(_ context.Context, order *models.OrderRecord) error {
	s.created = append(s.created, order)
	return nil
}

func (s *stubPublisher) PublishCheckoutFailed(_ context.Context, customerID, _ string) error {
	s.failed = append(s.failed, customerID)
	return nil
}

func (s *stubPublisher) Close() error { return nil }
