package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
)

// Store is an in-memory implementation of every persistence port used by use case tests.
// Conditional writes hold the same guarantees as the SQL repositories.
type Store struct {
	mu        sync.Mutex
	nextID    uint64
	txs       map[uint64]*entity.Transaction
	rates     map[string]*entity.ExchangeRate
	receivers map[uint64]*entity.Receiver
	users     map[uint64]*entity.User
	senders   map[uint64]*entity.SenderProfile
	volumes   map[uint64]map[string]*entity.VolumeRecord
	audit     []entity.AuditLogEntry
	casHits   int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		txs:       map[uint64]*entity.Transaction{},
		rates:     map[string]*entity.ExchangeRate{},
		receivers: map[uint64]*entity.Receiver{},
		users:     map[uint64]*entity.User{},
		senders:   map[uint64]*entity.SenderProfile{},
		volumes:   map[uint64]map[string]*entity.VolumeRecord{},
	}
}

var _ persistence.UnitOfWork = (*Store)(nil)

func (s *Store) id() uint64 {
	s.nextID++
	return s.nextID
}

// Begin returns ctx unchanged; the store applies writes immediately
func (s *Store) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }

// Commit is a no-op
func (s *Store) Commit(context.Context) error { return nil }

// Rollback is a no-op
func (s *Store) Rollback(context.Context) error { return nil }

// GetTransactionRepository returns the store's transaction view
func (s *Store) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return (*txRepo)(s)
}

// GetReceiverRepository returns the store's receiver view
func (s *Store) GetReceiverRepository(context.Context) persistence.ReceiverRepository {
	return (*receiverRepo)(s)
}

// GetUserRepository returns the store's user view
func (s *Store) GetUserRepository(context.Context) persistence.UserRepository {
	return (*userRepo)(s)
}

// GetAuditLogRepository returns the store's audit view
func (s *Store) GetAuditLogRepository(context.Context) persistence.AuditLogRepository {
	return (*auditRepo)(s)
}

// Rates returns the store's rate view
func (s *Store) Rates() persistence.RateRepository {
	return (*rateRepo)(s)
}

// SeedRate inserts or replaces an exchange rate row
func (s *Store) SeedRate(pair string, base, markup string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[pair] = &entity.ExchangeRate{
		ID:            s.id(),
		Pair:          pair,
		BaseRate:      decimal.RequireFromString(base),
		MarkupPercent: decimal.RequireFromString(markup),
	}
}

// PutTransaction inserts a transaction as-is and returns its ID
func (s *Store) PutTransaction(tx *entity.Transaction) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.ID == 0 {
		tx.ID = s.id()
	}
	cp := *tx
	s.txs[tx.ID] = &cp
	return tx.ID
}

// Transaction returns a copy of the stored transaction or nil
func (s *Store) Transaction(id uint64) *entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[id]
	if !ok {
		return nil
	}
	cp := *tx
	return &cp
}

// PutReceiver inserts a receiver and returns its ID
func (s *Store) PutReceiver(r *entity.Receiver) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		r.ID = s.id()
	}
	cp := *r
	s.receivers[r.ID] = &cp
	return r.ID
}

// Receiver returns a copy of the stored receiver or nil
func (s *Store) Receiver(id uint64) *entity.Receiver {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.receivers[id]
	if !ok {
		return nil
	}
	cp := *r
	return &cp
}

// PutUser inserts a user with a sender profile
func (s *Store) PutUser(u *entity.User, firstName string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	cp := *u
	s.users[u.ID] = &cp
	s.senders[u.ID] = &entity.SenderProfile{ID: s.id(), UserID: u.ID, FirstName: firstName}
	return u.ID
}

// HasUser reports whether the user row exists
func (s *Store) HasUser(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok
}

// VolumeCount returns the number of volume records of a user
func (s *Store) VolumeCount(userID uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.volumes[userID])
}

// CASHits counts CompareAndSetStatus calls that matched their guard
func (s *Store) CASHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.casHits
}

// AuditEntries returns a copy of the audit log
func (s *Store) AuditEntries() []entity.AuditLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.AuditLogEntry(nil), s.audit...)
}

type txRepo Store

func (r *txRepo) Create(_ context.Context, tx *entity.Transaction) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.txs {
		if existing.ReferenceCode == tx.ReferenceCode {
			return errs.ErrDuplicate
		}
	}
	tx.ID = s.id()
	cp := *tx
	s.txs[tx.ID] = &cp
	return nil
}

func (r *txRepo) GetByID(_ context.Context, id uint64) (*entity.Transaction, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *txRepo) GetByReference(_ context.Context, reference string) (*entity.Transaction, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.txs {
		if tx.ReferenceCode == reference {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, errs.ErrTransactionNotFound
}

func (r *txRepo) List(_ context.Context, f entity.TransactionFilter) ([]*entity.Transaction, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Transaction
	for _, tx := range s.txs {
		if f.SenderID != 0 && tx.SenderID != f.SenderID {
			continue
		}
		if f.ReceiverID != 0 && tx.ReceiverID != f.ReceiverID {
			continue
		}
		if len(f.Statuses) > 0 && !tx.Status.In(f.Statuses...) {
			continue
		}
		if tx.Status.In(f.ExcludeStatus...) {
			continue
		}
		if f.ReceiverHasWallet != nil {
			rc, ok := s.receivers[tx.ReceiverID]
			if !ok || rc.HasWallet() != *f.ReceiverHasWallet {
				continue
			}
		}
		if !f.UpdatedBefore.IsZero() && !tx.UpdatedAt.Before(f.UpdatedBefore) {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *txRepo) CompareAndSetStatus(_ context.Context, id uint64, c entity.StatusChange) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[id]
	if !ok || !tx.Status.In(c.From...) {
		return false, nil
	}
	tx.Status = c.To
	if c.GatewayTransactionID != nil {
		tx.GatewayTransactionID = *c.GatewayTransactionID
	}
	if c.ConfirmedAmount != nil {
		tx.ConfirmedAmount = *c.ConfirmedAmount
	}
	if c.FailureReason != nil {
		tx.FailureReason = *c.FailureReason
	}
	if c.GasTxHash != nil {
		tx.GasTxHash = *c.GasTxHash
	}
	if c.TokenTxHash != nil {
		tx.TokenTxHash = *c.TokenTxHash
	}
	if c.GasFeePaid != nil {
		tx.GasFeePaid = *c.GasFeePaid
	}
	s.casHits++
	return true, nil
}

func (r *txRepo) ForceStatus(_ context.Context, id uint64, status entity.TransactionStatus, reason string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[id]
	if !ok {
		return errs.ErrTransactionNotFound
	}
	tx.Status = status
	tx.FailureReason = reason
	return nil
}

func (r *txRepo) ReassignReceiver(_ context.Context, id, from, to uint64, claimedAt time.Time) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[id]
	if !ok || tx.ReceiverID != from || tx.Status != entity.StatusPayinSuccess || tx.ClaimedAt != nil {
		return false, nil
	}
	tx.ReceiverID = to
	tx.ClaimedAt = &claimedAt
	return true, nil
}

func (r *txRepo) participant(tx *entity.Transaction, senderID, receiverID uint64) bool {
	return (senderID != 0 && tx.SenderID == senderID) || (receiverID != 0 && tx.ReceiverID == receiverID)
}

func (r *txRepo) ListByParticipant(_ context.Context, senderID, receiverID uint64) ([]*entity.Transaction, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Transaction
	for _, tx := range s.txs {
		if r.participant(tx, senderID, receiverID) {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *txRepo) DeleteByParticipant(_ context.Context, senderID, receiverID uint64, statuses ...entity.TransactionStatus) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, tx := range s.txs {
		if len(statuses) > 0 && !tx.Status.In(statuses...) {
			continue
		}
		if r.participant(tx, senderID, receiverID) {
			delete(s.txs, id)
			n++
		}
	}
	return n, nil
}

func (r *txRepo) CountByStatus(context.Context) (map[entity.TransactionStatus]int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[entity.TransactionStatus]int64{}
	for _, tx := range s.txs {
		out[tx.Status]++
	}
	return out, nil
}

func (r *txRepo) Totals(_ context.Context, statuses ...entity.TransactionStatus) (*entity.TransactionTotals, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &entity.TransactionTotals{}
	for _, tx := range s.txs {
		if !tx.Status.In(statuses...) {
			continue
		}
		t.Count++
		t.FiatAmountIn = t.FiatAmountIn.Add(tx.FiatAmountIn)
		t.TotalToPay = t.TotalToPay.Add(tx.TotalToPay)
		t.StablecoinAmount = t.StablecoinAmount.Add(tx.StablecoinAmount)
		t.ExpectedFiatOut = t.ExpectedFiatOut.Add(tx.ExpectedFiatOut)
		t.GatewayFee = t.GatewayFee.Add(tx.GatewayFee)
		t.PartnerFee = t.PartnerFee.Add(tx.PartnerFee)
		t.PlatformFee = t.PlatformFee.Add(tx.PlatformFee)
		t.PlatformMargin = t.PlatformMargin.Add(tx.PlatformMargin)
		t.GasFeePaid = t.GasFeePaid.Add(tx.GasFeePaid)
	}
	return t, nil
}

type rateRepo Store

func (r *rateRepo) GetByPair(_ context.Context, pair string) (*entity.ExchangeRate, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	rate, ok := s.rates[pair]
	if !ok {
		return nil, errs.ErrRateNotFound
	}
	cp := *rate
	return &cp, nil
}

func (r *rateRepo) List(context.Context) ([]*entity.ExchangeRate, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.ExchangeRate
	for _, rate := range s.rates {
		cp := *rate
		out = append(out, &cp)
	}
	return out, nil
}

func (r *rateRepo) Update(_ context.Context, rate *entity.ExchangeRate) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rates[rate.Pair]; !ok {
		return errs.ErrRateNotFound
	}
	cp := *rate
	s.rates[rate.Pair] = &cp
	return nil
}

type receiverRepo Store

func (r *receiverRepo) Create(_ context.Context, rc *entity.Receiver) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.receivers {
		if existing.Handle == rc.Handle {
			return errs.ErrDuplicate
		}
	}
	rc.ID = s.id()
	cp := *rc
	s.receivers[rc.ID] = &cp
	return nil
}

func (r *receiverRepo) GetByID(_ context.Context, id uint64) (*entity.Receiver, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	rc, ok := s.receivers[id]
	if !ok {
		return nil, errs.ErrReceiverNotFound
	}
	cp := *rc
	return &cp, nil
}

func (r *receiverRepo) find(match func(*entity.Receiver) bool) (*entity.Receiver, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rc := range s.receivers {
		if match(rc) {
			cp := *rc
			return &cp, nil
		}
	}
	return nil, errs.ErrReceiverNotFound
}

func (r *receiverRepo) GetByHandle(_ context.Context, handle string) (*entity.Receiver, error) {
	return r.find(func(rc *entity.Receiver) bool { return rc.Handle == handle })
}

func (r *receiverRepo) GetByUserID(_ context.Context, userID uint64) (*entity.Receiver, error) {
	return r.find(func(rc *entity.Receiver) bool { return rc.UserID != nil && *rc.UserID == userID })
}

func (r *receiverRepo) Update(_ context.Context, rc *entity.Receiver) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.receivers[rc.ID]; !ok {
		return errs.ErrReceiverNotFound
	}
	cp := *rc
	s.receivers[rc.ID] = &cp
	return nil
}

func (r *receiverRepo) DeleteByUserID(_ context.Context, userID uint64) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, rc := range s.receivers {
		if rc.UserID != nil && *rc.UserID == userID {
			delete(s.receivers, id)
			n++
		}
	}
	return n, nil
}

type userRepo Store

func (r *userRepo) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (r *userRepo) Delete(_ context.Context, id uint64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return errs.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (r *userRepo) GetSenderProfile(_ context.Context, userID uint64) (*entity.SenderProfile, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.senders[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *userRepo) SaveSenderProfile(_ context.Context, p *entity.SenderProfile) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.senders[p.UserID] = &cp
	return nil
}

func (r *userRepo) DeleteSenderProfile(_ context.Context, userID uint64) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.senders[userID]; !ok {
		return 0, nil
	}
	delete(s.senders, userID)
	return 1, nil
}

func (r *userRepo) AddVolume(_ context.Context, userID uint64, period string, amount decimal.Decimal) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.volumes[userID] == nil {
		s.volumes[userID] = map[string]*entity.VolumeRecord{}
	}
	rec, ok := s.volumes[userID][period]
	if !ok {
		rec = &entity.VolumeRecord{ID: s.id(), UserID: userID, Period: period}
		s.volumes[userID][period] = rec
	}
	rec.VolumeXOF = rec.VolumeXOF.Add(amount)
	rec.Count++
	return nil
}

func (r *userRepo) DeleteVolumeRecords(_ context.Context, userID uint64) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.volumes[userID]))
	delete(s.volumes, userID)
	return n, nil
}

type auditRepo Store

func (r *auditRepo) Append(_ context.Context, e *entity.AuditLogEntry) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.id()
	s.audit = append(s.audit, *e)
	return nil
}

func (r *auditRepo) List(_ context.Context, page, pageSize int) ([]entity.AuditLogEntry, int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	total := int64(len(s.audit))
	// newest first
	ordered := make([]entity.AuditLogEntry, 0, len(s.audit))
	for i := len(s.audit) - 1; i >= 0; i-- {
		ordered = append(ordered, s.audit[i])
	}
	start := (page - 1) * pageSize
	if start >= len(ordered) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[start:end], total, nil
}
