package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// In-memory fakes shared by the service tests.

type memUserRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[string]*domain.User
	err    error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = "u" + strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id, name, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Name = name
	u.Email = email
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) UpdateFlags(_ context.Context, id string, update ports.UserFlagsUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.IsVerified != nil {
		u.IsVerified = *update.IsVerified
	}
	if update.IsSuspended != nil {
		u.IsSuspended = *update.IsSuspended
	}
	if update.IsActive != nil {
		u.IsActive = *update.IsActive
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, 0, r.err
	}
	all := make([]*domain.User, 0, len(r.byID))
	for i := 1; i <= r.nextID; i++ {
		if u, ok := r.byID["u"+strconv.Itoa(i)]; ok {
			clone := *u
			all = append(all, &clone)
		}
	}
	total := int64(len(all))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

type memSessionStore struct {
	mu        sync.Mutex
	sessions  map[string]*domain.Session
	deleted   []string
	deleteErr error
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *memSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *memSessionStore) Put(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	s.sessions[session.Token] = &clone
	return nil
}

func (s *memSessionStore) SetUser(_ context.Context, token string, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.User = user
	return nil
}

func (s *memSessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, token)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, token)
	return nil
}

type recorderStub struct {
	mu     sync.Mutex
	events []ports.ActivityInput
}

func (r *recorderStub) Record(event ports.ActivityInput) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorderStub) recorded() []ports.ActivityInput {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.ActivityInput, len(r.events))
	copy(out, r.events)
	return out
}

type memOrderRepo struct {
	orders    []*domain.Order
	insertErr error
}

func (r *memOrderRepo) Insert(_ context.Context, order *domain.Order) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *order
	r.orders = append(r.orders, &clone)
	return nil
}

func (r *memOrderRepo) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			clone := *r.orders[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

type planRepoStub struct {
	plans   []*domain.Plan
	listErr error
	stored  []*domain.Plan
}

func (r *planRepoStub) ListByKind(_ context.Context, kind domain.PlanKind) ([]*domain.Plan, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Plan
	for _, p := range r.plans {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *planRepoStub) Insert(_ context.Context, plan *domain.Plan) error {
	clone := *plan
	r.stored = append(r.stored, &clone)
	return nil
}

func (r *planRepoStub) Update(_ context.Context, id string, plan *domain.Plan) error {
	for i, p := range r.stored {
		if p.ID == id {
			clone := *plan
			r.stored[i] = &clone
			return nil
		}
	}
	return domain.ErrPlanNotFound
}

func (r *planRepoStub) Delete(_ context.Context, id string) error {
	for i, p := range r.stored {
		if p.ID == id {
			r.stored = append(r.stored[:i], r.stored[i+1:]...)
			return nil
		}
	}
	return domain.ErrPlanNotFound
}

type memTeamRepo struct {
	members []*domain.TeamMember
}

func (r *memTeamRepo) Insert(_ context.Context, member *domain.TeamMember) error {
	clone := *member
	r.members = append(r.members, &clone)
	return nil
}

func (r *memTeamRepo) FindByEmail(_ context.Context, ownerID, email string) (*domain.TeamMember, error) {
	for _, m := range r.members {
		if m.OwnerID == ownerID && m.Email == email {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *memTeamRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.TeamMember, error) {
	var out []*domain.TeamMember
	for _, m := range r.members {
		if m.OwnerID == ownerID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memTeamRepo) Delete(_ context.Context, ownerID, id string) error {
	for i, m := range r.members {
		if m.OwnerID == ownerID && m.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return domain.ErrMemberNotFound
}

type chatStoreStub struct {
	cfg     *domain.ChatWidgetConfig
	loadErr error
}

func (s *chatStoreStub) Load(_ context.Context) (*domain.ChatWidgetConfig, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.cfg == nil {
		return nil, nil
	}
	clone := *s.cfg
	return &clone, nil
}

func (s *chatStoreStub) Save(_ context.Context, cfg *domain.ChatWidgetConfig) error {
	clone := *cfg
	s.cfg = &clone
	return nil
}

type activityRepoStub struct {
	events    []*domain.ActivityEvent
	insertErr error
}

func (r *activityRepoStub) Insert(_ context.Context, event *domain.ActivityEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *event
	r.events = append(r.events, &clone)
	return nil
}

func (r *activityRepoStub) ListRecent(_ context.Context, limit int) ([]*domain.ActivityEvent, error) {
	var out []*domain.ActivityEvent
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		clone := *r.events[i]
		out = append(out, &clone)
	}
	return out, nil
}

type dedupStub struct {
	duplicate bool
	checkErr  error
	marked    int
}

func (d *dedupStub) IsDuplicate(_ context.Context, _, _ string, _ time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.duplicate, nil
}

func (d *dedupStub) Mark(_ context.Context, _, _ string, _ time.Time) error {
	d.marked++
	return nil
}

func containsAction(events []ports.ActivityInput, action string) bool {
	for _, e := range events {
		if e.Action == action {
			return true
		}
	}
	return false
}
