package router

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mealplanner/internal/model"
)

// In-memory stand-ins for the GORM repositories. They follow the same error
// contract: gorm.ErrRecordNotFound for misses, gorm.ErrDuplicatedKey for unique violations.

type memUserRepo struct {
	mu    sync.Mutex
	users []model.User
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) find(match func(model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.ID == id })
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Email == email })
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Username == username })
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.User(nil), r.users...), nil
}

type memFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[uuid.UUID]model.Favorite
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{favorites: make(map[uuid.UUID]model.Favorite)}
}

func (r *memFavoriteRepo) Create(_ context.Context, f *model.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.CreatedAt = time.Now()
	r.favorites[f.ID] = *f
	return nil
}

func (r *memFavoriteRepo) Update(_ context.Context, f *model.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favorites[f.ID] = *f
	return nil
}

func (r *memFavoriteRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*model.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.favorites[id]
	if !ok || f.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &f, nil
}

func (r *memFavoriteRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Favorite{}
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memFavoriteRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.favorites[id]
	if !ok || f.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.favorites, id)
	return nil
}

type memMealPlanRepo struct {
	mu    sync.Mutex
	plans map[uuid.UUID]model.MealPlan
}

func newMemMealPlanRepo() *memMealPlanRepo {
	return &memMealPlanRepo{plans: make(map[uuid.UUID]model.MealPlan)}
}

func (r *memMealPlanRepo) Create(_ context.Context, p *model.MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.CreatedAt = time.Now()
	r.plans[p.ID] = *p
	return nil
}

func (r *memMealPlanRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.MealPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.MealPlan{}
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memMealPlanRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok || p.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.plans, id)
	return nil
}

// memTokenStore is an in-process deny-list.
type memTokenStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{revoked: make(map[string]time.Time)}
}

func (s *memTokenStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (s *memTokenStore) IsRevoked(_ context.Context, tokenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[tokenID]
	return ok && time.Now().Before(until)
}
