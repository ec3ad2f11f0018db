// Package memory holds in-memory implementations of the repository
// interfaces. They back the test suites so the handlers and services can be
// exercised without a running MongoDB.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"salintempel/internal/pagination"
	"salintempel/internal/repository"
	"salintempel/model"
)

type SalinTempelRepo struct {
	mut   sync.RWMutex
	order []bson.ObjectID // insertion order
	byID  map[bson.ObjectID]model.SalinTempel
}

func NewSalinTempelRepo() *SalinTempelRepo {
	return &SalinTempelRepo{byID: make(map[bson.ObjectID]model.SalinTempel)}
}

func (r *SalinTempelRepo) Insert(_ context.Context, st *model.SalinTempel) error {
	r.mut.Lock()
	defer r.mut.Unlock()
	if st.ID.IsZero() {
		st.ID = bson.NewObjectID()
	}
	r.byID[st.ID] = *st
	r.order = append(r.order, st.ID)
	return nil
}

func (r *SalinTempelRepo) FindByID(_ context.Context, id string) (*model.SalinTempel, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	st, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *SalinTempelRepo) List(_ context.Context, q pagination.ListQuery) ([]model.SalinTempel, int64, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()

	all := r.snapshot()
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.TotalLikes != b.TotalLikes {
			if q.Type == pagination.TypePopular {
				return a.TotalLikes > b.TotalLikes
			}
			return a.TotalLikes < b.TotalLikes
		}
		if q.Sort == pagination.SortNew {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	start, end := q.Window(len(all))
	return all[start:end], int64(len(all)), nil
}

func (r *SalinTempelRepo) Update(_ context.Context, id string, st model.SalinTempel) (*model.SalinTempel, error) {
	r.mut.Lock()
	defer r.mut.Unlock()
	cur, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	cur.Title = st.Title
	cur.Content = st.Content
	cur.Author = st.Author
	cur.IsNSFW = st.IsNSFW
	cur.Tags = st.Tags
	cur.UpdatedAt = st.UpdatedAt
	r.byID[cur.ID] = cur
	return &cur, nil
}

func (r *SalinTempelRepo) Delete(_ context.Context, id string) (*model.SalinTempel, error) {
	r.mut.Lock()
	defer r.mut.Unlock()
	st, err := r.lookup(id)
	if errors.Is(err, repository.ErrInvalidID) {
		return nil, err
	}
	if err != nil {
		return nil, nil
	}
	delete(r.byID, st.ID)
	for i, oid := range r.order {
		if oid == st.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return &st, nil
}

func (r *SalinTempelRepo) ToggleLike(_ context.Context, id, userID string) (*model.SalinTempel, error) {
	r.mut.Lock()
	defer r.mut.Unlock()
	st, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	if st.IsLikedBy(userID) {
		kept := make([]string, 0, len(st.LikesBy))
		for _, u := range st.LikesBy {
			if u != userID {
				kept = append(kept, u)
			}
		}
		st.LikesBy = kept
		st.TotalLikes--
	} else {
		st.LikesBy = append(st.LikesBy, userID)
		st.TotalLikes++
	}
	r.byID[st.ID] = st
	return &st, nil
}

func (r *SalinTempelRepo) FindByLikedUser(_ context.Context, userID string) ([]model.SalinTempel, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	items := make([]model.SalinTempel, 0)
	for _, st := range r.snapshot() {
		if st.IsLikedBy(userID) {
			items = append(items, st)
		}
	}
	return items, nil
}

func (r *SalinTempelRepo) FindByAuthor(_ context.Context, author string) ([]model.SalinTempel, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	items := make([]model.SalinTempel, 0)
	for _, st := range r.snapshot() {
		if st.Author == author {
			items = append(items, st)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *SalinTempelRepo) Random(_ context.Context) (*model.SalinTempel, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	if len(r.order) == 0 {
		return nil, nil
	}
	// first insert is random enough for tests
	st := r.byID[r.order[0]]
	return &st, nil
}

func (r *SalinTempelRepo) lookup(id string) (model.SalinTempel, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.SalinTempel{}, repository.ErrInvalidID
	}
	st, ok := r.byID[oid]
	if !ok {
		return model.SalinTempel{}, repository.ErrNotFound
	}
	return st, nil
}

func (r *SalinTempelRepo) snapshot() []model.SalinTempel {
	all := make([]model.SalinTempel, 0, len(r.order))
	for _, oid := range r.order {
		all = append(all, r.byID[oid])
	}
	return all
}
