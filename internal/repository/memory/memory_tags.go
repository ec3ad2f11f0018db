package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"salintempel/model"
)

type TagRepo struct {
	mut  sync.RWMutex
	tags []model.Tag
	seen map[string]bool
}

func NewTagRepo() *TagRepo {
	return &TagRepo{seen: make(map[string]bool)}
}

func (r *TagRepo) All(_ context.Context) ([]model.Tag, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	out := make([]model.Tag, len(r.tags))
	copy(out, r.tags)
	return out, nil
}

func (r *TagRepo) Names(_ context.Context) ([]string, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	names := make([]string, 0, len(r.tags))
	for _, t := range r.tags {
		names = append(names, t.Name)
	}
	return names, nil
}

func (r *TagRepo) InsertMany(_ context.Context, names []string) error {
	r.mut.Lock()
	defer r.mut.Unlock()
	for _, name := range names {
		if r.seen[name] {
			continue
		}
		r.seen[name] = true
		r.tags = append(r.tags, model.Tag{ID: bson.NewObjectID(), Name: name})
	}
	return nil
}
