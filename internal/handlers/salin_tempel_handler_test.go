package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salintempel/internal/repository/memory"
	"salintempel/internal/routes"
	"salintempel/model"
)

var ctx = context.Background()

// envelope covers all three response shapes for decoding.
type envelope struct {
	Status   string          `json:"status"`
	EndPoint string          `json:"end_point"`
	Method   string          `json:"method"`
	Data     json.RawMessage `json:"data"`
	Message  string          `json:"message"`
	Errors   []string        `json:"errors"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Count    int64           `json:"count"`
}

func newApp() (*fiber.App, *memory.SalinTempelRepo, *memory.TagRepo) {
	app := fiber.New()
	posts := memory.NewSalinTempelRepo()
	tags := memory.NewTagRepo()
	routes.Register(app, routes.Deps{Posts: posts, Tags: tags})
	return app, posts, tags
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func seedPosts(t *testing.T, posts *memory.SalinTempelRepo, n int) []model.SalinTempel {
	t.Helper()
	base := time.Now().UTC()
	out := make([]model.SalinTempel, 0, n)
	for i := 0; i < n; i++ {
		st := &model.SalinTempel{
			Title:     fmt.Sprintf("post %d", i),
			Content:   "content",
			LikesBy:   []string{},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, posts.Insert(ctx, st))
		out = append(out, *st)
	}
	return out
}

func TestListFirstPageOf25(t *testing.T) {
	app, posts, _ := newApp()
	seedPosts(t, posts, 25)

	code, env := doJSON(t, app, http.MethodGet, "/api/salin-tempel?offset=0&limit=10", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "/api/salin-tempel?offset=0&limit=10", env.EndPoint)
	assert.Equal(t, "GET", env.Method)
	assert.Equal(t, int64(25), env.Count)

	var items []model.SalinTempel
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 10)

	require.NotNil(t, env.Next)
	assert.Equal(t, "http://example.com/api/salin-tempel?offset=10&limit=10", *env.Next)
	assert.Nil(t, env.Previous)
}

func TestListDefaultsApply(t *testing.T) {
	app, posts, _ := newApp()
	seedPosts(t, posts, 25)

	code, env := doJSON(t, app, http.MethodGet, "/api/salin-tempel", nil)
	require.Equal(t, http.StatusOK, code)

	var items []model.SalinTempel
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 10, "limit defaults to 10")
	require.NotNil(t, env.Next)
	assert.Equal(t, "http://example.com/api/salin-tempel?offset=10&limit=10", *env.Next)
}

func TestListOffsetBeyondEnd(t *testing.T) {
	app, posts, _ := newApp()
	seedPosts(t, posts, 25)

	code, env := doJSON(t, app, http.MethodGet, "/api/salin-tempel?offset=100&limit=10", nil)
	require.Equal(t, http.StatusOK, code)

	var items []model.SalinTempel
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Empty(t, items)
	assert.Nil(t, env.Next)
	require.NotNil(t, env.Previous, "previous follows the arithmetic rule even on an empty page")
	assert.Equal(t, "http://example.com/api/salin-tempel?offset=90&limit=10", *env.Previous)
}

func TestListPopularOrdersByLikes(t *testing.T) {
	app, posts, _ := newApp()
	base := time.Now().UTC()
	for i, likes := range []int{2, 9, 4, 0, 7} {
		st := &model.SalinTempel{
			Title:      fmt.Sprintf("p%d", i),
			Content:    "c",
			LikesBy:    []string{},
			TotalLikes: likes,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, posts.Insert(ctx, st))
	}

	code, env := doJSON(t, app, http.MethodGet, "/api/salin-tempel?type=popular", nil)
	require.Equal(t, http.StatusOK, code)

	var items []model.SalinTempel
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 5)
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].TotalLikes, items[i].TotalLikes)
	}
}

func TestCreateInsertsMissingTags(t *testing.T) {
	app, _, _ := newApp()

	code, env := doJSON(t, app, http.MethodPost, "/api/salin-tempel", map[string]interface{}{
		"title":   "hello",
		"content": "world",
		"tags":    []string{"x", "y"},
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", env.Status)

	var st model.SalinTempel
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, []string{"x", "y"}, st.Tags)
	assert.Equal(t, 0, st.TotalLikes)
	assert.Equal(t, []string{}, st.LikesBy)

	code, env = doJSON(t, app, http.MethodGet, "/api/tag", nil)
	require.Equal(t, http.StatusOK, code)
	var tags []model.Tag
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	require.Len(t, tags, 2)
	assert.Equal(t, "x", tags[0].Name)
	assert.Equal(t, "y", tags[1].Name)
}

func TestCreateStrictValidation(t *testing.T) {
	t.Setenv("STRICT_VALIDATION", "true")
	app, _, _ := newApp()

	code, env := doJSON(t, app, http.MethodPost, "/api/salin-tempel", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "Failed to create salin tempel.", env.Message)
	assert.Equal(t, []string{"Title is required.", "Content is required."}, env.Errors)
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	app, posts, _ := newApp()
	seeded := seedPosts(t, posts, 1)
	url := "/api/salin-tempel/" + seeded[0].ID.Hex() + "/like/a@x.com"

	code, env := doJSON(t, app, http.MethodPut, url, nil)
	require.Equal(t, http.StatusOK, code)
	var st model.SalinTempel
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, []string{"a@x.com"}, st.LikesBy)
	assert.Equal(t, 1, st.TotalLikes)

	code, env = doJSON(t, app, http.MethodPut, url, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, []string{}, st.LikesBy)
	assert.Equal(t, 0, st.TotalLikes)
}

func TestToggleLikeNotFound(t *testing.T) {
	app, _, _ := newApp()

	code, env := doJSON(t, app, http.MethodPut, "/api/salin-tempel/000000000000000000000000/like/a@x.com", nil)
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "Salin tempel not found.", env.Message)
	assert.Equal(t, "PUT", env.Method)
}

func TestGetByIDNotFound(t *testing.T) {
	app, _, _ := newApp()

	code, env := doJSON(t, app, http.MethodGet, "/api/salin-tempel/000000000000000000000000", nil)
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Salin tempel not found.", env.Message)
}

func TestUpdateOverwritesWithoutCreatingTags(t *testing.T) {
	app, posts, _ := newApp()
	seeded := seedPosts(t, posts, 1)

	code, env := doJSON(t, app, http.MethodPut, "/api/salin-tempel/"+seeded[0].ID.Hex(), map[string]interface{}{
		"title":   "edited",
		"content": "edited content",
		"tags":    []string{"brand-new"},
	})
	require.Equal(t, http.StatusOK, code)

	var st model.SalinTempel
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, "edited", st.Title)
	assert.Equal(t, []string{"brand-new"}, st.Tags)

	// edit never inserts tag records
	code, env = doJSON(t, app, http.MethodGet, "/api/tag", nil)
	require.Equal(t, http.StatusOK, code)
	var tags []model.Tag
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	assert.Empty(t, tags)
}

func TestDeleteMissingAnswersSuccess(t *testing.T) {
	app, _, _ := newApp()

	code, env := doJSON(t, app, http.MethodDelete, "/api/salin-tempel/000000000000000000000000", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "null", string(env.Data))
}

func TestRandomOnEmptyCollection(t *testing.T) {
	app, _, _ := newApp()

	code, env := doJSON(t, app, http.MethodGet, "/api/salin-tempel/random", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "null", string(env.Data))
}

func TestFavoritesAndMine(t *testing.T) {
	app, posts, _ := newApp()
	base := time.Now().UTC()

	mineOld := &model.SalinTempel{Title: "old", Content: "c", Author: "me@x.com", LikesBy: []string{}, CreatedAt: base.Add(-time.Hour)}
	mineNew := &model.SalinTempel{Title: "new", Content: "c", Author: "me@x.com", LikesBy: []string{}, CreatedAt: base}
	other := &model.SalinTempel{Title: "other", Content: "c", Author: "you@x.com", LikesBy: []string{"me@x.com"}, TotalLikes: 1, CreatedAt: base}
	for _, st := range []*model.SalinTempel{mineOld, mineNew, other} {
		require.NoError(t, posts.Insert(ctx, st))
	}

	code, env := doJSON(t, app, http.MethodGet, "/api/salin-tempel/my/me@x.com", nil)
	require.Equal(t, http.StatusOK, code)
	var mine []model.SalinTempel
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 2)
	assert.Equal(t, "new", mine[0].Title)

	code, env = doJSON(t, app, http.MethodGet, "/api/salin-tempel/my-favorite/me@x.com", nil)
	require.Equal(t, http.StatusOK, code)
	var favs []model.SalinTempel
	require.NoError(t, json.Unmarshal(env.Data, &favs))
	require.Len(t, favs, 1)
	assert.Equal(t, "other", favs[0].Title)
}
