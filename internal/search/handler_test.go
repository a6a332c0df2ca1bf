package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/internal/repository/repotest"
)

type fixture struct {
	blogs, videos, qna *repository.MemoryCollection
	g                  *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		blogs:  repository.NewMemoryCollection("blogs"),
		videos: repository.NewMemoryCollection("video"),
		qna:    repository.NewMemoryCollection("qna"),
	}
	ctx := context.Background()
	insert := func(c *repository.MemoryCollection, doc bson.M) {
		_, err := c.InsertOne(ctx, doc)
		require.NoError(t, err)
	}
	insert(f.blogs, bson.M{"title": "Daily routine", "content": "...", "tags": bson.A{"সালাত", "habits"}})
	insert(f.blogs, bson.M{"title": "Cooking", "content": "Rice and lentils"})
	insert(f.videos, bson.M{"title": "Learn", "description": "Steps", "tags": bson.M{"en": "x", "ar": "الصلاة"}})
	insert(f.videos, bson.M{"title": "PRAYER times", "description": "", "tags": bson.A{}})
	insert(f.qna, bson.M{"question": "How long is the fast?", "answer": "From dawn to sunset during রোজা"})
	insert(f.qna, bson.M{"question": "Pending (question)", "answer": nil})

	gin.SetMode(gin.TestMode)
	f.g = gin.New()
	RegisterSearchRoutes(f.g, NewService(f.blogs, f.videos, f.qna, DefaultLexicon()))
	return f
}

func (f *fixture) search(q, typ string) *httptest.ResponseRecorder {
	v := url.Values{}
	v.Set("q", q)
	if typ != "" {
		v.Set("type", typ)
	}
	w := httptest.NewRecorder()
	f.g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?"+v.Encode(), nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Result {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var r Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestSearch_ExpandsSynonymsAcrossLanguages(t *testing.T) {
	f := newFixture(t)
	r := decode(t, f.search("prayer", ""))

	assert.Equal(t, "prayer", r.SearchTerm)
	assert.Contains(t, r.Synonyms, "সালাত")
	assert.Contains(t, r.Synonyms, "الصلاة")
	// blog tagged only with the Bengali term is found
	require.Len(t, r.Results[TypeBlogs], 1)
	assert.Equal(t, "Daily routine", r.Results[TypeBlogs][0]["title"])
	// video matched by Arabic language tag and by case-insensitive title
	assert.Len(t, r.Results[TypeVideos], 2)
	assert.Empty(t, r.Results[TypeQnA])
	assert.Equal(t, 3, r.TotalResults)
}

func TestSearch_TypeFilter(t *testing.T) {
	f := newFixture(t)
	r := decode(t, f.search("  ROZA ", TypeQnA))
	assert.Equal(t, "ROZA", r.SearchTerm)
	require.Len(t, r.Results, 1)
	require.Len(t, r.Results[TypeQnA], 1)
	assert.Equal(t, 1, r.TotalResults)

	w := f.search("x", "podcasts")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"Invalid search type. Must be: blogs, videos, or qna"}`, w.Body.String())
}

func TestSearch_UnknownTermIsLiteralSubstring(t *testing.T) {
	f := newFixture(t)
	r := decode(t, f.search("(question)", ""))
	assert.Empty(t, r.Synonyms)
	assert.Len(t, r.Results[TypeQnA], 1)
	assert.Empty(t, r.Results[TypeBlogs])
	assert.Equal(t, 1, r.TotalResults)
}

func TestSearch_RequiresTerm(t *testing.T) {
	f := newFixture(t)
	w := f.search("   ", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"Search term is required"}`, w.Body.String())
}

func TestSearch_StoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	ok := repository.NewMemoryCollection("blogs")
	RegisterSearchRoutes(g, NewService(ok, repotest.Failing{}, ok, DefaultLexicon()))

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=hadith", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Search failed"}`, w.Body.String())

	// the failing collection is not queried when filtered out
	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=hadith&type=blogs", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestFilter(t *testing.T) {
	f := Filter([]string{"title", "tags.bn"}, []string{"a.b", "সালাত"})
	or := f["$or"].(bson.A)
	require.Len(t, or, 2)
	rx := or[1].(bson.M)["tags.bn"].(primitive.Regex)
	require.Equal(t, `a\.b|সালাত`, rx.Pattern)
	require.Equal(t, "i", rx.Options)
}
