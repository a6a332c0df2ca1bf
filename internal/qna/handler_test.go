package qna

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
)

func setup() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterQnARoutes(g, NewService(repository.NewMemoryCollection("qna")))
	return g
}

func send(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func submit(t *testing.T, g *gin.Engine, body string) string {
	t.Helper()
	w := send(g, http.MethodPost, "/api/qna", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, "Question submitted successfully", out["message"])
	return out["insertedId"]
}

func get(t *testing.T, g *gin.Engine, id string) QnA {
	t.Helper()
	w := send(g, http.MethodGet, "/api/qna/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var q QnA
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	return q
}

func TestQnAHandler_SubmitDefaults(t *testing.T) {
	g := setup()
	id := submit(t, g, `{"question":"  What breaks the fast?  "}`)

	q := get(t, g, id)
	assert.Equal(t, "What breaks the fast?", q.Question)
	assert.Nil(t, q.Answer)
	assert.True(t, q.Pending())
	assert.Equal(t, DefaultUserName, q.UserName)
	assert.Nil(t, q.UserEmail)
	assert.Equal(t, "192.0.2.1", q.UserIP)
	assert.Nil(t, q.UpdatedAt)

	// explicit metadata wins
	id = submit(t, g, `{"question":"q2","userName":"Amina","userEmail":"amina@example.org","userIp":"10.0.0.7"}`)
	q = get(t, g, id)
	assert.Equal(t, "Amina", q.UserName)
	require.NotNil(t, q.UserEmail)
	assert.Equal(t, "amina@example.org", *q.UserEmail)
	assert.Equal(t, "10.0.0.7", q.UserIP)
}

func TestQnAHandler_StoresTextVerbatim(t *testing.T) {
	g := setup()
	question := "Is rakat count x<y and y>z for Maghrib? <b>really</b>"
	id := submit(t, g, `{"question":" `+question+` ","userName":"Ali <the student>"}`)

	q := get(t, g, id)
	assert.Equal(t, question, q.Question)
	assert.Equal(t, "Ali <the student>", q.UserName)

	w := send(g, http.MethodPut, "/api/qna/"+id, `{"answer":"Yes when 3<4 & 4>2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	q = get(t, g, id)
	require.NotNil(t, q.Answer)
	assert.Equal(t, "Yes when 3<4 & 4>2", *q.Answer)
}

func TestQnAHandler_QuestionRequired(t *testing.T) {
	g := setup()
	for _, body := range []string{`{}`, `{"question":"   "}`, `{"question":"\t\n"}`} {
		w := send(g, http.MethodPost, "/api/qna", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"error":"Question is required"}`, w.Body.String())
	}
}

func TestQnAHandler_AnswerLifecycle(t *testing.T) {
	g := setup()
	id := submit(t, g, `{"question":"Is wudu needed?"}`)

	w := send(g, http.MethodPut, "/api/qna/"+id, `{"answer":"  "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"Answer is required"}`, w.Body.String())
	require.True(t, get(t, g, id).Pending())

	w = send(g, http.MethodPut, "/api/qna/"+id, `{"answer":" Yes. ","question":"Is wudu required?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Q&A updated successfully"}`, w.Body.String())

	q := get(t, g, id)
	require.False(t, q.Pending())
	require.Equal(t, "Yes.", *q.Answer)
	require.Equal(t, "Is wudu required?", q.Question)
	require.NotNil(t, q.UpdatedAt)

	w = send(g, http.MethodPut, "/api/qna/"+primitive.NewObjectID().Hex(), `{"answer":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Q&A not found"}`, w.Body.String())
}

func TestQnAHandler_ListStatusFilter(t *testing.T) {
	g := setup()
	answered := submit(t, g, `{"question":"one"}`)
	submit(t, g, `{"question":"two"}`)
	w := send(g, http.MethodPut, "/api/qna/"+answered, `{"answer":"done"}`)
	require.Equal(t, http.StatusOK, w.Code)

	count := func(query string) int {
		w := send(g, http.MethodGet, "/api/qna"+query, "")
		require.Equal(t, http.StatusOK, w.Code)
		var list []QnA
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		return len(list)
	}
	require.Equal(t, 2, count(""))
	require.Equal(t, 1, count("?status=pending"))
	require.Equal(t, 1, count("?status=answered"))

	w = send(g, http.MethodGet, "/api/qna?status=bogus", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQnAHandler_Delete(t *testing.T) {
	g := setup()
	id := submit(t, g, `{"question":"bye"}`)

	w := send(g, http.MethodDelete, "/api/qna/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Q&A deleted successfully"}`, w.Body.String())

	w = send(g, http.MethodDelete, "/api/qna/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = send(g, http.MethodGet, "/api/qna/nope", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"Invalid Q&A ID"}`, w.Body.String())
}
