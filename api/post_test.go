package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kindmap/kindmap-api/api/mocks"
	"github.com/kindmap/kindmap-api/feed"
	"github.com/kindmap/kindmap-api/schema"
	"github.com/kindmap/kindmap-api/utils"
)

func testServer(a *mocks.MockKindmapCore, m *mocks.MockMongoStore) *Server {
	cache := feed.NewCache()
	s := &Server{
		store:      a,
		mongoStore: m,
		cache:      cache,
		hub:        feed.NewHub(cache, tally.NoopScope),
		wordlist:   utils.NewWordlist(""),
	}
	s.controller = feed.NewController(cache, m, s, feed.Policy{}, tally.NoopScope)
	return s
}

func postRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.addPost)
	router.DELETE("/:postID", s.deletePost)
	return router
}

func expectAccount(a *mocks.MockKindmapCore, accountNumber string) {
	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		AccountNumber: accountNumber,
	}, nil).Times(1)
}

func TestAddPost(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)

	expectAccount(a, "client-1")

	saved := schema.Post{
		ID:        primitive.NewObjectID(),
		Type:      schema.PostTypeNote,
		Message:   "free veggies on the porch",
		Color:     "#C1EDB9",
		Location:  schema.NewGeoJSON(schema.Location{Latitude: 49.28, Longitude: -123.12}),
		ClientID:  "client-1",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	m.EXPECT().AddPost(gomock.Any(), 7*24*time.Hour).
		DoAndReturn(func(p schema.Post, _ time.Duration) (*schema.Post, error) {
			assert.Equal(t, "client-1", p.ClientID)
			assert.Equal(t, "#C1EDB9", p.Color, "missing color should fall back to the default")
			assert.True(t, p.IsAnonymous)
			assert.True(t, strings.HasPrefix(p.User, "anonymous"), "missing user should get an anonymous name")
			return &saved, nil
		}).Times(1)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{
		"type": "note",
		"message": "free veggies on the porch",
		"location": {"latitude": 49.28, "longitude": -123.12}
	}`))
	w := httptest.NewRecorder()
	postRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	_, cached := s.cache.Get(saved.ID)
	assert.True(t, cached, "a saved post should enter the feed cache")
}

func TestAddPostUnknownType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)
	expectAccount(a, "client-1")

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{
		"type": "gif",
		"location": {"latitude": 49.28, "longitude": -123.12}
	}`))
	w := httptest.NewRecorder()
	postRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, 1202)
}

func TestAddPostMissingLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)
	expectAccount(a, "client-1")

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{
		"type": "note",
		"message": "hello"
	}`))
	w := httptest.NewRecorder()
	postRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, 1201)
}

func TestAddPostUnknownSticker(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)
	expectAccount(a, "client-1")

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{
		"type": "sticker",
		"sticker": "dragon",
		"location": {"latitude": 49.28, "longitude": -123.12}
	}`))
	w := httptest.NewRecorder()
	postRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, 1203)
}

func TestAddPostNoteRequiresMessage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)
	expectAccount(a, "client-1")

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{
		"type": "note",
		"location": {"latitude": 49.28, "longitude": -123.12}
	}`))
	w := httptest.NewRecorder()
	postRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, 1204)
}

func TestAddPostDurationOutOfRange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)
	expectAccount(a, "client-1")

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{
		"type": "note",
		"message": "hello",
		"duration_days": 30,
		"location": {"latitude": 49.28, "longitude": -123.12}
	}`))
	w := httptest.NewRecorder()
	postRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, 1010)
}

func TestAddPostBlockedWord(t *testing.T) {
	viper.Set("i18n.dir", "../i18n")
	utils.InitI18NBundle()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)
	s.wordlist = utils.NewWordlist(tempWordlist(t, "scam\n"))
	expectAccount(a, "client-1")

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{
		"type": "note",
		"message": "this is a scam",
		"location": {"latitude": 49.28, "longitude": -123.12}
	}`))
	w := httptest.NewRecorder()
	postRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1205), resp.Code)
	assert.Contains(t, resp.Message, "scam", "the blocked word should be named in the message")
}

func TestDeletePostNotOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)
	expectAccount(a, "client-1")

	postID := primitive.NewObjectID()
	m.EXPECT().GetPost(postID).Return(&schema.Post{
		ID:       postID,
		Type:     schema.PostTypeNote,
		ClientID: "someone-else",
	}, nil).Times(1)

	req := httptest.NewRequest("DELETE", "/"+postID.Hex(), nil)
	w := httptest.NewRecorder()
	postRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "a post owned by another client should look unknown")
}

func TestDeletePostInvalidID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)
	expectAccount(a, "client-1")

	req := httptest.NewRequest("DELETE", "/not-an-id", nil)
	w := httptest.NewRecorder()
	postRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListVisiblePosts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockKindmapCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := testServer(a, m)
	expectAccount(a, "client-1")

	live := schema.Post{
		ID:       primitive.NewObjectID(),
		Type:     schema.PostTypeNote,
		Message:  "left a book on the bench",
		Location: schema.NewGeoJSON(schema.Location{Latitude: 49.2827, Longitude: -123.1207}),
	}
	s.cache.Upsert(live)

	m.EXPECT().ListBookmarks("client-1").Return(nil, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.listVisiblePosts)

	req := httptest.NewRequest("GET", "/?lat=49.2827&lng=-123.1207", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Posts []feed.VisiblePost `json:"posts"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Posts, 1)
	assert.Equal(t, live.ID.Hex(), resp.Posts[0].ID)
	assert.Equal(t, 0, resp.Posts[0].Heat)
}

func tempWordlist(t *testing.T, content string) string {
	f, err := ioutil.TempFile("", "wordlist")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, code int64) {
	t.Helper()
	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, code, resp.Code, "wrong error code: %s", w.Body.String())
}
