package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/kindmap/kindmap-api/feed"
	"github.com/kindmap/kindmap-api/logmodule"
	"github.com/kindmap/kindmap-api/store"
	"github.com/kindmap/kindmap-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.KindmapCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// Live feed
	cache      *feed.Cache
	hub        *feed.Hub
	controller *feed.Controller

	// Moderation
	wordlist *utils.Wordlist

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	kindmapStore store.KindmapCore,
	mongoStore store.MongoStore,
	backgroundEnqueuer *machinery.Server,
	jwtKey *rsa.PrivateKey,
	scope tally.Scope) *Server {
	cache := feed.NewCache()
	hub := feed.NewHub(cache, scope)

	policy := feed.Policy{
		VisibilityRadiusMeters: viper.GetFloat64("policy.visibility_radius_meters"),
		BookmarksBypassRadius:  viper.GetBool("policy.bookmarks_bypass_radius"),
		DefaultCenter:          defaultMapCenter(),
	}

	s := &Server{
		store:         kindmapStore,
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		cache:         cache,
		hub:           hub,
		wordlist:      utils.NewWordlist(viper.GetString("moderation.wordlist")),
		background:    backgroundEnqueuer,
	}
	s.controller = feed.NewController(cache, mongoStore, s, policy, scope)

	return s
}

// WarmCache loads every live post into the feed cache so the first
// subscriber replay and pipeline pass see the full current state.
func (s *Server) WarmCache() error {
	posts, err := s.mongoStore.ListActivePosts(time.Now().UTC())
	if err != nil {
		return err
	}

	for _, p := range posts {
		s.cache.Upsert(p)
	}

	log.WithField("posts", len(posts)).Info("feed cache warmed")
	return nil
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	// api routes below apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.updateGeoPositionMiddleware)
	apiRoute.Use(s.recognizeAccountMiddleware())

	meRoute := apiRoute.Group("/accounts")
	{
		meRoute.GET("/me", s.accountDetail)
		meRoute.PATCH("/me", s.accountUpdateMetadata)
		meRoute.DELETE("/me", s.accountDelete)
	}

	postRoute := apiRoute.Group("/posts")
	{
		postRoute.POST("", s.addPost)
		postRoute.GET("", s.listVisiblePosts)
		postRoute.DELETE("/:postID", s.deletePost)
		postRoute.PUT("/:postID/position", s.updatePostPosition)
	}

	bookmarkRoute := apiRoute.Group("/bookmarks")
	{
		bookmarkRoute.POST("", s.addBookmark)
		bookmarkRoute.GET("", s.listBookmarks)
		bookmarkRoute.DELETE("/:postID", s.removeBookmark)
	}

	landmarkRoute := apiRoute.Group("/landmarks")
	{
		landmarkRoute.GET("/nearest", s.nearestLandmark)
	}

	geoRoute := apiRoute.Group("/geo")
	{
		geoRoute.GET("/label", s.geoLabel)
	}

	feedRoute := r.Group("/ws")
	feedRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		feedRoute.GET("/feed", s.serveFeed)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/expire-posts", s.adminExpirePosts)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both stores
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}
	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"policy": map[string]interface{}{
				"visibility_radius_meters": viper.GetFloat64("policy.visibility_radius_meters"),
				"bookmarks_bypass_radius":  viper.GetBool("policy.bookmarks_bypass_radius"),
			},
			"system_version": "Kindmap 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
