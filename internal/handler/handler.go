package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/pagecache"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

const signInPath = "/auth/sign-in"

const defaultIndexTTL = time.Second * 20

type Handler struct {
	services *service.Service
	cache    pagecache.Store
	indexTTL time.Duration
}

func New(services *service.Service, cache pagecache.Store) *Handler {
	indexTTL := time.Duration(viper.GetInt("cache.index_ttl_seconds")) * time.Second
	if indexTTL <= 0 {
		indexTTL = defaultIndexTTL
	}

	return &Handler{
		services: services,
		cache: cache,
		indexTTL: indexTTL,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	origin := viper.GetString("client.origin")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{"POST", "GET", "PATCH"},
		AllowCredentials: true,
	}))

	r.Static("/media", uploadsDir())

	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.authSignUp)
		auth.GET("/sign-in", h.authSignInPage)
		auth.POST("/sign-in", h.authSignIn)
		auth.POST("/refresh", h.authRefresh)
	}

	r.GET("/", h.index)
	r.GET("/group/:slug/", h.groupPosts)
	r.GET("/profile/:username/", h.identifyMiddleware, h.profile)
	r.POST("/profile/:username/follow/", h.authMiddleware, h.profileFollow)
	r.POST("/profile/:username/unfollow/", h.authMiddleware, h.profileUnfollow)

	r.GET("/create/", h.authMiddleware, h.postCreateForm)
	r.POST("/create/", h.authMiddleware, h.postCreate)

	posts := r.Group("/posts")
	{
		posts.GET("/:id/", h.postDetail)
		posts.GET("/:id/edit/", h.authMiddleware, h.postEditForm)
		posts.POST("/:id/edit/", h.authMiddleware, h.postEdit)
		posts.POST("/:id/comment/", h.authMiddleware, h.addComment)
	}

	r.GET("/follow/", h.authMiddleware, h.feed)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPageNotFound.Error()))
	})

	return r
}

func (h *Handler) getUser(c *gin.Context) *model.User {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.User)
	if !ok {
		return nil
	}

	return &user
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	return page
}

func postIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidID
	}

	return id, nil
}

func uploadsDir() string {
	if dir := viper.GetString("uploads.dir"); dir != "" {
		return dir
	}
	return "./uploads"
}
