package handler

import (
	"github.com/BloggingApp/blog-client/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	logger       *zap.Logger
	store        *store.Store
	clientOrigin string
}

func New(logger *zap.Logger, st *store.Store, clientOrigin string) *Handler {
	return &Handler{
		logger:       logger,
		store:        st,
		clientOrigin: clientOrigin,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{h.clientOrigin},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		state := v1.Group("/state")
		{
			state.GET("", h.stateGet)
			state.GET("/:slice", h.stateGetSlice)
		}

		session := v1.Group("/session")
		{
			session.GET("", h.sessionGet)
			session.DELETE("", h.sessionDelete)
		}

		users := v1.Group("/users")
		{
			users.POST("/register", h.usersRegister)
			users.POST("/login", h.usersLogin)
			users.POST("/password-token", h.usersPasswordToken)
			users.PUT("/password-reset", h.usersPasswordReset)

			users.GET("", h.adminMiddleware, h.usersList)
			users.PUT("", h.authMiddleware, h.usersUpdate)
			users.PUT("/password", h.authMiddleware, h.usersUpdatePassword)
			users.PUT("/follow", h.authMiddleware, h.usersFollow)
			users.PUT("/unfollow", h.authMiddleware, h.usersUnfollow)
			users.PUT("/profile-photo", h.authMiddleware, h.usersUploadPhoto)
			users.POST("/verify-token", h.authMiddleware, h.verificationSendToken)
			users.PUT("/verify-account", h.authMiddleware, h.verificationVerify)
			users.GET("/profile/:id", h.authMiddleware, h.usersProfile)

			user := users.Group("/:id")
			{
				user.GET("", h.usersGet)
				user.PUT("/block", h.adminMiddleware, h.usersBlock)
				user.PUT("/unblock", h.adminMiddleware, h.usersUnblock)
			}
		}

		category := v1.Group("/category", h.adminMiddleware)
		{
			category.POST("", h.categoryCreate)
			category.GET("", h.categoryList)
			category.GET("/:id", h.categoryGet)
			category.PUT("/:id", h.categoryUpdate)
			category.DELETE("/:id", h.categoryDelete)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("", h.postsList)

			post := posts.Group("/:id")
			{
				post.GET("", h.postsGetByID)
				post.PUT("", h.authMiddleware, h.postsEdit)
				post.DELETE("", h.authMiddleware, h.postsDelete)
				post.PUT("/likes", h.authMiddleware, h.postsLike)
				post.PUT("/unlikes", h.authMiddleware, h.postsUnlike)
			}
		}

		comments := v1.Group("/comments", h.authMiddleware)
		{
			comments.POST("", h.commentsCreate)
			comments.GET("/:id", h.commentsGet)
			comments.PUT("/:id", h.commentsEdit)
			comments.DELETE("/:id", h.commentsDelete)
		}

		v1.POST("/email", h.authMiddleware, h.mailSend)
	}

	return r
}
