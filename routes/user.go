package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/dammyprolific/shopWithDammy/controllers/user"
	"github.com/dammyprolific/shopWithDammy/middleware"
	"github.com/dammyprolific/shopWithDammy/store"
)

// SetupUserRoutes registers registration, login and the authenticated
// profile endpoints.
func SetupUserRoutes(r *gin.Engine, stores *store.Stores) {
	r.POST("/create_user/", userControllers.CreateUser(stores.Users))
	r.POST("/token/", userControllers.Login(stores.Users))

	authed := r.Group("/", middleware.RequireAuth())
	{
		authed.GET("/get_username/", userControllers.GetUsername(stores.Users))
		authed.GET("/user_info/", userControllers.UserInfo(stores.Users))
	}
}
