package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/activity"
	"github.com/folio-space/core/internal/modules/auth"
	"github.com/folio-space/core/internal/modules/blog"
	"github.com/folio-space/core/internal/modules/contact"
	"github.com/folio-space/core/internal/modules/project"
	"github.com/folio-space/core/internal/modules/reader"
	"github.com/folio-space/core/internal/modules/user"
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/folio-space/core/internal/pkg/media"
	"github.com/folio-space/core/internal/pkg/response"
)

func (a *App) registerRoutes(store media.Store, sender *mail.Sender) {
	a.router.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"uptime": true}, "Server is running")
	})
	a.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Envelope{Status: false, Message: "Route not found"})
	})

	api := a.router.Group("/api/v1")
	authMW := middleware.Auth()

	activitySvc := activity.NewService(a.db, a.logger)

	auth.NewHandler(auth.NewService(a.db, a.cfg.TokenTTL)).RegisterRoutes(api)
	user.NewHandler(user.NewService(a.db, store, a.logger)).RegisterRoutes(api, authMW)
	blog.NewHandler(blog.NewService(a.db, store, a.logger)).RegisterRoutes(api, authMW)
	project.NewHandler(project.NewService(a.db, store, a.logger), activitySvc).RegisterRoutes(api, authMW)
	contact.NewHandler(contact.NewService(a.db, sender), activitySvc).RegisterRoutes(api, authMW)
	activity.NewHandler(activitySvc).RegisterRoutes(api, authMW)
	reader.NewHandler(reader.NewService(a.db)).RegisterRoutes(api)
}
