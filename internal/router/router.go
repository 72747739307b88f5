package router

import (
	"Connect_Life/internal/handler"
	"Connect_Life/internal/middleware"
	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
	"Connect_Life/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, producer *pkg.KafkaProducer, emailCfg pkg.SMTPConfig) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = pkg.MaxUploadSize

	users := service.NewUserService(db)
	email := service.NewEmailService(db, emailCfg)
	chats := service.NewChatService(db, producer)
	messages := service.NewMessageService(db, producer)
	events := service.NewEventService(db, producer)
	venues := service.NewVenueService(db)

	auth := handler.NewAuthHandler(users, email)
	user := handler.NewUserHandler(users)
	chat := handler.NewChatHandler(chats)
	message := handler.NewMessageHandler(messages)
	event := handler.NewEventHandler(events)
	venue := handler.NewVenueHandler(venues)

	// 上传的图片直接静态托管
	r.Static("/uploads", "./"+pkg.UploadDir)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/reset/code", auth.SendResetCode)
		authGroup.POST("/reset", auth.ResetPassword)
	}

	userGroup := r.Group("/api/usuarios")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("/me", user.Me)
		userGroup.PUT("/me", user.UpdateMe)
		userGroup.GET("/list", user.List)
	}

	// 账号管理只给管理员
	userAdminGroup := r.Group("/api/usuarios")
	userAdminGroup.Use(middleware.AuthMiddleware(model.RoleAdmin))
	{
		userAdminGroup.GET("/:id", user.AdminGet)
		userAdminGroup.PUT("/:id", user.AdminUpdate)
		userAdminGroup.DELETE("/:id", user.AdminDelete)
	}

	chatGroup := r.Group("/api/chats")
	chatGroup.Use(middleware.AuthMiddleware())
	{
		chatGroup.POST("", chat.Create)
		chatGroup.GET("", chat.ListMine)
		chatGroup.GET("/abertos", chat.ListOpen)
		chatGroup.POST("/:id/join", chat.Join)
		chatGroup.PUT("/:id", chat.Update)
		chatGroup.GET("/:id/messages", message.List)
		chatGroup.POST("/:id/messages", message.Post)
	}

	chatAdminGroup := r.Group("/api/chats")
	chatAdminGroup.Use(middleware.AuthMiddleware(model.RoleAdmin))
	{
		chatAdminGroup.GET("/all-admin", chat.ListAllAdmin)
		chatAdminGroup.DELETE("/:id", chat.Delete)
	}

	eventGroup := r.Group("/api/eventos")
	eventGroup.Use(middleware.AuthMiddleware())
	{
		eventGroup.POST("", event.Create)
		eventGroup.GET("", event.List)
	}

	venueGroup := r.Group("/api/locais")
	venueGroup.Use(middleware.AuthMiddleware())
	{
		venueGroup.GET("", venue.List)
	}

	// 场地的写操作只给管理员
	venueAdminGroup := r.Group("/api/locais")
	venueAdminGroup.Use(middleware.AuthMiddleware(model.RoleAdmin))
	{
		venueAdminGroup.POST("", venue.Create)
		venueAdminGroup.DELETE("/:id", venue.Delete)
	}

	return r
}
