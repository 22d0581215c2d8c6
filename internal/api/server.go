package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Bigstrengthboys/sweet-shop/docs"
	v1 "github.com/Bigstrengthboys/sweet-shop/internal/api/handler/v1"
	"github.com/Bigstrengthboys/sweet-shop/internal/api/middleware"
	"github.com/Bigstrengthboys/sweet-shop/internal/config"
	"github.com/Bigstrengthboys/sweet-shop/internal/repository"
	"github.com/Bigstrengthboys/sweet-shop/internal/repository/dao"
	"github.com/Bigstrengthboys/sweet-shop/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	sweetHandler := s.initSweetHandler(db)
	s.MountHandlers(authHandler, userHandler, sweetHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initSweetHandler(db *gorm.DB) *v1.SweetHandler {
	sweetDAO := dao.NewSweetDAO(db)
	repo := repository.NewSweetRepository(sweetDAO)
	svc := service.NewSweetService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewSweetHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, userHandler *v1.UserHandler, sweetHandler *v1.SweetHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/sweets", sweetHandler.HandleListSweets)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/users/me", userHandler.HandleGetCurrentUser)
		authenticated.GET("/sweets/:sweetID", sweetHandler.HandleGetSweet)
		authenticated.POST("/sweets/:sweetID/purchase", sweetHandler.HandlePurchaseSweet)
		authenticated.GET("/purchases", sweetHandler.HandleListPurchases)

		// Admin-only inventory mutations; the handlers check the admin
		// flag against the stored user record.
		authenticated.POST("/sweets", sweetHandler.HandleCreateSweet)
		authenticated.PUT("/sweets/:sweetID", sweetHandler.HandleUpdateSweet)
		authenticated.DELETE("/sweets/:sweetID", sweetHandler.HandleDeleteSweet)
		authenticated.POST("/sweets/:sweetID/restock", sweetHandler.HandleRestockSweet)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Sweet Shop API"
	docs.SwaggerInfo.Description = "Storefront and inventory API for the sweet shop."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
