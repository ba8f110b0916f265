package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/darshanrk18/kambaz-server-go/config"
	"github.com/darshanrk18/kambaz-server-go/dao"
	"github.com/darshanrk18/kambaz-server-go/db"
	"github.com/darshanrk18/kambaz-server-go/handlers"
	"github.com/darshanrk18/kambaz-server-go/middleware"
	"github.com/darshanrk18/kambaz-server-go/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.ConfigInstance = cfg

	if err := db.InitDatabaseConnection(); err != nil {
		log.Fatalf("Failed to initialize database connection: %v", err)
	}
	defer db.CloseConnection()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	router.Use(sessions.Sessions("kambaz-session", store))

	middleware.ApplyMiddleware(router)

	daos := dao.NewDAOs(db.DB)
	router.Use(func(c *gin.Context) {
		c.Set(handlers.DAOsKey, daos)
		c.Next()
	})

	routes.SetupRoutes(router)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(router.Run(":" + port))
}
