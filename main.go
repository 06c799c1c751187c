package main

import (
	"net/http"
	"os"
	"time"

	"github.com/sudokulive/sudoku-backend/config"
	"github.com/sudokulive/sudoku-backend/game"
	"github.com/sudokulive/sudoku-backend/routes"
	"github.com/sudokulive/sudoku-backend/services"
	"github.com/sudokulive/sudoku-backend/utils/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// initEnv loads .env file and validates required vars
func initEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file found, reading environment variables")
	}

	if os.Getenv("DATABASE_URL") == "" {
		logger.Fatalf("DATABASE_URL is required in .env or environment")
	}
}

// setupRouter initializes Gin routes and middleware
func setupRouter(roomHub, sudokuHub *services.Hub, rooms *game.RoomCoordinator, sudoku *game.SudokuCoordinator) *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// Realtime endpoints, one per game mode
	r.GET("/ws/room/:pin", services.RoomWebSocket(roomHub, rooms))
	r.GET("/ws/sudoku/:pin", services.SudokuWebSocket(sudokuHub, sudoku))

	return r
}

func main() {
	// Load env variables
	initEnv()

	// Connect to database
	config.SetupDatabase()

	// Fill the puzzle bank on first boot
	services.SeedPuzzles(config.DB, game.GenerateBoard, 50)

	// Coordinators own all realtime state; everything else gets a handle
	roomHub := services.NewHub()
	sudokuHub := services.NewHub()
	rooms := game.NewRoomCoordinator(roomHub, game.GenerateBoard)
	sudoku := game.NewSudokuCoordinator(sudokuHub)

	router := setupRouter(roomHub, sudokuHub, rooms, sudoku)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	logger.Infof("Sudoku backend starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
