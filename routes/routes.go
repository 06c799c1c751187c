package routes

import (
	"github.com/sudokulive/sudoku-backend/controllers"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ----------------------
	// Room pin routes
	// ----------------------
	api.POST("/rooms", controllers.CreateRoom)  // Allocate a shareable pin
	api.GET("/rooms/:pin", controllers.GetRoom) // Look up a pin

	// ----------------------
	// Puzzle bank routes
	// ----------------------
	api.GET("/puzzles", controllers.ListPuzzles)         // List stored puzzles
	api.GET("/puzzles/random", controllers.RandomPuzzle) // Starting board for a new game
}
