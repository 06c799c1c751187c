package controllers

import (
	"net/http"

	"github.com/sudokulive/sudoku-backend/config"
	"github.com/sudokulive/sudoku-backend/models"

	"github.com/gin-gonic/gin"
)

// RandomPuzzle serves one puzzle from the bank. Shared-board clients
// fetch their starting board here before calling NewGame with it.
func RandomPuzzle(c *gin.Context) {
	var puzzle models.Puzzle
	if err := config.DB.Order("RANDOM()").First(&puzzle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No puzzles available"})
		return
	}

	c.JSON(http.StatusOK, puzzle)
}

// ListPuzzles returns all stored puzzles
func ListPuzzles(c *gin.Context) {
	var puzzles []models.Puzzle
	config.DB.Find(&puzzles)
	c.JSON(http.StatusOK, puzzles)
}
