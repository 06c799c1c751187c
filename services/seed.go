package services

import (
	"encoding/json"

	"github.com/sudokulive/sudoku-backend/game"
	"github.com/sudokulive/sudoku-backend/models"
	"github.com/sudokulive/sudoku-backend/utils/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedPuzzles fills the puzzle bank at startup when it is empty, so
// /api/puzzles/random always has boards to hand out.
func SeedPuzzles(db *gorm.DB, gen game.BoardGenerator, count int) {
	var existing int64
	if err := db.Model(&models.Puzzle{}).Count(&existing).Error; err != nil {
		logger.Errorf("[seed] counting puzzles: %v", err)
		return
	}
	if existing > 0 {
		logger.Infof("[seed] puzzle bank already holds %d puzzles", existing)
		return
	}

	for i := 0; i < count; i++ {
		board := gen()
		b, err := json.Marshal(board)
		if err != nil {
			logger.Errorf("[seed] marshal board: %v", err)
			continue
		}
		puzzle := models.Puzzle{
			Board:      datatypes.JSON(b),
			Difficulty: "medium",
		}
		if err := db.Create(&puzzle).Error; err != nil {
			logger.Errorf("[seed] storing puzzle: %v", err)
			return
		}
	}
	logger.Infof("[seed] stored %d puzzles", count)
}
