package controllers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/sudokulive/sudoku-backend/config"
	"github.com/sudokulive/sudoku-backend/models"
	"github.com/sudokulive/sudoku-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// pinAlphabet leaves out 0/O and 1/I so pins survive being read aloud.
const pinAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const pinLength = 4

func newPin(r *rand.Rand) string {
	pin := make([]byte, pinLength)
	for i := range pin {
		pin[i] = pinAlphabet[r.Intn(len(pinAlphabet))]
	}
	return string(pin)
}

// CreateRoom allocates a fresh shareable pin and persists it
func CreateRoom(c *gin.Context) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; attempt < 10; attempt++ {
		room := models.Room{GamePin: newPin(r)}
		if err := config.DB.Create(&room).Error; err != nil {
			// unique collision, roll a new pin
			logger.Debugf("pin %s taken, retrying: %v", room.GamePin, err)
			continue
		}
		c.JSON(http.StatusCreated, room)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to allocate pin"})
}

// GetRoom fetches a room by pin
func GetRoom(c *gin.Context) {
	pin := c.Param("pin")

	var room models.Room
	if err := config.DB.Where("game_pin = ?", pin).First(&room).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, room)
}
