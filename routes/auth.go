package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"popin/models"
	"popin/utils"
)

// POST /signup
func (d *deps) signup(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role must be ADMIN, ORGANIZER or ATTENDEE."})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save user."})
		return
	}

	u := models.User{Username: req.Username, PasswordHash: hash, Role: role, EmailNotifications: true}
	if err := d.Users.Create(&u); err != nil {
		if errors.Is(err, models.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"message": "Username is already taken."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save user."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully."})
}

// POST /login
func (d *deps) login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	user, err := d.Users.FindByUsername(req.Username)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password."})
		return
	}

	token, err := utils.GenerateToken(user.Username, user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not authenticate user."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful!",
		"token":     token,
		"role":      user.Role,
		"dashboard": user.Role.DashboardLabel(),
	})
}

// GET /profile
func (d *deps) getProfile(c *gin.Context) {
	user, err := d.Users.FindByID(c.GetInt64("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch profile. Try again later."})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /profile/username
func (d *deps) updateUsername(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	if err := d.Users.UpdateUsername(c.GetInt64("userId"), req.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update username. Try again later."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Username updated."})
}

// PUT /profile/password
func (d *deps) updatePassword(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update password. Try again later."})
		return
	}
	if err := d.Users.UpdatePassword(c.GetInt64("userId"), hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update password. Try again later."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated."})
}

// GET /profile/notifications
func (d *deps) getNotifications(c *gin.Context) {
	enabled, err := d.Users.EmailNotifications(c.GetInt64("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch notification settings."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

// PUT /profile/notifications
func (d *deps) updateNotifications(c *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	if err := d.Users.SetEmailNotifications(c.GetInt64("userId"), *req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update notification settings."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated."})
}
