package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"popin/models"
)

// GET /admin/analytics
func (d *deps) getAnalytics(c *gin.Context) {
	users, err := d.Users.CountAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load analytics. Try again later."})
		return
	}
	events, err := d.Events.CountAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load analytics. Try again later."})
		return
	}
	regs, err := d.Regs.CountAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load analytics. Try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":         users,
		"totalEvents":        events,
		"totalRegistrations": regs,
	})
}

// GET /admin/users
func (d *deps) listUsers(c *gin.Context) {
	users, err := d.Users.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch users. Try again later."})
		return
	}
	c.JSON(http.StatusOK, users)
}

// DELETE /admin/users/:id
func (d *deps) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id."})
		return
	}

	if err := d.Users.DeleteByID(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete user. Try again later."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted."})
}

// GET /admin/reports
func (d *deps) getReports(c *gin.Context) {
	counts, err := d.Reports.CountsByEvent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch reports. Try again later."})
		return
	}
	c.JSON(http.StatusOK, counts)
}
