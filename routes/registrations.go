package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"popin/models"
	"popin/services"
)

// registrationError translates a registration-service failure into a status
// and a message the caller can show verbatim.
func registrationError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrAlreadyRegistered):
		return http.StatusConflict, "You are already registered for this event."
	case errors.Is(err, services.ErrEventFull):
		return http.StatusConflict, "This event is full."
	case errors.Is(err, services.ErrEventNotFound):
		return http.StatusNotFound, "Event not found."
	case errors.Is(err, services.ErrNotRegistered):
		return http.StatusNotFound, "You are not registered for this event."
	default:
		return http.StatusInternalServerError, "Could not update registration. Try again later."
	}
}

// POST /events/:id/register
func (d *deps) registerForEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID := c.GetInt64("userId")

	if err := d.Registrations.RegisterUser(id, userID); err != nil {
		status, msg := registrationError(err)
		c.JSON(status, gin.H{"message": msg})
		return
	}

	if d.Invalidator != nil {
		d.Invalidator.PurgeEventsList(c)
		d.Invalidator.PurgeEventItems(c)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registered!"})
}

// DELETE /events/:id/register
func (d *deps) cancelRegistration(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID := c.GetInt64("userId")

	if err := d.Registrations.CancelRegistration(id, userID); err != nil {
		status, msg := registrationError(err)
		c.JSON(status, gin.H{"message": msg})
		return
	}

	if d.Invalidator != nil {
		d.Invalidator.PurgeEventsList(c)
		d.Invalidator.PurgeEventItems(c)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration cancelled."})
}

// POST /events/:id/checkin, for the owning organizer.
func (d *deps) checkInAttendee(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	callerID := c.GetInt64("userId")
	role := models.Role(c.GetString("role"))

	var req struct {
		UserID int64 `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	ev, err := d.Events.FindByID(id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch the event. Try again later."})
		return
	}
	if ev.OrganizerID != callerID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to check in attendees."})
		return
	}

	if err := d.Registrations.CheckInUser(id, req.UserID); err != nil {
		status, msg := registrationError(err)
		c.JSON(status, gin.H{"message": msg})
		return
	}

	// Check-in frees a seat, so the cached availability is stale.
	if d.Invalidator != nil {
		d.Invalidator.PurgeEventsList(c)
		d.Invalidator.PurgeEventItems(c)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Checked in."})
}

// GET /registrations lists upcoming events the caller is registered for.
func (d *deps) getMyRegistrations(c *gin.Context) {
	events, err := d.Regs.FindEventsByUser(c.GetInt64("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch registrations. Try again later."})
		return
	}
	c.JSON(http.StatusOK, events)
}

// POST /events/:id/report flags an event for moderation, once per attendee.
func (d *deps) reportEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID := c.GetInt64("userId")

	if _, err := d.Events.FindByID(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch the event. Try again later."})
		return
	}

	already, err := d.Reports.HasReported(id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not submit report. Try again later."})
		return
	}
	if already {
		c.JSON(http.StatusConflict, gin.H{"message": "You have already reported this event."})
		return
	}

	// The UNIQUE constraint backstops the check above.
	if err := d.Reports.Add(id, userID); err != nil {
		if errors.Is(err, models.ErrDuplicateReport) {
			c.JSON(http.StatusConflict, gin.H{"message": "You have already reported this event."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not submit report. Try again later."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report submitted."})
}
