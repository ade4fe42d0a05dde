package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"popin/models"
)

// GET /events
func (d *deps) getEvents(c *gin.Context) {
	events, err := d.Events.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch events. Try again later."})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /events/upcoming
func (d *deps) getUpcomingEvents(c *gin.Context) {
	events, err := d.Events.FindUpcoming()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch events. Try again later."})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /events/:id
func (d *deps) getEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	event, err := d.Events.FindByID(id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch event. Try again later."})
		return
	}
	c.JSON(http.StatusOK, event)
}

// GET /events/:id/availability
func (d *deps) getAvailability(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"full": d.Registrations.IsEventFull(id)})
}

// POST /events
func (d *deps) createEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	event.ID = 0
	event.OrganizerID = c.GetInt64("userId")

	if err := d.Events.Create(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create event. Try again later."})
		return
	}

	if d.Invalidator != nil {
		d.Invalidator.PurgeEventsList(c)
		d.Invalidator.PurgeEventItems(c)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Event created!", "event": event})
}

// PUT /events/:id
func (d *deps) updateEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID := c.GetInt64("userId")

	old, err := d.Events.FindByID(id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch the event. Try again later."})
		return
	}
	if old.OrganizerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to update event."})
		return
	}

	var incoming models.Event
	if err := c.ShouldBindJSON(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}
	incoming.ID = id
	incoming.OrganizerID = old.OrganizerID

	if err := d.Events.Update(&incoming); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update event. Try again later."})
		return
	}

	if d.Invalidator != nil {
		d.Invalidator.PurgeEventsList(c)
		d.Invalidator.PurgeEventItems(c)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully!"})
}

// DELETE /events/:id, allowed for the owning organizer or an admin.
func (d *deps) deleteEvent(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID := c.GetInt64("userId")
	role := models.Role(c.GetString("role"))

	ev, err := d.Events.FindByID(id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch the event. Try again later."})
		return
	}
	if ev.OrganizerID != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete event."})
		return
	}

	if err := d.Events.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete the event."})
		return
	}

	if d.Invalidator != nil {
		d.Invalidator.PurgeEventsList(c)
		d.Invalidator.PurgeEventItems(c)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully!"})
}

// GET /my/events lists events owned by the calling organizer.
func (d *deps) getMyEvents(c *gin.Context) {
	events, err := d.Events.FindByOrganizer(c.GetInt64("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch events. Try again later."})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /events/:id/attendees returns the registration rows the owner works
// through at the door.
func (d *deps) listAttendees(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID := c.GetInt64("userId")
	role := models.Role(c.GetString("role"))

	ev, err := d.Events.FindByID(id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch the event. Try again later."})
		return
	}
	if ev.OrganizerID != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to view attendees."})
		return
	}

	regs, err := d.Regs.ListByEvent(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch attendees. Try again later."})
		return
	}
	c.JSON(http.StatusOK, regs)
}
