package event

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pwiech/footliga/pkg/responses"
	"github.com/pwiech/footliga/pkg/validator"
)

// EventController handles event-related HTTP requests
type EventController struct {
	service *RecorderService
}

// NewEventController creates a new event controller
func NewEventController(service *RecorderService) *EventController {
	return &EventController{service: service}
}

type CreateEventRequest struct {
	EventType   EventType `json:"event_type" binding:"required"`
	TeamID      uint      `json:"team_id" binding:"required"`
	Minute      uint      `json:"minute"`
	Description string    `json:"description" binding:"max=500"`
}

type AssignPlayerRequest struct {
	PlayerID uint `json:"player_id" binding:"required"`
	// PlayerInID is required for substitution events and rejected otherwise.
	PlayerInID uint `json:"player_in_id"`
}

// CreateEvent godoc
// @Summary Record a match event
// @Description First step of the two-step flow: type, team and minute. The player is attached via the assign-player endpoint.
// @Tags Events
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} responses.SuccessResponse{data=Event}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id}/events [post]
func (ec *EventController) CreateEvent(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}
	e, err := ec.service.Record(uint(matchID), req.EventType, req.TeamID, req.Minute, req.Description)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Event recorded", e)
}

// AssignPlayer godoc
// @Summary Attach the acting player to an event
// @Description Second step of the flow. Substitutions also take the incoming player and flip the roster; red cards withdraw the player.
// @Tags Events
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param assignment body AssignPlayerRequest true "Player selection"
// @Success 200 {object} responses.SuccessResponse{data=Event}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /events/{event_id}/player [put]
func (ec *EventController) AssignPlayer(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid event ID")
		return
	}
	var req AssignPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}
	e, err := ec.service.AssignPlayer(uint(eventID), req.PlayerID, req.PlayerInID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player assigned", e)
}

// GetMatchEvents godoc
// @Summary List a match's events in minute order
// @Tags Events
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Event}
// @Security ApiKeyAuth
// @Router /matches/{match_id}/events [get]
func (ec *EventController) GetMatchEvents(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	events, err := ec.service.repo.GetByMatch(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch events")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", events)
}

// GetBenchPool godoc
// @Summary List the players eligible to come on for a team in a match
// @Tags Events
// @Produce json
// @Param match_id path int true "Match ID"
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id}/bench-pool/{team_id} [get]
func (ec *EventController) GetBenchPool(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	pool, err := ec.service.BenchPool(uint(matchID), uint(teamID))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", pool)
}

// GetMatchTimeline godoc
// @Summary Match details: both lineups with each player's events
// @Tags Events
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=MatchTimeline}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id}/timeline [get]
func (ec *EventController) GetMatchTimeline(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	timeline, err := ec.service.Timeline(uint(matchID))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", timeline)
}
