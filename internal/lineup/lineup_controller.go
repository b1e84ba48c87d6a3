package lineup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pwiech/footliga/pkg/responses"
	"github.com/pwiech/footliga/pkg/validator"
)

// LineupController handles roster-related HTTP requests
type LineupController struct {
	service *RosterService
}

// NewLineupController creates a new lineup controller
func NewLineupController(service *RosterService) *LineupController {
	return &LineupController{service: service}
}

type RosterRequest struct {
	PlayerIDs []uint `json:"player_ids" binding:"required"`
}

func parseMatchAndSide(c *gin.Context) (uint, Side, bool) {
	var uri struct {
		MatchID uint   `uri:"match_id" binding:"required"`
		Side    string `uri:"side" binding:"required,oneof=home away"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		responses.BadRequest(c, "Invalid match ID or side")
		return 0, "", false
	}
	return uri.MatchID, Side(uri.Side), true
}

// GetRoster godoc
// @Summary Get one side's lineup for a match
// @Tags Lineups
// @Produce json
// @Param match_id path int true "Match ID"
// @Param side path string true "home or away"
// @Success 200 {object} responses.SuccessResponse{data=[]Lineup}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id}/lineups/{side} [get]
func (lc *LineupController) GetRoster(c *gin.Context) {
	matchID, side, ok := parseMatchAndSide(c)
	if !ok {
		return
	}
	entries, err := lc.service.GetRoster(matchID, side)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", entries)
}

// CreateRoster godoc
// @Summary Submit the starting eleven for one side of a match
// @Description Requires exactly 11 distinct players from that side's team.
// @Tags Lineups
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param side path string true "home or away"
// @Param roster body RosterRequest true "Player IDs"
// @Success 201 {object} responses.SuccessResponse{data=[]Lineup}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id}/lineups/{side} [post]
func (lc *LineupController) CreateRoster(c *gin.Context) {
	matchID, side, ok := parseMatchAndSide(c)
	if !ok {
		return
	}
	var req RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}
	entries, err := lc.service.CreateRoster(matchID, side, req.PlayerIDs)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Roster created", entries)
}

// UpdateRoster godoc
// @Summary Edit a pre-match roster
// @Description Adds and removes entries by diffing against the current roster.
// @Tags Lineups
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param side path string true "home or away"
// @Param roster body RosterRequest true "Player IDs"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id}/lineups/{side} [put]
func (lc *LineupController) UpdateRoster(c *gin.Context) {
	matchID, side, ok := parseMatchAndSide(c)
	if !ok {
		return
	}
	var req RosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}
	if err := lc.service.UpdateRoster(matchID, side, req.PlayerIDs); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Roster updated", nil)
}
