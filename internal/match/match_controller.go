package match

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pwiech/footliga/pkg/responses"
	"github.com/pwiech/footliga/pkg/validator"

	"github.com/pwiech/footliga/internal/team"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo  MatchRepository
	teams team.TeamRepository
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository, teams team.TeamRepository) *MatchController {
	return &MatchController{repo: repo, teams: teams}
}

type CreateMatchRequest struct {
	Lap        int       `json:"lap" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	HomeTeamID uint      `json:"home_team_id" binding:"required"`
	AwayTeamID uint      `json:"away_team_id" binding:"required"`
	HomeScore  *int      `json:"home_score"`
	AwayScore  *int      `json:"away_score"`
}

type UpdateMatchRequest struct {
	Lap        *int       `json:"lap"`
	Date       *time.Time `json:"date"`
	HomeTeamID *uint      `json:"home_team_id"`
	AwayTeamID *uint      `json:"away_team_id"`
	HomeScore  *int       `json:"home_score"`
	AwayScore  *int       `json:"away_score"`
}

// CreateMatch godoc
// @Summary Create a match
// @Description Creates a fixture. Scores are optional until the match is played.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match data"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	for _, teamID := range []uint{req.HomeTeamID, req.AwayTeamID} {
		t, err := mc.teams.GetByID(teamID)
		if err != nil {
			responses.InternalServerError(c, "Failed to fetch team")
			return
		}
		if t == nil {
			responses.NotFound(c, "Team")
			return
		}
	}

	m := Match{
		Lap:        req.Lap,
		Date:       req.Date,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
	}
	if err := m.Validate(); err != nil {
		responses.FromError(c, err)
		return
	}
	if err := mc.repo.Create(&m); err != nil {
		responses.InternalServerError(c, "Failed to create match")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created", m)
}

// GetMatchByID godoc
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	m, err := mc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", m)
}

// UpdateMatch godoc
// @Summary Update a match
// @Description Amends fixture fields, typically to record the final score.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	m, err := mc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	if req.Lap != nil {
		m.Lap = *req.Lap
	}
	if req.Date != nil {
		m.Date = *req.Date
	}
	if req.HomeTeamID != nil {
		m.HomeTeamID = *req.HomeTeamID
	}
	if req.AwayTeamID != nil {
		m.AwayTeamID = *req.AwayTeamID
	}
	if req.HomeScore != nil {
		m.HomeScore = req.HomeScore
	}
	if req.AwayScore != nil {
		m.AwayScore = req.AwayScore
	}

	if err := m.Validate(); err != nil {
		responses.FromError(c, err)
		return
	}
	if err := mc.repo.Update(m); err != nil {
		responses.InternalServerError(c, "Failed to update match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated", m)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags Matches
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{match_id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}
	m, err := mc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	if err := mc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted", nil)
}

// GetLaps godoc
// @Summary List the laps that have fixtures
// @Tags Matches
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]int}
// @Security ApiKeyAuth
// @Router /laps [get]
func (mc *MatchController) GetLaps(c *gin.Context) {
	laps, err := mc.repo.Laps()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch laps")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", laps)
}

// GetMatchesByLap godoc
// @Summary List the fixtures of one lap
// @Tags Matches
// @Produce json
// @Param lap path int true "Lap number"
// @Success 200 {object} responses.SuccessResponse{data=[]Match}
// @Security ApiKeyAuth
// @Router /laps/{lap}/matches [get]
func (mc *MatchController) GetMatchesByLap(c *gin.Context) {
	lap, err := strconv.Atoi(c.Param("lap"))
	if err != nil || lap < 1 {
		responses.BadRequest(c, "Invalid lap number")
		return
	}
	matches, err := mc.repo.GetByLap(lap)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", matches)
}

// GetTeamMatches godoc
// @Summary List a team's fixtures ordered by lap
// @Tags Matches
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Match}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id}/matches [get]
func (mc *MatchController) GetTeamMatches(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	t, err := mc.teams.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}
	matches, err := mc.repo.GetByTeam(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", matches)
}
