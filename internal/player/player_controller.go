package player

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pwiech/footliga/pkg/responses"
	"github.com/pwiech/footliga/pkg/validator"

	"github.com/pwiech/footliga/internal/team"
)

// PlayerController handles player-related HTTP requests
type PlayerController struct {
	repo  PlayerRepository
	teams team.TeamRepository
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository, teams team.TeamRepository) *PlayerController {
	return &PlayerController{repo: repo, teams: teams}
}

type CreatePlayerRequest struct {
	Name        string    `json:"name" binding:"required,min=2,max=50"`
	BirthDay    time.Time `json:"birth_day" binding:"required"`
	Position    Position  `json:"position" binding:"required"`
	Nationality string    `json:"nationality" binding:"required,max=40"`
	TeamID      *uint     `json:"team_id"`
}

type UpdatePlayerRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=2,max=50"`
	BirthDay    *time.Time `json:"birth_day"`
	Position    *Position `json:"position"`
	Nationality *string   `json:"nationality" binding:"omitempty,max=40"`
	// TeamID moves a player between clubs; explicit null releases them.
	TeamID *uint `json:"team_id"`
}

// TeamRosterResponse buckets a club's players by position, the shape the
// team page renders.
type TeamRosterResponse struct {
	Goalkeepers []Player `json:"goalkeepers"`
	Defenders   []Player `json:"defenders"`
	Midfielders []Player `json:"midfielders"`
	Strikers    []Player `json:"strikers"`
}

// GetAllPlayers godoc
// @Summary List all players
// @Tags Players
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Player}
// @Security ApiKeyAuth
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	players, err := pc.repo.GetAll()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", players)
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}

// GetTeamRoster godoc
// @Summary Get a team's players bucketed by position
// @Tags Players
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=TeamRosterResponse}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /teams/{team_id}/players [get]
func (pc *PlayerController) GetTeamRoster(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	t, err := pc.teams.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	roster := TeamRosterResponse{}
	buckets := []struct {
		position Position
		dest     *[]Player
	}{
		{PositionGoalkeeper, &roster.Goalkeepers},
		{PositionDefender, &roster.Defenders},
		{PositionMidfielder, &roster.Midfielders},
		{PositionStriker, &roster.Strikers},
	}
	for _, b := range buckets {
		players, err := pc.repo.GetByTeamAndPosition(uint(id), b.position)
		if err != nil {
			responses.InternalServerError(c, "Failed to fetch players")
			return
		}
		*b.dest = players
	}
	responses.SendSuccess(c, http.StatusOK, "", roster)
}

// CreatePlayer godoc
// @Summary Create a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player data"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}
	if !req.Position.Valid() {
		responses.BadRequest(c, "Unknown position code")
		return
	}
	if req.TeamID != nil {
		t, err := pc.teams.GetByID(*req.TeamID)
		if err != nil {
			responses.InternalServerError(c, "Failed to fetch team")
			return
		}
		if t == nil {
			responses.NotFound(c, "Team")
			return
		}
	}

	p := Player{
		Name:        req.Name,
		BirthDay:    req.BirthDay,
		Position:    req.Position,
		Nationality: req.Nationality,
		TeamID:      req.TeamID,
	}
	if err := pc.repo.Create(&p); err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created", p)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path int true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /players/{player_id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.BirthDay != nil {
		p.BirthDay = *req.BirthDay
	}
	if req.Position != nil {
		if !req.Position.Valid() {
			responses.BadRequest(c, "Unknown position code")
			return
		}
		p.Position = *req.Position
	}
	if req.Nationality != nil {
		p.Nationality = *req.Nationality
	}
	if req.TeamID != nil {
		if *req.TeamID == 0 {
			p.TeamID = nil
			p.Team = nil
		} else {
			t, err := pc.teams.GetByID(*req.TeamID)
			if err != nil {
				responses.InternalServerError(c, "Failed to fetch team")
				return
			}
			if t == nil {
				responses.NotFound(c, "Team")
				return
			}
			p.TeamID = req.TeamID
			p.Team = nil
		}
	}

	if err := pc.repo.Update(p); err != nil {
		responses.InternalServerError(c, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags Players
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	if err := pc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted", nil)
}
