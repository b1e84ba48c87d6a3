package standings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pwiech/footliga/pkg/responses"
)

// StandingsController handles the league-table HTTP request
type StandingsController struct {
	service *TableService
}

// NewStandingsController creates a new standings controller
func NewStandingsController(service *TableService) *StandingsController {
	return &StandingsController{service: service}
}

// GetTable godoc
// @Summary The league table
// @Description Aggregates every played match into ranked standings rows.
// @Tags Standings
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Row}
// @Security ApiKeyAuth
// @Router /standings [get]
func (sc *StandingsController) GetTable(c *gin.Context) {
	rows, err := sc.service.Table()
	if err != nil {
		responses.InternalServerError(c, "Failed to compute standings")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", rows)
}
