package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sanchitsave/cricket-app/internal/team"
	"github.com/sanchitsave/cricket-app/pkg/responses"
	"github.com/sanchitsave/cricket-app/pkg/validator"
)

// PlayerController handles API requests related to players.
type PlayerController struct {
	repo     PlayerRepository
	teamRepo team.TeamRepository
}

// NewPlayerController creates a new PlayerController.
func NewPlayerController(repo PlayerRepository, teamRepo team.TeamRepository) *PlayerController {
	return &PlayerController{repo: repo, teamRepo: teamRepo}
}

type CreatePlayerRequest struct {
	TeamID uint   `json:"team_id" binding:"required"`
	Name   string `json:"player_name" binding:"required,min=2,max=100"`
	Role   string `json:"role" binding:"omitempty,max=50"`
}

// CreatePlayer godoc
// @Summary Register a player
// @Description Add a player to an existing team
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player creation request"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	t, err := pc.teamRepo.GetTeamByID(req.TeamID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check team", err.Error())
		return
	}
	if t == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	player := Player{
		TeamID: req.TeamID,
		Name:   req.Name,
		Role:   req.Role,
	}
	if err := pc.repo.CreatePlayer(&player); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create player", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", player)
}

// GetPlayersByTeam godoc
// @Summary List players of a team
// @Tags Players
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Player}
// @Failure 400 {object} responses.ErrorResponse "Invalid team ID"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{team_id} [get]
func (pc *PlayerController) GetPlayersByTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID format", nil)
		return
	}

	t, err := pc.teamRepo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check team", err.Error())
		return
	}
	if t == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	players, err := pc.repo.GetPlayersByTeamID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve players", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Players retrieved successfully", players)
}

// DeletePlayer godoc
// @Summary Remove a player
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Invalid player ID"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID format", nil)
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve player", err.Error())
		return
	}
	if p == nil {
		responses.SendError(c, http.StatusNotFound, "Player not found", nil)
		return
	}

	if err := pc.repo.DeletePlayer(uint(playerID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete player", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}
