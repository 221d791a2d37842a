package team

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sanchitsave/cricket-app/pkg/responses"
	"github.com/sanchitsave/cricket-app/pkg/validator"
)

// TeamController handles API requests related to teams.
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new TeamController.
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

type CreateTeamRequest struct {
	Name string `json:"team_name" binding:"required,min=2,max=100"`
}

// CreateTeam godoc
// @Summary Register a new team
// @Description Create a team with a unique display name
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team creation request"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Team with this name already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	existing, err := tc.repo.GetTeamByName(req.Name)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check team name", err.Error())
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Team with this name already exists", nil)
		return
	}

	team := Team{Name: req.Name}
	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create team", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetAllTeams godoc
// @Summary List teams
// @Description Get all registered teams
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(50)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))

	teams, total, err := tc.repo.GetAllTeams(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve teams", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, pageSize)
}

// GetTeamByID godoc
// @Summary Get a team by ID
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID format", nil)
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team", err.Error())
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Team deleted successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid team ID"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID format", nil)
		return
	}

	team, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team", err.Error())
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found to delete", nil)
		return
	}

	if err := tc.repo.DeleteTeam(uint(teamID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete team", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}
