package match

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sanchitsave/cricket-app/internal/team"
	"github.com/sanchitsave/cricket-app/pkg/responses"
	"github.com/sanchitsave/cricket-app/pkg/validator"
)

// MatchController handles API requests related to matches.
type MatchController struct {
	repo     MatchRepository
	teamRepo team.TeamRepository
}

// NewMatchController creates a new MatchController.
func NewMatchController(repo MatchRepository, teamRepo team.TeamRepository) *MatchController {
	return &MatchController{repo: repo, teamRepo: teamRepo}
}

type StartMatchRequest struct {
	Team1ID uint `json:"team1_id" binding:"required"`
	Team2ID uint `json:"team2_id" binding:"required"`
}

type UpdateMatchStatusRequest struct {
	Status MatchStatus `json:"status" binding:"required,oneof=ongoing completed"`
}

// StartMatch godoc
// @Summary Start a new match
// @Description Create a match between two distinct teams; it starts in "ongoing" state
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body StartMatchRequest true "Match start request"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse "Validation error or team1 == team2"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches [post]
func (mc *MatchController) StartMatch(c *gin.Context) {
	var req StartMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	if req.Team1ID == req.Team2ID {
		responses.SendError(c, http.StatusBadRequest, "A match requires two different teams", nil)
		return
	}

	for _, teamID := range []uint{req.Team1ID, req.Team2ID} {
		t, err := mc.teamRepo.GetTeamByID(teamID)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to check team", err.Error())
			return
		}
		if t == nil {
			responses.SendError(c, http.StatusNotFound, "Team not found", nil)
			return
		}
	}

	match := Match{
		Team1ID: req.Team1ID,
		Team2ID: req.Team2ID,
		Status:  StatusOngoing,
	}
	if err := mc.repo.CreateMatch(&match); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to start match", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Match started successfully", match)
}

// GetOngoingMatches godoc
// @Summary List ongoing matches
// @Tags Matches
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Match}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/ongoing [get]
func (mc *MatchController) GetOngoingMatches(c *gin.Context) {
	matches, err := mc.repo.GetMatchesByStatus(StatusOngoing)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve matches", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Ongoing matches retrieved successfully", matches)
}

// GetAllMatches godoc
// @Summary List all matches
// @Tags Matches
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} responses.PaginatedResponse{data=[]Match}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches [get]
func (mc *MatchController) GetAllMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	matches, total, err := mc.repo.GetAllMatches(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve matches", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Matches retrieved successfully", matches, total, page, pageSize)
}

// GetMatchByID godoc
// @Summary Get match details
// @Tags Matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID format", nil)
		return
	}

	match, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve match", err.Error())
		return
	}
	if match == nil {
		responses.SendError(c, http.StatusNotFound, "Match not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", match)
}

// UpdateMatchStatus godoc
// @Summary Update match status
// @Description Transition a match from "ongoing" to "completed". Completed is terminal; reopening is rejected.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param status body UpdateMatchStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Invalid status transition"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id} [put]
func (mc *MatchController) UpdateMatchStatus(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID format", nil)
		return
	}

	var req UpdateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	match, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve match", err.Error())
		return
	}
	if match == nil {
		responses.SendError(c, http.StatusNotFound, "Match not found", nil)
		return
	}

	// The only legal transition is ongoing -> completed.
	if match.Status == StatusCompleted && req.Status != StatusCompleted {
		responses.SendError(c, http.StatusConflict, "Match is completed and cannot be reopened", nil)
		return
	}

	if err := mc.repo.UpdateMatchStatus(uint(matchID), req.Status); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update match status", err.Error())
		return
	}

	match.Status = req.Status
	responses.SendSuccess(c, http.StatusOK, "Match status updated successfully", match)
}
