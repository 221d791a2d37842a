package scoring

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sanchitsave/cricket-app/internal/match"
	"github.com/sanchitsave/cricket-app/internal/player"
	"github.com/sanchitsave/cricket-app/pkg/responses"
	"github.com/sanchitsave/cricket-app/pkg/validator"
)

// ScoringController handles the ball-by-ball scoring API.
type ScoringController struct {
	balls      BallRepository
	matchRepo  match.MatchRepository
	playerRepo player.PlayerRepository
}

// NewScoringController creates a new ScoringController.
func NewScoringController(balls BallRepository, matchRepo match.MatchRepository, playerRepo player.PlayerRepository) *ScoringController {
	return &ScoringController{balls: balls, matchRepo: matchRepo, playerRepo: playerRepo}
}

// ScoreBallRequest is the payload for recording one delivery. The server
// derives the (over, ball) address and the locked bowler from the ball log;
// over_number/ball_number are optional and, when present, are cross-checked
// against the engine so a stale scoring client fails loudly instead of
// corrupting the log.
type ScoreBallRequest struct {
	MatchID    uint       `json:"match_id" binding:"required"`
	BatsmanID  uint       `json:"batsman_id" binding:"required"`
	BowlerID   uint       `json:"bowler_id" binding:"required"`
	Runs       int        `json:"runs" binding:"oneof=0 1 2 3 4 6"`
	Extras     ExtraType  `json:"extras" binding:"omitempty,oneof=wide no_ball"`
	Wicket     bool       `json:"wicket"`
	WicketType WicketType `json:"wicket_type" binding:"omitempty,oneof=bowled caught lbw run_out"`
	RepeatBall bool       `json:"repeat_ball"`
	OverNumber *int       `json:"over_number" binding:"omitempty,min=0"`
	BallNumber *int       `json:"ball_number" binding:"omitempty,min=1,max=6"`
}

// ScoreBall godoc
// @Summary Record a delivery
// @Description Append one ball to the match log and update both players' stats atomically
// @Tags Scoring
// @Accept json
// @Produce json
// @Param ball body ScoreBallRequest true "Ball event"
// @Success 201 {object} responses.SuccessResponse{data=BallRecord}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Match or player not found"
// @Failure 409 {object} responses.ErrorResponse "Match completed, bowler locked for the over, or stale address"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /score-ball [post]
func (sc *ScoringController) ScoreBall(c *gin.Context) {
	var req ScoreBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	if req.Wicket && req.WicketType == "" {
		responses.SendError(c, http.StatusBadRequest, "wicket_type is required when wicket is set", nil)
		return
	}
	if !req.Wicket && req.WicketType != "" {
		responses.SendError(c, http.StatusBadRequest, "wicket_type is only allowed when wicket is set", nil)
		return
	}
	if req.RepeatBall && !req.Extras.IsExtra() {
		responses.SendError(c, http.StatusBadRequest, "repeat_ball is only allowed for a wide or no_ball", nil)
		return
	}

	m, err := sc.matchRepo.GetMatchByID(req.MatchID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve match", err.Error())
		return
	}
	if m == nil {
		responses.SendError(c, http.StatusNotFound, "Match not found", nil)
		return
	}
	if m.Status != match.StatusOngoing {
		responses.SendError(c, http.StatusConflict, "Match is not ongoing and does not accept new balls", nil)
		return
	}

	for _, playerID := range []uint{req.BatsmanID, req.BowlerID} {
		p, err := sc.playerRepo.GetPlayerByID(playerID)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve player", err.Error())
			return
		}
		if p == nil {
			responses.SendError(c, http.StatusNotFound, "Player not found", nil)
			return
		}
	}

	log, err := sc.balls.ListByMatchInsertionOrder(req.MatchID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to read ball log", err.Error())
		return
	}

	next := NextDelivery(log)

	if next.BowlerID != 0 && req.BowlerID != next.BowlerID {
		responses.SendError(c, http.StatusConflict, "Bowler cannot change mid-over", nil)
		return
	}
	if req.OverNumber != nil && *req.OverNumber != next.OverNumber {
		responses.SendError(c, http.StatusConflict, "Stale over number; refresh the next delivery", nil)
		return
	}
	if req.BallNumber != nil && *req.BallNumber != next.BallNumber {
		responses.SendError(c, http.StatusConflict, "Stale ball number; refresh the next delivery", nil)
		return
	}

	ball := BallRecord{
		MatchID:    req.MatchID,
		OverNumber: next.OverNumber,
		BallNumber: next.BallNumber,
		BatsmanID:  req.BatsmanID,
		BowlerID:   req.BowlerID,
		Runs:       req.Runs,
		Extras:     req.Extras,
		Wicket:     req.Wicket,
		WicketType: req.WicketType,
		RepeatBall: req.RepeatBall,
	}
	if err := sc.balls.AppendBall(&ball); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to record ball", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Ball recorded successfully", ball)
}

// GetBallRecords godoc
// @Summary Ball-by-ball log for a match
// @Description Ordered by (over, ball); the live viewer polls this endpoint
// @Tags Scoring
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]BallRecord}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /ball-records/{match_id} [get]
func (sc *ScoringController) GetBallRecords(c *gin.Context) {
	matchID, ok := sc.matchIDParam(c)
	if !ok {
		return
	}

	balls, err := sc.balls.ListByMatch(matchID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve ball records", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Ball records retrieved successfully", balls)
}

// UndoLastBall godoc
// @Summary Undo the last ball
// @Description Delete the most recently inserted ball (highest id) and reverse its stat contribution
// @Tags Scoring
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=BallRecord}
// @Failure 404 {object} responses.ErrorResponse "Match not found or no balls to undo"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /ball-records/{match_id}/last [delete]
func (sc *ScoringController) UndoLastBall(c *gin.Context) {
	matchID, ok := sc.matchIDParam(c)
	if !ok {
		return
	}

	undone, err := sc.balls.UndoLast(matchID)
	if err != nil {
		if errors.Is(err, ErrNoBallRecords) {
			responses.SendError(c, http.StatusNotFound, "No balls to undo", nil)
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to undo last ball", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Last ball undone", undone)
}

// GetScorecard godoc
// @Summary Batting and bowling scorecards
// @Description Derived from the full ball log on demand; the stat cache is not consulted
// @Tags Scoring
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Scorecard}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/scorecard [get]
func (sc *ScoringController) GetScorecard(c *gin.Context) {
	matchID, ok := sc.matchIDParam(c)
	if !ok {
		return
	}

	balls, err := sc.balls.ListByMatchInsertionOrder(matchID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve ball records", err.Error())
		return
	}

	card := Scorecard{
		Batting: BattingScorecard(balls),
		Bowling: BowlingScorecard(balls),
	}
	responses.SendSuccess(c, http.StatusOK, "Scorecard retrieved successfully", card)
}

// GetSummary godoc
// @Summary Headline score for a match
// @Tags Scoring
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Summary}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/summary [get]
func (sc *ScoringController) GetSummary(c *gin.Context) {
	matchID, ok := sc.matchIDParam(c)
	if !ok {
		return
	}

	balls, err := sc.balls.ListByMatchInsertionOrder(matchID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve ball records", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Summary retrieved successfully", MatchSummary(balls))
}

// GetNextDelivery godoc
// @Summary Address of the next delivery
// @Description Over, ball and locked bowler for the next ball, derived server-side from the log
// @Tags Scoring
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Delivery}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/next-delivery [get]
func (sc *ScoringController) GetNextDelivery(c *gin.Context) {
	matchID, ok := sc.matchIDParam(c)
	if !ok {
		return
	}

	balls, err := sc.balls.ListByMatchInsertionOrder(matchID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve ball records", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Next delivery computed", NextDelivery(balls))
}

// GetMatchStats godoc
// @Summary Cached per-player stats for a match
// @Tags Scoring
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]PlayerStat}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/stats [get]
func (sc *ScoringController) GetMatchStats(c *gin.Context) {
	matchID, ok := sc.matchIDParam(c)
	if !ok {
		return
	}

	stats, err := sc.balls.StatsByMatch(matchID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve player stats", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player stats retrieved successfully", stats)
}

// RebuildMatchStats godoc
// @Summary Rebuild the stat cache from the ball log
// @Description Reconciliation: drops cached rows for the match and replays the log
// @Tags Scoring
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]PlayerStat}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/stats/rebuild [post]
func (sc *ScoringController) RebuildMatchStats(c *gin.Context) {
	matchID, ok := sc.matchIDParam(c)
	if !ok {
		return
	}

	stats, err := sc.balls.RebuildStats(matchID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to rebuild player stats", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player stats rebuilt from ball log", stats)
}

// matchIDParam parses the :match_id path parameter and verifies the match
// exists. It writes the error response itself when validation fails.
func (sc *ScoringController) matchIDParam(c *gin.Context) (uint, bool) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID format", nil)
		return 0, false
	}

	m, err := sc.matchRepo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve match", err.Error())
		return 0, false
	}
	if m == nil {
		responses.SendError(c, http.StatusNotFound, "Match not found", nil)
		return 0, false
	}
	return uint(matchID), true
}
