package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sanchitsave/cricket-app/internal/match"
	"github.com/sanchitsave/cricket-app/internal/player"
	"github.com/sanchitsave/cricket-app/internal/team"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	r := gin.New()
	api := r.Group("/api")
	team.RegisterTeamRoutes(api, db)
	player.RegisterPlayerRoutes(api, db)
	match.RegisterMatchRoutes(api, db)
	RegisterScoringRoutes(api, db)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// dataOf decodes the "data" field of the standard success envelope.
func dataOf(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding envelope: %v (body: %s)", err, w.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decoding data: %v (body: %s)", err, w.Body.String())
	}
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}

func createTeam(t *testing.T, r *gin.Engine, name string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/teams", gin.H{"team_name": name})
	mustStatus(t, w, http.StatusCreated)
	var created team.Team
	dataOf(t, w, &created)
	return created.ID
}

func createPlayer(t *testing.T, r *gin.Engine, teamID uint, name, role string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/players", gin.H{
		"team_id": teamID, "player_name": name, "role": role,
	})
	mustStatus(t, w, http.StatusCreated)
	var created player.Player
	dataOf(t, w, &created)
	return created.ID
}

func startMatch(t *testing.T, r *gin.Engine, team1, team2 uint) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/matches", gin.H{
		"team1_id": team1, "team2_id": team2,
	})
	mustStatus(t, w, http.StatusCreated)
	var created match.Match
	dataOf(t, w, &created)
	return created.ID
}

func nextDelivery(t *testing.T, r *gin.Engine, matchID uint) Delivery {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/matches/%d/next-delivery", matchID), nil)
	mustStatus(t, w, http.StatusOK)
	var d Delivery
	dataOf(t, w, &d)
	return d
}

func TestScoringFlow(t *testing.T) {
	r, _ := setupRouter(t)

	strikers := createTeam(t, r, "Strikers")
	blasters := createTeam(t, r, "Blasters")
	batsman1 := createPlayer(t, r, strikers, "Opener One", "batsman")
	batsman2 := createPlayer(t, r, strikers, "Opener Two", "batsman")
	bowler1 := createPlayer(t, r, blasters, "Quick One", "bowler")
	bowler2 := createPlayer(t, r, blasters, "Quick Two", "bowler")
	matchID := startMatch(t, r, strikers, blasters)

	if d := nextDelivery(t, r, matchID); d != (Delivery{OverNumber: 0, BallNumber: 1, BowlerID: 0}) {
		t.Fatalf("fresh match next delivery = %+v", d)
	}

	score := func(body gin.H) *httptest.ResponseRecorder {
		body["match_id"] = matchID
		return doJSON(t, r, http.MethodPost, "/api/score-ball", body)
	}

	// Three legal balls from bowler1.
	mustStatus(t, score(gin.H{"batsman_id": batsman1, "bowler_id": bowler1, "runs": 1}), http.StatusCreated)
	mustStatus(t, score(gin.H{"batsman_id": batsman1, "bowler_id": bowler1, "runs": 4}), http.StatusCreated)
	mustStatus(t, score(gin.H{"batsman_id": batsman2, "bowler_id": bowler1, "runs": 0}), http.StatusCreated)

	// Bowler is locked for the rest of the over.
	mustStatus(t, score(gin.H{"batsman_id": batsman1, "bowler_id": bowler2, "runs": 1}), http.StatusConflict)

	// Wide flagged for re-bowl: the address freezes at (0, 4).
	mustStatus(t, score(gin.H{"batsman_id": batsman1, "bowler_id": bowler1, "runs": 0, "extras": "wide", "repeat_ball": true}), http.StatusCreated)
	if d := nextDelivery(t, r, matchID); d != (Delivery{OverNumber: 0, BallNumber: 4, BowlerID: bowler1}) {
		t.Fatalf("next delivery after repeat wide = %+v", d)
	}

	// Finish the over.
	mustStatus(t, score(gin.H{"batsman_id": batsman1, "bowler_id": bowler1, "runs": 6}), http.StatusCreated)
	mustStatus(t, score(gin.H{"batsman_id": batsman2, "bowler_id": bowler1, "runs": 0, "wicket": true, "wicket_type": "bowled"}), http.StatusCreated)
	mustStatus(t, score(gin.H{"batsman_id": batsman1, "bowler_id": bowler1, "runs": 2}), http.StatusCreated)

	// Over complete: fresh over, bowler choice open again.
	if d := nextDelivery(t, r, matchID); d != (Delivery{OverNumber: 1, BallNumber: 1, BowlerID: 0}) {
		t.Fatalf("next delivery after over = %+v", d)
	}

	// A different bowler may open the new over.
	mustStatus(t, score(gin.H{"batsman_id": batsman1, "bowler_id": bowler2, "runs": 4}), http.StatusCreated)

	// Undo the over-opening ball.
	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/ball-records/%d/last", matchID), nil)
	mustStatus(t, w, http.StatusOK)
	var undone BallRecord
	dataOf(t, w, &undone)
	if undone.OverNumber != 1 || undone.BallNumber != 1 {
		t.Fatalf("undone ball = %+v, want over 1 ball 1", undone)
	}
	if d := nextDelivery(t, r, matchID); d != (Delivery{OverNumber: 1, BallNumber: 1, BowlerID: 0}) {
		t.Fatalf("next delivery after undo = %+v", d)
	}

	// Scorecard derived from the surviving log.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/matches/%d/scorecard", matchID), nil)
	mustStatus(t, w, http.StatusOK)
	var card Scorecard
	dataOf(t, w, &card)

	if len(card.Batting) != 2 {
		t.Fatalf("batting lines = %+v", card.Batting)
	}
	if card.Batting[0].BatsmanID != batsman1 || card.Batting[0].Runs != 13 || card.Batting[0].Balls != 5 {
		t.Errorf("opener line = %+v", card.Batting[0])
	}
	if card.Batting[1].BatsmanID != batsman2 || !card.Batting[1].Out {
		t.Errorf("second opener line = %+v", card.Batting[1])
	}

	if len(card.Bowling) != 1 {
		t.Fatalf("bowling lines = %+v", card.Bowling)
	}
	bowling := card.Bowling[0]
	// 13 runs off the bat plus the wide penalty.
	if bowling.BowlerID != bowler1 || bowling.RunsConceded != 14 || bowling.Overs != "1.0" || bowling.Wickets != 1 {
		t.Errorf("bowling line = %+v", bowling)
	}

	// Summary.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/matches/%d/summary", matchID), nil)
	mustStatus(t, w, http.StatusOK)
	var summary Summary
	dataOf(t, w, &summary)
	if summary.Runs != 13 || summary.Wickets != 1 || summary.Overs != "0.6" {
		t.Errorf("summary = %+v", summary)
	}

	// Rebuild must reproduce what incremental scoring left behind.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/matches/%d/stats/rebuild", matchID), nil)
	mustStatus(t, w, http.StatusOK)
	var rebuilt []PlayerStat
	dataOf(t, w, &rebuilt)
	for _, s := range rebuilt {
		if s.PlayerID == batsman1 && (s.RunsScored != 13 || s.BallsFaced != 5) {
			t.Errorf("rebuilt batsman stat = %+v", s)
		}
		if s.PlayerID == bowler1 && s.WicketsTaken != 1 {
			t.Errorf("rebuilt bowler stat = %+v", s)
		}
	}

	// Completed matches stop accepting balls.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/matches/%d", matchID), gin.H{"status": "completed"})
	mustStatus(t, w, http.StatusOK)
	mustStatus(t, score(gin.H{"batsman_id": batsman1, "bowler_id": bowler1, "runs": 1}), http.StatusConflict)
}

func TestScoreBallValidation(t *testing.T) {
	r, _ := setupRouter(t)

	t1 := createTeam(t, r, "Home")
	t2 := createTeam(t, r, "Away")
	batsman := createPlayer(t, r, t1, "Bat", "batsman")
	bowler := createPlayer(t, r, t2, "Bowl", "bowler")
	matchID := startMatch(t, r, t1, t2)

	score := func(body gin.H) *httptest.ResponseRecorder {
		return doJSON(t, r, http.MethodPost, "/api/score-ball", body)
	}
	base := func() gin.H {
		return gin.H{"match_id": matchID, "batsman_id": batsman, "bowler_id": bowler}
	}

	// Five runs do not exist.
	b := base()
	b["runs"] = 5
	mustStatus(t, score(b), http.StatusBadRequest)

	// A wicket needs a dismissal type, and vice versa.
	b = base()
	b["wicket"] = true
	mustStatus(t, score(b), http.StatusBadRequest)
	b = base()
	b["wicket_type"] = "caught"
	mustStatus(t, score(b), http.StatusBadRequest)

	// repeat_ball only makes sense on an extra.
	b = base()
	b["repeat_ball"] = true
	mustStatus(t, score(b), http.StatusBadRequest)

	// Unknown match and unknown player.
	b = base()
	b["match_id"] = uint(9999)
	mustStatus(t, score(b), http.StatusNotFound)
	b = base()
	b["batsman_id"] = uint(9999)
	mustStatus(t, score(b), http.StatusNotFound)

	// A stale client address is rejected, the engine's wins.
	b = base()
	b["over_number"] = 3
	b["ball_number"] = 2
	mustStatus(t, score(b), http.StatusConflict)

	// The correct explicit address is accepted.
	b = base()
	b["runs"] = 1
	b["over_number"] = 0
	b["ball_number"] = 1
	mustStatus(t, score(b), http.StatusCreated)
}

func TestUndoOnMatchWithoutBalls(t *testing.T) {
	r, _ := setupRouter(t)

	t1 := createTeam(t, r, "North")
	t2 := createTeam(t, r, "South")
	matchID := startMatch(t, r, t1, t2)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/ball-records/%d/last", matchID), nil)
	mustStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, http.MethodDelete, "/api/ball-records/424242/last", nil)
	mustStatus(t, w, http.StatusNotFound)
}
