package scoring

import (
	"gorm.io/gorm"

	"github.com/sanchitsave/cricket-app/internal/match"
)

// ExtraType marks a delivery that does not count as a legal ball.
type ExtraType string

const (
	ExtraNone   ExtraType = ""
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no_ball"
)

// IsExtra reports whether the delivery awards a penalty run and is
// excluded from the bowler's legal-ball tally.
func (e ExtraType) IsExtra() bool {
	return e == ExtraWide || e == ExtraNoBall
}

// WicketType describes how a batsman was dismissed.
type WicketType string

const (
	WicketBowled WicketType = "bowled"
	WicketCaught WicketType = "caught"
	WicketLBW    WicketType = "lbw"
	WicketRunOut WicketType = "run_out"
)

// BallRecord is one entry of the append-only ball log for a match.
// The auto-increment ID is the source of truth for "most recent ball":
// undo always removes the highest ID, regardless of the (over, ball)
// display ordering.
type BallRecord struct {
	gorm.Model
	MatchID    uint        `json:"match_id" gorm:"index;not null"`
	Match      match.Match `json:"-" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	OverNumber int         `json:"over_number" gorm:"not null"` // 0-indexed
	BallNumber int         `json:"ball_number" gorm:"not null"` // 1..6
	BatsmanID  uint        `json:"batsman_id" gorm:"index;not null"`
	BowlerID   uint        `json:"bowler_id" gorm:"index;not null"`
	Runs       int         `json:"runs" gorm:"default:0"`
	Extras     ExtraType   `json:"extras"`
	Wicket     bool        `json:"wicket" gorm:"default:false"`
	WicketType WicketType  `json:"wicket_type,omitempty"`
	RepeatBall bool        `json:"repeat_ball" gorm:"default:false"` // extra must be re-bowled at the same address
}

// PlayerStat is the incrementally maintained per-(player, match) aggregate.
// It is a cache: the ball log is the source of truth and the cache is
// rebuildable from it at any time (see BallRepository.RebuildStats).
// OversBowled accumulates 0.1 per legal ball; display carrying to the next
// integer at six balls happens at formatting time.
type PlayerStat struct {
	gorm.Model
	PlayerID     uint    `json:"player_id" gorm:"not null;uniqueIndex:idx_player_match"`
	MatchID      uint    `json:"match_id" gorm:"not null;uniqueIndex:idx_player_match"`
	RunsScored   int     `json:"runs_scored" gorm:"default:0"`
	BallsFaced   int     `json:"balls_faced" gorm:"default:0"`
	WicketsTaken int     `json:"wickets_taken" gorm:"default:0"`
	OversBowled  float64 `json:"overs_bowled" gorm:"default:0"`
}

// StatDelta is the statistical contribution of a single ball to one player.
type StatDelta struct {
	Runs    int
	Balls   int
	Wickets int
	Overs   float64
}

// Inverse returns the additive inverse of the delta, used by undo.
func (d StatDelta) Inverse() StatDelta {
	return StatDelta{
		Runs:    -d.Runs,
		Balls:   -d.Balls,
		Wickets: -d.Wickets,
		Overs:   -d.Overs,
	}
}

// BallDeltas splits a ball's contribution between the batsman and the bowler.
// The batsman is charged a ball faced for every delivery, extras included;
// the bowler's over tally only advances on legal deliveries.
func BallDeltas(ball BallRecord) (batsman StatDelta, bowler StatDelta) {
	batsman = StatDelta{Runs: ball.Runs, Balls: 1}

	bowler = StatDelta{}
	if ball.Wicket {
		bowler.Wickets = 1
	}
	if !ball.Extras.IsExtra() {
		bowler.Overs = 0.1
	}
	return batsman, bowler
}
