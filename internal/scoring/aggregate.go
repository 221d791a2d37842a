package scoring

import "fmt"

// BattingLine is one row of the batting scorecard.
type BattingLine struct {
	BatsmanID uint `json:"batsman_id"`
	Runs      int  `json:"runs"`
	Balls     int  `json:"balls"`
	Out       bool `json:"out"`
}

// BowlingLine is one row of the bowling scorecard. Overs uses cricket
// notation: six legal balls per over, e.g. 11 legal balls -> "1.5".
type BowlingLine struct {
	BowlerID     uint   `json:"bowler_id"`
	Overs        string `json:"overs"`
	LegalBalls   int    `json:"legal_balls"`
	RunsConceded int    `json:"runs_conceded"`
	Wickets      int    `json:"wickets"`
}

// Scorecard bundles both derived views for a match.
type Scorecard struct {
	Batting []BattingLine `json:"batting"`
	Bowling []BowlingLine `json:"bowling"`
}

// Summary is the headline score a live viewer shows while polling.
type Summary struct {
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Overs   string `json:"overs"` // "over.ball" of the most recent delivery
}

// FormatOvers converts a legal-ball count to cricket over notation:
// a complete over is six legal balls, so 5 -> "0.5", 6 -> "1.0", 11 -> "1.5".
func FormatOvers(legalBalls int) string {
	return fmt.Sprintf("%d.%d", legalBalls/6, legalBalls%6)
}

// BattingScorecard derives per-batsman totals from the full ball log.
// Every delivery counts as a ball faced, extras included. A batsman is out
// if any of their deliveries carries a wicket. Rows appear in the order
// batsmen first faced a ball. The input is not mutated.
func BattingScorecard(balls []BallRecord) []BattingLine {
	index := make(map[uint]int)
	lines := make([]BattingLine, 0)

	for _, b := range balls {
		i, ok := index[b.BatsmanID]
		if !ok {
			i = len(lines)
			index[b.BatsmanID] = i
			lines = append(lines, BattingLine{BatsmanID: b.BatsmanID})
		}
		lines[i].Runs += b.Runs
		lines[i].Balls++
		if b.Wicket {
			lines[i].Out = true
		}
	}
	return lines
}

// BowlingScorecard derives per-bowler totals from the full ball log.
// Wides and no-balls concede a penalty run on top of the batsman's runs and
// do not advance the bowler's legal-ball count. Rows appear in the order
// bowlers first bowled. The input is not mutated.
func BowlingScorecard(balls []BallRecord) []BowlingLine {
	index := make(map[uint]int)
	lines := make([]BowlingLine, 0)

	for _, b := range balls {
		i, ok := index[b.BowlerID]
		if !ok {
			i = len(lines)
			index[b.BowlerID] = i
			lines = append(lines, BowlingLine{BowlerID: b.BowlerID})
		}
		lines[i].RunsConceded += b.Runs
		if b.Extras.IsExtra() {
			lines[i].RunsConceded++ // penalty run
		} else {
			lines[i].LegalBalls++
		}
		if b.Wicket {
			lines[i].Wickets++
		}
	}

	for i := range lines {
		lines[i].Overs = FormatOvers(lines[i].LegalBalls)
	}
	return lines
}

// MatchSummary computes the headline score from the ball log: total runs off
// the bat, total wickets, and the "over.ball" address of the last delivery.
func MatchSummary(balls []BallRecord) Summary {
	s := Summary{Overs: "0.0"}
	for _, b := range balls {
		s.Runs += b.Runs
		if b.Wicket {
			s.Wickets++
		}
	}
	if len(balls) > 0 {
		last := balls[len(balls)-1]
		s.Overs = fmt.Sprintf("%d.%d", last.OverNumber, last.BallNumber)
	}
	return s
}
