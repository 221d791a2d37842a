package scoring

import "testing"

func legal(over, ball int, bowlerID uint, runs int) BallRecord {
	return BallRecord{OverNumber: over, BallNumber: ball, BowlerID: bowlerID, BatsmanID: 1, Runs: runs}
}

func TestNextDelivery(t *testing.T) {
	tests := []struct {
		name  string
		balls []BallRecord
		want  Delivery
	}{
		{
			name:  "empty log starts at over 0 ball 1 with open bowler choice",
			balls: nil,
			want:  Delivery{OverNumber: 0, BallNumber: 1, BowlerID: 0},
		},
		{
			name:  "mid-over advances the ball and carries the bowler",
			balls: []BallRecord{legal(0, 1, 7, 4)},
			want:  Delivery{OverNumber: 0, BallNumber: 2, BowlerID: 7},
		},
		{
			name: "sixth ball rolls over to a fresh over with no bowler",
			balls: []BallRecord{
				legal(0, 1, 7, 0), legal(0, 2, 7, 1), legal(0, 3, 7, 0),
				legal(0, 4, 7, 2), legal(0, 5, 7, 0), legal(0, 6, 7, 6),
			},
			want: Delivery{OverNumber: 1, BallNumber: 1, BowlerID: 0},
		},
		{
			name: "rollover from a later over",
			balls: []BallRecord{
				legal(2, 6, 9, 1),
			},
			want: Delivery{OverNumber: 3, BallNumber: 1, BowlerID: 0},
		},
		{
			name: "wide with repeat_ball freezes the address",
			balls: []BallRecord{
				legal(0, 1, 7, 0),
				legal(0, 2, 7, 1),
				{OverNumber: 0, BallNumber: 3, BowlerID: 7, BatsmanID: 1, Extras: ExtraWide, RepeatBall: true},
			},
			want: Delivery{OverNumber: 0, BallNumber: 3, BowlerID: 7},
		},
		{
			name: "no_ball with repeat_ball freezes the address even on ball 6",
			balls: []BallRecord{
				{OverNumber: 1, BallNumber: 6, BowlerID: 5, BatsmanID: 2, Extras: ExtraNoBall, RepeatBall: true},
			},
			want: Delivery{OverNumber: 1, BallNumber: 6, BowlerID: 5},
		},
		{
			name: "extra without repeat_ball advances like a legal ball",
			balls: []BallRecord{
				legal(0, 1, 7, 0),
				{OverNumber: 0, BallNumber: 2, BowlerID: 7, BatsmanID: 1, Extras: ExtraWide},
			},
			want: Delivery{OverNumber: 0, BallNumber: 3, BowlerID: 7},
		},
		{
			name: "bowler lock comes from the first ball of the current over",
			balls: []BallRecord{
				legal(0, 6, 7, 0),
				legal(1, 1, 9, 1),
				legal(1, 2, 9, 0),
			},
			want: Delivery{OverNumber: 1, BallNumber: 3, BowlerID: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDelivery(tt.balls)
			if got != tt.want {
				t.Errorf("NextDelivery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNextDeliveryIsPure(t *testing.T) {
	balls := []BallRecord{legal(0, 1, 7, 4), legal(0, 2, 7, 0)}
	first := NextDelivery(balls)
	second := NextDelivery(balls)
	if first != second {
		t.Errorf("same log produced different answers: %+v vs %+v", first, second)
	}
}
