package scoring

// Delivery addresses the next ball to be bowled. BowlerID is the bowler
// locked in for the current over, or 0 when a fresh over starts and the
// bowler must be chosen anew.
type Delivery struct {
	OverNumber int  `json:"over_number"`
	BallNumber int  `json:"ball_number"`
	BowlerID   uint `json:"bowler_id"`
}

// NextDelivery computes the address of the next delivery from the match's
// ball log in insertion order. It is pure: same log, same answer.
//
// Rules:
//   - empty log: over 0, ball 1, no bowler yet
//   - last ball was an extra flagged repeat_ball: the delivery is re-bowled
//     at the same address by the same bowler
//   - last ball number < 6: next ball in the same over, bowler carried over
//     (extras without repeat_ball advance like legal deliveries)
//   - last ball number == 6: new over, ball 1, bowler choice is open
func NextDelivery(balls []BallRecord) Delivery {
	if len(balls) == 0 {
		return Delivery{OverNumber: 0, BallNumber: 1}
	}

	last := balls[len(balls)-1]

	if last.Extras.IsExtra() && last.RepeatBall {
		return Delivery{
			OverNumber: last.OverNumber,
			BallNumber: last.BallNumber,
			BowlerID:   overBowler(balls, last.OverNumber),
		}
	}

	if last.BallNumber < 6 {
		return Delivery{
			OverNumber: last.OverNumber,
			BallNumber: last.BallNumber + 1,
			BowlerID:   overBowler(balls, last.OverNumber),
		}
	}

	return Delivery{OverNumber: last.OverNumber + 1, BallNumber: 1}
}

// overBowler returns the bowler who opened the given over, derived from the
// log itself rather than client-held state. Once ball 1 of an over is
// recorded, that bowler is locked for the rest of the over.
func overBowler(balls []BallRecord, overNumber int) uint {
	for _, b := range balls {
		if b.OverNumber == overNumber {
			return b.BowlerID
		}
	}
	return 0
}
