package scoring

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoBallRecords is returned by UndoLast when the match has no balls.
var ErrNoBallRecords = errors.New("no ball records to undo")

// BallRepository defines the interface for the per-match ball log and the
// PlayerStat cache it maintains. Append and UndoLast are atomic: the ball
// write and both stat upserts either all apply or none do.
type BallRepository interface {
	AppendBall(ball *BallRecord) error
	ListByMatch(matchID uint) ([]BallRecord, error)
	ListByMatchInsertionOrder(matchID uint) ([]BallRecord, error)
	LastByMatch(matchID uint) (*BallRecord, error)
	UndoLast(matchID uint) (*BallRecord, error)
	StatsByMatch(matchID uint) ([]PlayerStat, error)
	RebuildStats(matchID uint) ([]PlayerStat, error)
}

type ballRepository struct {
	db *gorm.DB
}

// NewBallRepository creates a new instance of BallRepository
func NewBallRepository(db *gorm.DB) BallRepository {
	return &ballRepository{db: db}
}

// AppendBall inserts the ball and applies its stat deltas to the batsman and
// bowler rows of the PlayerStat cache in a single transaction.
func (r *ballRepository) AppendBall(ball *BallRecord) error {
	batsmanDelta, bowlerDelta := BallDeltas(*ball)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ball).Error; err != nil {
			return err
		}
		if err := upsertStatDelta(tx, ball.MatchID, ball.BatsmanID, batsmanDelta); err != nil {
			return err
		}
		return upsertStatDelta(tx, ball.MatchID, ball.BowlerID, bowlerDelta)
	})
}

// ListByMatch returns the log in display order: (over, ball, insertion id).
func (r *ballRepository) ListByMatch(matchID uint) ([]BallRecord, error) {
	var balls []BallRecord
	err := r.db.Where("match_id = ?", matchID).
		Order("over_number asc, ball_number asc, id asc").
		Find(&balls).Error
	return balls, err
}

// ListByMatchInsertionOrder returns the log ordered by insertion id, the
// ordering the progression engine and undo operate on.
func (r *ballRepository) ListByMatchInsertionOrder(matchID uint) ([]BallRecord, error) {
	var balls []BallRecord
	err := r.db.Where("match_id = ?", matchID).Order("id asc").Find(&balls).Error
	return balls, err
}

// LastByMatch returns the most recently inserted ball (highest id), or
// (nil, nil) when the match has no balls.
func (r *ballRepository) LastByMatch(matchID uint) (*BallRecord, error) {
	var ball BallRecord
	err := r.db.Where("match_id = ?", matchID).Order("id desc").First(&ball).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ball, nil
}

// UndoLast deletes the most recently inserted ball for the match and applies
// the additive inverse of its stat contribution, all in one transaction.
// Returns ErrNoBallRecords when the match has no balls; nothing is mutated
// in that case.
func (r *ballRepository) UndoLast(matchID uint) (*BallRecord, error) {
	var undone BallRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", matchID).Order("id desc").First(&undone).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoBallRecords
			}
			return err
		}

		if err := tx.Unscoped().Delete(&BallRecord{}, undone.ID).Error; err != nil {
			return err
		}

		batsmanDelta, bowlerDelta := BallDeltas(undone)
		if err := upsertStatDelta(tx, matchID, undone.BatsmanID, batsmanDelta.Inverse()); err != nil {
			return err
		}
		return upsertStatDelta(tx, matchID, undone.BowlerID, bowlerDelta.Inverse())
	})
	if err != nil {
		return nil, err
	}
	return &undone, nil
}

func (r *ballRepository) StatsByMatch(matchID uint) ([]PlayerStat, error) {
	var stats []PlayerStat
	err := r.db.Where("match_id = ?", matchID).Order("player_id asc").Find(&stats).Error
	return stats, err
}

// RebuildStats drops the PlayerStat cache for the match and replays the ball
// log through the same delta pathway normal scoring uses. The log is the
// source of truth; this reconciles the cache after any suspected drift.
func (r *ballRepository) RebuildStats(matchID uint) ([]PlayerStat, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("match_id = ?", matchID).Delete(&PlayerStat{}).Error; err != nil {
			return err
		}

		var balls []BallRecord
		if err := tx.Where("match_id = ?", matchID).Order("id asc").Find(&balls).Error; err != nil {
			return err
		}

		for _, ball := range balls {
			batsmanDelta, bowlerDelta := BallDeltas(ball)
			if err := upsertStatDelta(tx, matchID, ball.BatsmanID, batsmanDelta); err != nil {
				return err
			}
			if err := upsertStatDelta(tx, matchID, ball.BowlerID, bowlerDelta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.StatsByMatch(matchID)
}

// upsertStatDelta accumulates a delta into the (player, match) stat row,
// inserting the row if it does not exist yet. Works on postgres and sqlite
// via the shared "excluded" pseudo-table.
func upsertStatDelta(tx *gorm.DB, matchID, playerID uint, delta StatDelta) error {
	stat := PlayerStat{
		PlayerID:     playerID,
		MatchID:      matchID,
		RunsScored:   delta.Runs,
		BallsFaced:   delta.Balls,
		WicketsTaken: delta.Wickets,
		OversBowled:  delta.Overs,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_id"}, {Name: "match_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"runs_scored":   gorm.Expr("player_stats.runs_scored + excluded.runs_scored"),
			"balls_faced":   gorm.Expr("player_stats.balls_faced + excluded.balls_faced"),
			"wickets_taken": gorm.Expr("player_stats.wickets_taken + excluded.wickets_taken"),
			"overs_bowled":  gorm.Expr("player_stats.overs_bowled + excluded.overs_bowled"),
			"updated_at":    gorm.Expr("excluded.updated_at"),
		}),
	}).Create(&stat).Error
}
