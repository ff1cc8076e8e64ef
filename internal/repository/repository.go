package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/storage"
	"github.com/wb-go/wbf/retry"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var forUpdate = clause.Locking{Strength: "UPDATE"}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// transact runs fn in a transaction and repeats it while the database reports
// lock contention. Any other error stops at the first attempt.
func transact(ctx context.Context, db *gorm.DB, strategy retry.Strategy, fn func(tx *gorm.DB) error) error {
	var permanent error
	err := retry.DoContext(ctx, strategy, func() error {
		err := db.WithContext(ctx).Transaction(fn)
		if err == nil || storage.IsTransient(err) {
			return err
		}
		permanent = err
		return nil
	})
	if permanent != nil {
		return permanent
	}
	return err
}

// translate maps gorm's not-found error onto a domain sentinel and wraps the rest.
func translate(err error, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// releaseSeats returns n seats to the tour. The guard keeps the counter from
// going negative; a miss means the counters are already inconsistent.
func releaseSeats(tx *gorm.DB, tourID string, n int, now time.Time) error {
	res := tx.Model(&domain.Tour{}).
		Where("id = ? AND booked_participants >= ?", tourID, n).
		Updates(map[string]any{
			"booked_participants": gorm.Expr("booked_participants - ?", n),
			"updated_at":          now,
		})
	if res.Error != nil {
		return fmt.Errorf("release seats: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("release seats: tour %s holds fewer than %d booked seats", tourID, n)
	}
	return nil
}

func paginate(q *gorm.DB, page domain.Page) *gorm.DB {
	page = page.Normalize()
	return q.Limit(page.Limit).Offset(page.Offset)
}
