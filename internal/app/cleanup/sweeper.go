package cleanup

import (
	"context"
	"log"
	"time"

	"museum-api/internal/domain/users"

	"gorm.io/gorm"
)

// Sweeper periodically deletes confirmation codes past their expiry.
// It runs independently of request traffic; confirmation handlers also
// reject expired codes on sight, so the sweeper is garbage collection
// rather than an enforcement point.
type Sweeper struct {
	db       *gorm.DB
	interval time.Duration
}

func NewSweeper(db *gorm.DB, interval time.Duration) *Sweeper {
	return &Sweeper{db: db, interval: interval}
}

func (s *Sweeper) Start(ctx context.Context) {
	log.Printf("Confirmation-code sweeper starting (every %s)", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := s.Sweep(time.Now())
			if err != nil {
				log.Println("Confirmation-code sweep failed:", err)
			} else if removed > 0 {
				log.Printf("Removed %d expired confirmation codes", removed)
			}
		case <-ctx.Done():
			log.Println("Confirmation-code sweeper stopping")
			return
		}
	}
}

// Sweep deletes every code expired as of now and reports how many went.
func (s *Sweeper) Sweep(now time.Time) (int64, error) {
	result := s.db.Where("expires_at < ?", now).Delete(&users.ConfirmationCode{})
	return result.RowsAffected, result.Error
}
