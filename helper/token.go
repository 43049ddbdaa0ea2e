package helper

import (
	"log"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

var tokenScheduler gocron.Scheduler

// TokenDay keys the daily token sequence. Display numbers restart from 1
// every day, so customers never see a four-digit token.
func TokenDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// FirstTokenOfDay is the value a fresh day's counter is seeded with. Seeding
// above the highest token still held by an active order keeps tokens unique
// on the board when an order crosses midnight: a pending token 7 from last
// night must not collide with today's 7th checkout.
func FirstTokenOfDay(maxActiveToken int) int {
	return maxActiveToken + 1
}

// NextTokenNumber draws the next display number for today. It must run inside
// the same transaction as the order insert: the upsert takes a row lock on the
// day's counter, so two concurrent checkouts can never draw the same number.
func NextTokenNumber(tx *gorm.DB, now time.Time) (int, error) {
	var maxActive int
	err := tx.Model(&model.Order{}).
		Where("status NOT IN ?", []string{constants.STATUS_SERVED, constants.STATUS_CANCELLED}).
		Select("COALESCE(MAX(token_number), 0)").
		Scan(&maxActive).Error
	if err != nil {
		return 0, err
	}

	var last int
	err = tx.Raw(`
        INSERT INTO token_counters (day, last) VALUES (?, ?)
        ON CONFLICT (day) DO UPDATE SET last = token_counters.last + 1
        RETURNING last
    `, TokenDay(now), FirstTokenOfDay(maxActive)).Scan(&last).Error
	if err != nil {
		return 0, err
	}
	return last, nil
}

// StartTokenScheduler prunes token counter rows older than a week, once a day.
func StartTokenScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	tokenScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 30, 0),
			),
		),
		gocron.NewTask(PruneTokenCounters),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Token counter scheduler started (00:30)")
}

func StopTokenScheduler() {
	if tokenScheduler != nil {
		tokenScheduler.Shutdown()
	}
}

// PruneTokenCounters deletes counter rows older than a week. Old rows are
// only housekeeping; uniqueness never depends on them.
func PruneTokenCounters() {
	cutoff := TokenDay(time.Now().AddDate(0, 0, -7))
	result := database.DB.Exec("DELETE FROM token_counters WHERE day < ?", cutoff)
	if result.Error != nil {
		log.Printf("Failed to prune token counters: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Pruned %d old token counters", result.RowsAffected)
	}
}
