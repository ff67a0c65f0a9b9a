package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"travelhub/internal/repository"
)

// Scheduler runs the periodic maintenance jobs: completing bookings
// whose trip has ended and purging spent password reset tokens.
type Scheduler struct {
	cron        *cron.Cron
	bookings    *repository.BookingRepository
	resetTokens *repository.ResetTokenRepository
}

func NewScheduler(bookings *repository.BookingRepository, resetTokens *repository.ResetTokenRepository) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		bookings:    bookings,
		resetTokens: resetTokens,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("*/10 * * * *", s.completePastBookings); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@hourly", s.purgeResetTokens); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) completePastBookings() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.bookings.CompletePastBookings(ctx, time.Now())
	if err != nil {
		log.Printf("jobs: complete past bookings: %v", err)
		return
	}
	if n > 0 {
		log.Printf("jobs: marked %d bookings completed", n)
	}
}

func (s *Scheduler) purgeResetTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.resetTokens.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Printf("jobs: purge reset tokens: %v", err)
		return
	}
	if n > 0 {
		log.Printf("jobs: purged %d reset tokens", n)
	}
}
