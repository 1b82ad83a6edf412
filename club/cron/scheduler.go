package cron

import (
	"log"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/services"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron             *cron.Cron
	integrityService *services.IntegrityService
}

func NewScheduler(integrityService *services.IntegrityService) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:             c,
		integrityService: integrityService,
	}
}

// Start schedules the integrity report to run at minute 0 of every hour.
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	_, err := s.cron.AddFunc("0 0 * * * *", s.runIntegrityReport)
	if err != nil {
		log.Printf("Error scheduling integrity report job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

// runIntegrityReport logs how many stored references no longer resolve.
// Deletes never cascade, so this drift is expected; the job only surfaces it.
func (s *Scheduler) runIntegrityReport() {
	report, err := s.integrityService.Report()
	if err != nil {
		log.Printf("Error running integrity report: %v", err)
		return
	}

	if report.DanglingPlayerRefs == 0 && report.DanglingTeamRefs == 0 {
		log.Println("Integrity report: no dangling references")
		return
	}

	log.Printf("Integrity report: %d dangling player reference(s) across %d team(s), %d dangling team reference(s) across %d tournament(s)",
		report.DanglingPlayerRefs, report.TeamsAffected, report.DanglingTeamRefs, report.TournamentsAffected)
}

// RunNow manually triggers the integrity report job (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering integrity report job...")
	s.runIntegrityReport()
}
