package main

import (
	"fmt"
	"log"
	"os"

	"foome-hcm/internal/app"
	"foome-hcm/internal/auth"
	"foome-hcm/internal/company"
	"foome-hcm/internal/document"
	"foome-hcm/internal/employee"
	"foome-hcm/internal/notification"
	"foome-hcm/internal/onboarding"
	"foome-hcm/internal/role"
	"foome-hcm/internal/shared/connection"
	"foome-hcm/internal/team"
	"foome-hcm/internal/timeoff"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database schema management",
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema for every module",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		if err := db.AutoMigrate(
			&company.Company{},
			&auth.User{},
			&employee.Employee{},
			&employee.RoleAssignment{},
			&employee.TeamMember{},
			&employee.SubteamMember{},
			&role.Role{},
			&role.Course{},
			&role.ComplementaryCourse{},
			&role.TechnicalSkill{},
			&role.BehavioralSkill{},
			&role.Language{},
			&team.Team{},
			&team.Subteam{},
			&document.Document{},
			&timeoff.TimeOffRequest{},
			&onboarding.OnboardingTask{},
			&onboarding.OnboardingAssignment{},
			&notification.Notification{},
		); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}

		if err := migrateInfra(db); err != nil {
			return err
		}

		fmt.Println("migrations applied")
		return nil
	},
}

// migrateInfra creates the tables gorm models do not cover: the outbox and
// the per-company counters.
func migrateInfra(db *gorm.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id UUID PRIMARY KEY,
			request_id VARCHAR(64),
			aggregate_type VARCHAR(50) NOT NULL,
			aggregate_id VARCHAR(64) NOT NULL,
			event_type VARCHAR(50) NOT NULL,
			topic VARCHAR(100) NOT NULL,
			payload JSONB NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			retry_count INT NOT NULL DEFAULT 0,
			last_error TEXT,
			next_retry_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			sent_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
			ON outbox_events (status, next_retry_at)`,
		`CREATE TABLE IF NOT EXISTS company_counters (
			company_id UUID NOT NULL,
			counter_type VARCHAR(50) NOT NULL,
			last_value BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (company_id, counter_type)
		)`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate infra: %w", err)
		}
	}
	return nil
}

func openDB() (*gorm.DB, error) {
	cfg := app.LoadConfig()
	return connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		3,
	)
}

func main() {
	rootCmd.AddCommand(upCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
