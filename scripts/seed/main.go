// Seeds the database: applies the schema and upserts the admin directory
// from a JSON file. Safe to run repeatedly.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/neatify/neatify-api/internal/models"
	"github.com/neatify/neatify-api/pkg/config"
	"github.com/neatify/neatify-api/pkg/database"
)

type seedAdmin struct {
	Email    string `json:"email"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// Matches the unique LOWER(email) index: an email holds at most one admin
// record, so a re-run (or a case variant) is a no-op.
const upsertAdmin = `
	INSERT INTO admins (id, email, location, location_type)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (LOWER(email)) DO NOTHING`

func main() {
	var (
		adminsPath string
		schemaPath string
		timeout    time.Duration
	)

	flag.StringVar(&adminsPath, "admins", filepath.Join("scripts", "seed", "admins.json"), "Path to JSON admins file")
	flag.StringVar(&schemaPath, "schema", filepath.Join("migrations", "001_init.sql"), "Path to schema file")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Overall timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatalf("failed to read schema: %v", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}
	log.Printf("schema applied from %s", schemaPath)

	admins, err := loadAdmins(adminsPath)
	if err != nil {
		log.Fatalf("failed to load admins: %v", err)
	}

	inserted, err := seedAdmins(ctx, db, admins)
	if err != nil {
		log.Fatalf("failed to seed admins: %v", err)
	}
	log.Printf("done: %d of %d admins inserted", inserted, len(admins))
}

// seedAdmins upserts the admin records and reports how many were new.
// Existing emails are skipped, so running it twice changes nothing.
func seedAdmins(ctx context.Context, db *sqlx.DB, admins []seedAdmin) (int, error) {
	inserted := 0
	for _, admin := range admins {
		if !validLocationType(admin.Type) {
			return inserted, fmt.Errorf("invalid location type %q for %s", admin.Type, admin.Email)
		}
		res, err := db.ExecContext(ctx, upsertAdmin, uuid.NewString(), admin.Email, admin.Location, admin.Type)
		if err != nil {
			return inserted, fmt.Errorf("insert admin %s: %w", admin.Email, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
			log.Printf("inserted admin: %s at %s", admin.Email, admin.Location)
		} else {
			log.Printf("admin already exists: %s", admin.Email)
		}
	}
	return inserted, nil
}

func loadAdmins(path string) ([]seedAdmin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var admins []seedAdmin
	if err := json.Unmarshal(data, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func validLocationType(v string) bool {
	switch models.LocationType(v) {
	case models.LocationCampus, models.LocationMunicipality:
		return true
	}
	return false
}
