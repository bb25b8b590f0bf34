package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_persons",
		SQL: `CREATE TABLE IF NOT EXISTS persons (
  id         BIGINT      PRIMARY KEY CHECK (id > 0),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

const seedSQL = `INSERT INTO persons (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`

// EnsureMigrated creates the persons table when it is missing and seeds it with ids.
// Seeding is idempotent and runs on every start so that new roster ids are picked up.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string, ids []int64) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.persons') IS NOT NULL").Scan(&exists); err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if !exists {
		for _, step := range steps {
			stepStart := time.Now()
			if _, err := db.ExecContext(ctx, step.SQL); err != nil {
				logJSON(loc, map[string]any{
					"component":      "database",
					"event":          "db_migration_failed",
					"status":         "error",
					"migration_step": step.Name,
					"error_message":  err.Error(),
					"db_host":        dbHost,
				})
				return fmt.Errorf("migration step %s failed: %w", step.Name, err)
			}
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_step",
				"status":           "success",
				"migration_step":   step.Name,
				"db_host":          dbHost,
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
		}
	}

	for _, id := range ids {
		if _, err := db.ExecContext(ctx, seedSQL, id); err != nil {
			logJSON(loc, map[string]any{
				"component":     "database",
				"event":         "db_seed_failed",
				"status":        "error",
				"person_id":     id,
				"error_message": err.Error(),
				"db_host":       dbHost,
			})
			return fmt.Errorf("seed person %d: %w", id, err)
		}
	}

	logJSON(loc, map[string]any{
		"component":     "database",
		"event":         "db_migration_success",
		"status":        "success",
		"schema_exists": exists,
		"seeded":        len(ids),
		"db_host":       dbHost,
		"duration_ms":   time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
