//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plain text behind defaultPasswordHash.
const DefaultPassword = "password123"

const defaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestCustomer(t *testing.T, db DBLike, username string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO customers (first_name, last_name, email, phone_number, address, username, password_hash)
		VALUES ('Test', 'Customer', $1, '555-0100', '1 Main St', $2, $3)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id`,
		username+"@example.com", username, defaultPasswordHash).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestAdmin(t *testing.T, db DBLike, username string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO admins (first_name, last_name, email, phone_number, username, password_hash, role)
		VALUES ('Test', 'Admin', $1, '555-0200', $2, $3, 'Fleet Manager')
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id`,
		username+"@example.com", username, defaultPasswordHash).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestVehicle(t *testing.T, db DBLike, registrationNumber string, dailyRateCents int64, available bool) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO vehicles (make, model, year, color, registration_number, availability, daily_rate_cents)
		VALUES ('Toyota', 'Corolla', 2022, 'White', $1, $2, $3)
		RETURNING id`,
		registrationNumber, available, dailyRateCents).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestReservation writes status verbatim so tests can seed values the service never produces.
func CreateTestReservation(t *testing.T, db DBLike, customerID, vehicleID int64, start, end time.Time, totalCostCents int64, status string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO reservations (customer_id, vehicle_id, start_date, end_date, total_cost_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		customerID, vehicleID, start, end, totalCostCents, status).Scan(&id)
	require.NoError(t, err)

	return id
}

func VehicleAvailability(t *testing.T, db DBLike, vehicleID int64) bool {
	t.Helper()

	var available bool
	err := db.QueryRow(context.Background(), "SELECT availability FROM vehicles WHERE id = $1", vehicleID).Scan(&available)
	require.NoError(t, err)
	return available
}

func ReservationStatus(t *testing.T, db DBLike, reservationID int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", reservationID).Scan(&status)
	require.NoError(t, err)
	return status
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO admins (first_name, last_name, email, username, password_hash, role)
		VALUES ('Root', 'Admin', 'root@example.com', 'root', $1, 'Super Admin')
		ON CONFLICT (username) DO NOTHING;
	`, defaultPasswordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
