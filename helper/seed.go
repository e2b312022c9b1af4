package helper

import (
	"context"
	"errors"
	"fmt"
	"reservas/config"
	"reservas/infras/postgres"
	"reservas/shared/amount"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Statement is one parameterized seed query.
type Statement struct {
	Query string
	Args  []any
}

type seedReservation struct {
	name      string
	roomID    int64
	partySize int64
	stateID   int64
	total     amount.Amount
	start     time.Time
	end       time.Time
}

var (
	seedStates = []string{"por cobrar", "pagado"}
	seedRooms  = []string{"HAB 1", "HAB 2", "HAB 3"}

	seedReservations = []seedReservation{
		{name: "Reserva 1", roomID: 1, partySize: 2, stateID: 1, total: amount.FromCents(10000), start: day(2025, 12, 1), end: day(2025, 12, 5)},
		{name: "Reserva 2", roomID: 2, partySize: 3, stateID: 2, total: amount.FromCents(20000), start: day(2025, 12, 6), end: day(2025, 12, 10)},
		{name: "Reserva 3", roomID: 3, partySize: 4, stateID: 1, total: amount.FromCents(30000), start: day(2025, 12, 11), end: day(2025, 12, 15)},
	}

	seededTables = []string{"estado", "casas", "reservas", "anotaciones"}
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SeedStatements empties every table and inserts the sample states, rooms and reservations.
// States and rooms get fixed ids so the reservations can reference them; sequences are moved
// past the inserted rows afterwards.
func SeedStatements() []Statement {
	var statements []Statement

	for i := len(seededTables) - 1; i >= 0; i-- {
		query, args := sqlbuilder.PostgreSQL.NewDeleteBuilder().DeleteFrom(seededTables[i]).Build()
		statements = append(statements, Statement{Query: query, Args: args})
	}

	states := sqlbuilder.PostgreSQL.NewInsertBuilder().InsertInto("estado").Cols("id", "nombre")
	for i, name := range seedStates {
		states.Values(i+1, name)
	}

	rooms := sqlbuilder.PostgreSQL.NewInsertBuilder().InsertInto("casas").Cols("id", "nombre")
	for i, name := range seedRooms {
		rooms.Values(i+1, name)
	}

	reservations := sqlbuilder.PostgreSQL.NewInsertBuilder().
		InsertInto("reservas").
		Cols("nombre", "casa_id", "cant_personas", "estado_id", "total", "fecha_inicio", "fecha_fin")
	for _, r := range seedReservations {
		reservations.Values(r.name, r.roomID, r.partySize, r.stateID, r.total, r.start, r.end)
	}

	for _, builder := range []*sqlbuilder.InsertBuilder{states, rooms, reservations} {
		query, args := builder.Build()
		statements = append(statements, Statement{Query: query, Args: args})
	}

	for _, table := range seededTables {
		statements = append(statements, Statement{
			Query: fmt.Sprintf(
				"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
				table,
			),
		})
	}

	return statements
}

// Seed replaces the content of the database with the sample data in one transaction.
func Seed(cfg *config.Config) error {
	db := postgres.CreatePostgresWriteConn(*cfg)
	if db == nil {
		return errors.New("could not connect to database")
	}

	conn := postgres.NewFromDB(db)
	defer conn.Close()

	return RunSeed(context.Background(), conn)
}

func RunSeed(ctx context.Context, conn *postgres.Connection) error {
	err := conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, statement := range SeedStatements() {
			if _, err := tx.ExecContext(ctx, statement.Query, statement.Args...); err != nil {
				return fmt.Errorf("failed to run %q: %w", statement.Query, err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("error seeding database: %w", err)
	}

	log.Info().
		Int("states", len(seedStates)).
		Int("rooms", len(seedRooms)).
		Int("reservations", len(seedReservations)).
		Msg("Database seeded successfully")

	return nil
}
