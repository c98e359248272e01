package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"marine-guardian/internal/models"
)

const selectColumns = `
	SELECT id, common_name, scientific_name, conservation_status, location_sighted, date_recorded
	FROM species`

var orderClauses = map[models.SortKey]string{
	models.SortInsertion: "ORDER BY id DESC",
	models.SortName:      "ORDER BY common_name ASC, id ASC",
	models.SortDate:      "ORDER BY date_recorded DESC, id DESC",
}

// Create inserts a sighting stamped with today's date and returns its id
func (s *Store) Create(ctx context.Context, in models.SightingInput) (int64, error) {
	var id int64
	recorded := s.now().Format(models.DateLayout)

	err := s.withConn(ctx, opCreate, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `
			INSERT INTO species (common_name, scientific_name, conservation_status, location_sighted, date_recorded)
			VALUES (?, ?, ?, ?, ?)`,
			in.CommonName,
			in.ScientificName,
			string(in.Status),
			in.Location,
			recorded,
		)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug(component, "sighting created", map[string]interface{}{
		"id":            id,
		"date_recorded": recorded,
	})
	return id, nil
}

// FetchAll reads every sighting in the requested order. Unknown keys use
// the insertion order (newest first).
func (s *Store) FetchAll(ctx context.Context, key models.SortKey) ([]models.Sighting, error) {
	order, ok := orderClauses[key]
	if !ok {
		order = orderClauses[models.SortInsertion]
	}

	var out []models.Sighting
	err := s.withConn(ctx, opFetch, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, selectColumns+"\n\t"+order)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]models.Sighting, 0)
		for rows.Next() {
			sighting, err := scanSighting(rows)
			if err != nil {
				return err
			}
			out = append(out, sighting)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get reads one sighting, returning models.ErrNotFound when id is unused
func (s *Store) Get(ctx context.Context, id int64) (models.Sighting, error) {
	var sighting models.Sighting
	err := s.withConn(ctx, opGet, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, selectColumns+"\n\tWHERE id = ?", id)
		var err error
		sighting, err = scanSighting(row)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sighting{}, fmt.Errorf("sighting %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Sighting{}, err
	}
	return sighting, nil
}

// Update replaces the editable fields of row id and returns the number of
// rows affected (0 when id does not exist). id and date_recorded are kept.
func (s *Store) Update(ctx context.Context, id int64, in models.SightingInput) (int64, error) {
	var affected int64
	err := s.withConn(ctx, opUpdate, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `
			UPDATE species SET
				common_name = ?, scientific_name = ?, conservation_status = ?, location_sighted = ?
			WHERE id = ?`,
			in.CommonName,
			in.ScientificName,
			string(in.Status),
			in.Location,
			id,
		)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug(component, "sighting updated", map[string]interface{}{
		"id":       id,
		"affected": affected,
	})
	return affected, nil
}

// Delete removes row id and returns the number of rows affected
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := s.withConn(ctx, opDelete, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `DELETE FROM species WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug(component, "sighting deleted", map[string]interface{}{
		"id":       id,
		"affected": affected,
	})
	return affected, nil
}

// AggregateByStatus counts rows per stored conservation_status value.
// Values are grouped verbatim; NULL groups under the empty string.
func (s *Store) AggregateByStatus(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	err := s.withConn(ctx, opAggregate, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT COALESCE(conservation_status, ''), COUNT(*)
			FROM species
			GROUP BY COALESCE(conservation_status, '')`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				status string
				n      int
			)
			if err := rows.Scan(&status, &n); err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			counts[status] = n
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSighting(row rowScanner) (models.Sighting, error) {
	var (
		sighting   models.Sighting
		scientific sql.NullString
		status     sql.NullString
		location   sql.NullString
		recorded   string
	)
	if err := row.Scan(&sighting.ID, &sighting.CommonName, &scientific, &status, &location, &recorded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sighting{}, err
		}
		return models.Sighting{}, fmt.Errorf("scan: %w", err)
	}

	date, err := time.Parse(models.DateLayout, recorded)
	if err != nil {
		return models.Sighting{}, fmt.Errorf("parse date_recorded %q: %w", recorded, err)
	}

	sighting.ScientificName = scientific.String
	sighting.ConservationStatus = models.ConservationStatus(status.String)
	sighting.LocationSighted = location.String
	sighting.DateRecorded = date
	return sighting, nil
}
