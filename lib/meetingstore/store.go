// Package meetingstore persists scraped meetings, agendas and minutes
// in a local sqlite database. Agenda items and files are stored as
// json columns, the same shape the CLI writes to disk.
package meetingstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"boarddocs-backend/lib/boarddocs"

	_ "embed"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

// Open opens a sqlite database at the given path and ensures the
// schema exists. Use ":memory:" for a throwaway store.
func Open(path string) (Store, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return Store{}, err
	}
	_, err = database.Exec(Schema)
	if err != nil {
		return Store{}, fmt.Errorf("meetingstore schema: %w", err)
	}
	return NewStore(database), nil
}

func (s Store) PutMeetings(ctx context.Context, meetings []boarddocs.Meeting) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, m := range meetings {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO meetings (meeting_id, committee_id, numberdate, name)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (meeting_id) DO UPDATE SET
				committee_id = excluded.committee_id,
				numberdate = excluded.numberdate,
				name = excluded.name`,
			m.ID, m.CommitteeID, m.NumberDate, m.Name,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s Store) Meetings(ctx context.Context, committeeID string) ([]boarddocs.Meeting, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT meeting_id, committee_id, numberdate, name FROM meetings
		WHERE committee_id = ?
		ORDER BY numberdate, meeting_id`,
		committeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []boarddocs.Meeting
	for rows.Next() {
		var m boarddocs.Meeting
		err := rows.Scan(&m.ID, &m.CommitteeID, &m.NumberDate, &m.Name)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func (s Store) PutAgenda(ctx context.Context, agenda boarddocs.Agenda) error {
	items, err := json.Marshal(agenda.Items)
	if err != nil {
		return err
	}
	files, err := json.Marshal(agenda.Files)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO agendas (meeting_id, name, date, description, items, full_text, files)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (meeting_id) DO UPDATE SET
			name = excluded.name,
			date = excluded.date,
			description = excluded.description,
			items = excluded.items,
			full_text = excluded.full_text,
			files = excluded.files`,
		agenda.MeetingID, agenda.Name, agenda.Date, agenda.Description,
		string(items), agenda.FullText, string(files),
	)
	return err
}

func (s Store) Agenda(ctx context.Context, meetingID string) (boarddocs.Agenda, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT meeting_id, name, date, description, items, full_text, files
		FROM agendas WHERE meeting_id = ?`,
		meetingID,
	)

	var agenda boarddocs.Agenda
	var items, files string
	err := row.Scan(
		&agenda.MeetingID, &agenda.Name, &agenda.Date,
		&agenda.Description, &items, &agenda.FullText, &files,
	)
	if err != nil {
		return boarddocs.Agenda{}, err
	}
	err = json.Unmarshal([]byte(items), &agenda.Items)
	if err != nil {
		return boarddocs.Agenda{}, fmt.Errorf("agenda %s items: %w", meetingID, err)
	}
	err = json.Unmarshal([]byte(files), &agenda.Files)
	if err != nil {
		return boarddocs.Agenda{}, fmt.Errorf("agenda %s files: %w", meetingID, err)
	}
	return agenda, nil
}

func (s Store) PutMinutes(ctx context.Context, meetingID, text string) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO minutes (meeting_id, text) VALUES (?, ?)
		ON CONFLICT (meeting_id) DO UPDATE SET text = excluded.text`,
		meetingID, text,
	)
	return err
}

func (s Store) Minutes(ctx context.Context, meetingID string) (string, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT text FROM minutes WHERE meeting_id = ?`,
		meetingID,
	)
	var text string
	err := row.Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return text, nil
}
