package cmd

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"

	"boarddocs-backend/lib/boarddocs"
)

func writeMeetingsCsv(path string, meetings []boarddocs.Meeting) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Write([]string{"meeting_id", "committee_id", "numberdate", "name"})
	for _, m := range meetings {
		w.Write([]string{m.ID, m.CommitteeID, m.NumberDate, m.Name})
	}
	w.Flush()

	return errors.Join(w.Error(), f.Close())
}

func writeAgendaJson(path string, agenda boarddocs.Agenda) error {
	serialized, err := json.MarshalIndent(agenda, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, serialized, 0644)
}
