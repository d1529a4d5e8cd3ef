package meetingstore

import (
	"context"
	"testing"
	"time"

	"boarddocs-backend/lib/boarddocs"
	"boarddocs-backend/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestStore(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:meetingstore")
	defer cleanup()

	store, err := Open(":memory:")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		meetings, err := store.Meetings(ctx, "unknown-committee")
		require.NoError(t, err)
		require.Len(t, meetings, 0)
	}
	{
		err := store.PutMeetings(ctx, []boarddocs.Meeting{
			{ID: "M2", CommitteeID: "A", NumberDate: "20240101", Name: "January Meeting"},
			{ID: "M1", CommitteeID: "A", NumberDate: "20231215", Name: "December Meeting"},
			{ID: "M3", CommitteeID: "B", NumberDate: "20240201", Name: "February Meeting"},
		})
		require.NoError(t, err)

		// upserts do not duplicate
		err = store.PutMeetings(ctx, []boarddocs.Meeting{
			{ID: "M2", CommitteeID: "A", NumberDate: "20240101", Name: "January Meeting (amended)"},
		})
		require.NoError(t, err)

		meetings, err := store.Meetings(ctx, "A")
		require.NoError(t, err)
		diff := cmp.Diff([]boarddocs.Meeting{
			{ID: "M1", CommitteeID: "A", NumberDate: "20231215", Name: "December Meeting"},
			{ID: "M2", CommitteeID: "A", NumberDate: "20240101", Name: "January Meeting (amended)"},
		}, meetings)
		if diff != "" {
			t.Fatal(diff)
		}
	}
	{
		agenda := boarddocs.Agenda{
			MeetingID:   "M2",
			Name:        "January Meeting",
			Date:        "Monday, January 1, 2024",
			Description: "Monthly meeting of the governing board.",
			Items:       []string{"1. CONSENT AGENDA", "1.1 Approval of Minutes"},
			FullText:    "1. CONSENT AGENDA\n1.1 Approval of Minutes\n",
			Files: []boarddocs.FileAttachment{
				{Item: "1.1 Approval of Minutes", Name: "minutes-draft.pdf", Href: "/files/minutes-draft.pdf"},
			},
		}
		err := store.PutAgenda(ctx, agenda)
		require.NoError(t, err)

		stored, err := store.Agenda(ctx, "M2")
		require.NoError(t, err)
		diff := cmp.Diff(agenda, stored)
		if diff != "" {
			t.Fatal(diff)
		}
	}
	{
		text, err := store.Minutes(ctx, "M2")
		require.NoError(t, err)
		require.Equal(t, "", text)

		err = store.PutMinutes(ctx, "M2", "The meeting was called to order at 7:00 PM.")
		require.NoError(t, err)

		text, err = store.Minutes(ctx, "M2")
		require.NoError(t, err)
		require.Equal(t, "The meeting was called to order at 7:00 PM.", text)
	}
}
