package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestGetText(t *testing.T) {
	root, err := html.Parse(strings.NewReader(
		"<html><body><div>Subject\n<b>Approval</b> of Minutes</div></body></html>",
	))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Subject\nApproval of Minutes", GetText(root))
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "Budget Report.pdf", CleanText("  Budget \n\n Report.pdf\t"))
	require.Equal(t, "", CleanText(" \n\t "))
}
