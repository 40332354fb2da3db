package inifile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"scam/internal/inifile"
)

func TestReadKeepsOrderAndInlineText(t *testing.T) {
	src := `; leading comment
[MovementParams]
BaseTurnRate = 100 ; Horizontal turn rate
; WalkSpeed = 1
SprintSpeed = 1.5

[Aiming]
SyncTurnRate = False
`
	got, err := inifile.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	want := []inifile.Section{
		{Name: "MovementParams", Pairs: []inifile.Pair{
			{Key: "BaseTurnRate", Value: "100 ; Horizontal turn rate"},
			{Key: "SprintSpeed", Value: "1.5"},
		}},
		{Name: "Aiming", Pairs: []inifile.Pair{
			{Key: "SyncTurnRate", Value: "False"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected sections (-want +got):\n%s", diff)
	}
}

func TestReadTakesValuesLiterally(t *testing.T) {
	src := "[General]\nName = \"abc\"\nPath = C:\\dir\\\nNext = 5\n"
	got, err := inifile.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	want := []inifile.Section{
		{Name: "General", Pairs: []inifile.Pair{
			{Key: "Name", Value: `"abc"`},
			{Key: "Path", Value: `C:\dir\`},
			{Key: "Next", Value: "5"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected sections (-want +got):\n%s", diff)
	}
}

func TestReadIsCaseSensitive(t *testing.T) {
	got, err := inifile.Read(strings.NewReader("[S]\nBaseTurnRate = 1\nbaseturnrate = 2\n"))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(got) != 1 || len(got[0].Pairs) != 2 {
		t.Fatalf("expected two distinct keys, got %+v", got)
	}
}

func TestWriteSkipsEmptySectionsAndRoundTrips(t *testing.T) {
	sections := []inifile.Section{
		{Name: "Empty"},
		{Name: "MovementParams", Pairs: []inifile.Pair{{Key: "BaseTurnRate", Value: "150"}}},
		{Name: "Aiming", Pairs: []inifile.Pair{{Key: "SyncTurnRate", Value: "True"}}},
	}
	var buf bytes.Buffer
	if err := inifile.Write(&buf, sections); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if strings.Contains(buf.String(), "[Empty]") {
		t.Fatalf("expected empty section to be skipped, got %q", buf.String())
	}

	back, err := inifile.Read(&buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if diff := cmp.Diff(sections[1:], back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	err := inifile.Write(&buf, []inifile.Section{
		{Name: "MovementParams", Pairs: []inifile.Pair{{Key: "BaseTurnRate", Value: "150"}, {Key: "WalkSpeed", Value: "1.0"}}},
		{Name: "Empty"},
		{Name: "Aiming", Pairs: []inifile.Pair{{Key: "SyncTurnRate", Value: "True"}}},
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "[MovementParams]\nBaseTurnRate = 150\nWalkSpeed = 1.0\n\n[Aiming]\nSyncTurnRate = True\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output (-want +got):\n%s", cmp.Diff(want, got))
	}
}
