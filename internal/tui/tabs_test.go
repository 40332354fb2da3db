package tui_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"scam/internal/testsupport"
	"scam/internal/tui"
)

func TestBuildTabsOrder(t *testing.T) {
	tabs := tui.BuildTabs(testsupport.MustSchema(t))

	got := map[string][]string{}
	var order []string
	for _, tab := range tabs {
		order = append(order, tab.Name)
		for _, row := range tab.Rows {
			got[tab.Name] = append(got[tab.Name], row.Ref.String())
		}
	}

	if diff := cmp.Diff([]string{"General", "MovementParams", "Aiming"}, order); diff != "" {
		t.Fatalf("tab order (-want +got):\n%s", diff)
	}
	want := map[string][]string{
		"General":        {"General.FOV", "General.ShowHints", "General.Profile"},
		"MovementParams": {"MovementParams.WalkSpeed", "MovementParams.SprintSpeed", "MovementParams.CanSlide"},
		"Aiming":         {"Aiming.SyncTurnRate", "MovementParams.BaseTurnRate", "MovementParams.BaseLookUpRate"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
	if !tabs[2].Rows[0].IsSync() {
		t.Fatal("expected sync toggle first on the Aiming tab")
	}
}

func TestBuildTabsMovementFirstInSchemaStillLast(t *testing.T) {
	sch := testsupport.MustSchema(t, "[MovementParams]\nBaseTurnRate = 1\nBaseLookUpRate = 1\n\n[Camera]\nZoom = 1.5\n")
	tabs := tui.BuildTabs(sch)
	if len(tabs) != 2 || tabs[0].Name != "Camera" || tabs[1].Name != "Aiming" {
		t.Fatalf("unexpected tabs %+v", tabs)
	}
	if len(tabs[1].Rows) != 3 {
		t.Fatalf("expected sync plus two rate rows, got %+v", tabs[1].Rows)
	}
}
