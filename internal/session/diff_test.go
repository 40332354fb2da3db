package session_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"scam/internal/preset"
	"scam/internal/schema"
	"scam/internal/session"
	"scam/internal/testsupport"
)

func items(p *preset.Preset) []string {
	var out []string
	for _, item := range p.Items() {
		out = append(out, item.Ref.String()+"="+item.Value.Kind().String()+":"+item.Value.String())
	}
	return out
}

func TestDiffEmptyForDefaults(t *testing.T) {
	s := testsupport.NewSession(t)
	if d := s.Diff(); !d.IsEmpty() {
		t.Fatalf("expected empty diff, got %v", items(d))
	}
	if len(s.ChangedKeys()) != 0 {
		t.Fatalf("expected no changed keys, got %v", s.ChangedKeys())
	}
}

func TestDiffSingleChangedKey(t *testing.T) {
	s := testsupport.NewSession(t)
	if err := s.SetRaw(testsupport.TurnRate, "150"); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}
	want := []string{"MovementParams.BaseTurnRate=int:150"}
	if diff := cmp.Diff(want, items(s.Diff())); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestDiffComparesRenderingNotNumbers(t *testing.T) {
	s := testsupport.NewSession(t)
	if err := s.SetRaw(testsupport.FOV, "90.0"); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}
	if err := s.SetRaw(testsupport.WalkSpeed, "1"); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}
	want := []string{"General.FOV=float:90.0", "MovementParams.WalkSpeed=int:1"}
	if diff := cmp.Diff(want, items(s.Diff())); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestDiffIncludesTogglesAndStrings(t *testing.T) {
	s := testsupport.NewSession(t)
	if err := s.SetBool(testsupport.ShowHints, false); err != nil {
		t.Fatalf("SetBool: %v", err)
	}
	if err := s.SetRaw(testsupport.Profile, "competitive"); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}
	want := []string{"General.ShowHints=bool:False", "General.Profile=string:competitive"}
	if diff := cmp.Diff(want, items(s.Diff())); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestDiffForcesSyncFlag(t *testing.T) {
	s := testsupport.NewSession(t)
	s.SetSync(true)
	want := []string{"Aiming.SyncTurnRate=bool:True"}
	if diff := cmp.Diff(want, items(s.Diff())); diff != "" {
		t.Fatalf("unexpected diff with sync only (-want +got):\n%s", diff)
	}

	if err := s.SetRaw(testsupport.TurnRate, "80"); err != nil {
		t.Fatalf("SetRaw: %v", err)
	}
	requireText(t, s, testsupport.LookUpRate, "80")
	want = []string{
		"MovementParams.BaseTurnRate=int:80",
		"MovementParams.BaseLookUpRate=int:80",
		"Aiming.SyncTurnRate=bool:True",
	}
	if diff := cmp.Diff(want, items(s.Diff())); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestDiffForcesSyncEvenWhenDefault(t *testing.T) {
	sch := testsupport.MustSchema(t, "[MovementParams]\nBaseTurnRate = 100\nBaseLookUpRate = 100\n[Aiming]\nSyncTurnRate = True\n")
	s := session.New(sch)
	if s.Changed(schema.SyncRef) {
		t.Fatal("sync matches its default")
	}
	if s.Diff().IsEmpty() {
		t.Fatal("expected sync flag in diff regardless of default")
	}
}

func TestDiffRoundTrip(t *testing.T) {
	s := testsupport.NewSession(t)
	edits := map[schema.KeyRef]string{
		testsupport.FOV:         "110",
		testsupport.SprintSpeed: "2.25",
		testsupport.Profile:     "custom",
		testsupport.TurnRate:    "75",
	}
	for ref, text := range edits {
		if err := s.SetRaw(ref, text); err != nil {
			t.Fatalf("SetRaw(%s): %v", ref, err)
		}
	}
	if err := s.SetBool(testsupport.CanSlide, true); err != nil {
		t.Fatalf("SetBool: %v", err)
	}
	s.SetSync(true)

	replay := testsupport.NewSession(t)
	if skipped := replay.Apply(s.Diff()); len(skipped) != 0 {
		t.Fatalf("unexpected skipped keys %v", skipped)
	}
	if diff := cmp.Diff(snapshot(s), snapshot(replay)); diff != "" {
		t.Fatalf("round trip mismatch (-original +replay):\n%s", diff)
	}
	if diff := cmp.Diff(s.ChangedKeys(), replay.ChangedKeys()); diff != "" {
		t.Fatalf("changed keys mismatch (-original +replay):\n%s", diff)
	}
}
