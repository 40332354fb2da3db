package modpack_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"scam/internal/modpack"
	"scam/internal/preset"
	"scam/internal/schema"
	"scam/internal/testsupport"
)

func TestRenderEmptyDiff(t *testing.T) {
	want := "CustomPlayer : struct.begin {refurl=../ObjPrototypes.cfg; refkey=Player}\nstruct.end"
	if got := modpack.Render(preset.New("diff")); got != want {
		t.Fatalf("Render mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
	if got := modpack.Render(nil); got != want {
		t.Fatalf("Render(nil) = %q", got)
	}
}

func TestRenderSkipsSyncSectionAndKeepsOrder(t *testing.T) {
	diff := preset.New("diff")
	diff.Set(testsupport.TurnRate, schema.Int(150))
	diff.Set(testsupport.LookUpRate, schema.Int(150))
	diff.Set(testsupport.FOV, schema.Int(110))
	diff.Set(schema.SyncRef, schema.Bool(true))
	diff.Set(testsupport.CanSlide, schema.Bool(true))
	diff.Set(testsupport.WalkSpeed, schema.Float(2))

	want := "CustomPlayer : struct.begin {refurl=../ObjPrototypes.cfg; refkey=Player}\n" +
		"   MovementParams : struct.begin\n" +
		"      BaseTurnRate = 150\n" +
		"      BaseLookUpRate = 150\n" +
		"      CanSlide = True\n" +
		"      WalkSpeed = 2.0\n" +
		"   struct.end\n" +
		"   General : struct.begin\n" +
		"      FOV = 110\n" +
		"   struct.end\n" +
		"struct.end"
	if got := modpack.Render(diff); got != want {
		t.Fatalf("Render mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}
