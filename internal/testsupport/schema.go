package testsupport

import (
	"strings"
	"testing"

	"scam/internal/schema"
	"scam/internal/session"
)

// SchemaText is a small default-values definition covering every value kind
// and the reserved sync and rate keys.
const SchemaText = `; Default values for movement and aiming
[General]
FOV = 90 ; Field of view
ShowHints = true ; Show control hints
Profile = standard

[MovementParams]
WalkSpeed = 1.0 ; Walk speed multiplier
SprintSpeed = 1.5 ; Sprint speed multiplier
CanSlide = false
BaseTurnRate = 100 ; Horizontal turn rate
BaseLookUpRate = 100 ; Vertical look rate

[Aiming]
SyncTurnRate = false ; Keep turn and look-up rates equal
`

// Refs used across tests.
var (
	FOV         = schema.KeyRef{Section: "General", Key: "FOV"}
	ShowHints   = schema.KeyRef{Section: "General", Key: "ShowHints"}
	Profile     = schema.KeyRef{Section: "General", Key: "Profile"}
	WalkSpeed   = schema.KeyRef{Section: "MovementParams", Key: "WalkSpeed"}
	SprintSpeed = schema.KeyRef{Section: "MovementParams", Key: "SprintSpeed"}
	CanSlide    = schema.KeyRef{Section: "MovementParams", Key: "CanSlide"}
	TurnRate    = schema.KeyRef{Section: "MovementParams", Key: "BaseTurnRate"}
	LookUpRate  = schema.KeyRef{Section: "MovementParams", Key: "BaseLookUpRate"}
)

// MustSchema parses SchemaText (or the provided text) or fails the test.
func MustSchema(t testing.TB, text ...string) *schema.Schema {
	t.Helper()

	src := SchemaText
	if len(text) > 0 {
		src = text[0]
	}
	s, err := schema.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("schema.Parse: %v", err)
	}
	return s
}

// NewSession returns a session over MustSchema.
func NewSession(t testing.TB) *session.Session {
	t.Helper()
	return session.New(MustSchema(t))
}
