package session

import (
	"strconv"

	"scam/internal/schema"
)

var (
	turnRateRef   = schema.KeyRef{Section: schema.RateSection, Key: schema.TurnRateKey}
	lookUpRateRef = schema.KeyRef{Section: schema.RateSection, Key: schema.LookUpRateKey}
)

// Synced reports whether the rate sync flag is on.
func (s *Session) Synced() bool {
	return s.sync
}

// SetSync changes the sync flag. Turning it on copies BaseTurnRate into
// BaseLookUpRate, but only when BaseTurnRate currently holds a valid integer.
func (s *Session) SetSync(on bool) {
	s.setSyncFlag(on)
	if !on {
		return
	}
	turn, ok := s.entries[turnRateRef]
	if !ok || turn.kind == schema.KindBool {
		return
	}
	if n, ok := schema.ParseInt(turn.text); ok {
		s.writeRates(n)
	}
}

func (s *Session) setSyncFlag(on bool) {
	s.sync = on
	if mirror, ok := s.entries[schema.SyncRef]; ok && mirror.kind == schema.KindBool {
		mirror.flag = on
	}
}

func (s *Session) writeRates(n int64) {
	text := strconv.FormatInt(n, 10)
	for _, ref := range []schema.KeyRef{turnRateRef, lookUpRateRef} {
		if rate, ok := s.entries[ref]; ok && rate.kind != schema.KindBool {
			rate.text = text
		}
	}
}
