package service

import "time"

// SetClock replaces the draft service's time source in tests.
func (s *DraftService) SetClock(now func() time.Time) {
	s.now = now
}

// SetClock replaces the invitation service's time source in tests.
func (s *InvitationService) SetClock(now func() time.Time) {
	s.now = now
}
