package form

import "testing"

func TestFreshSnapshot(t *testing.T) {
	snap := FreshSnapshot("typo-id")

	if got, ok := snap.UserID.Get(); !ok || got != "typo-id" {
		t.Fatalf("expected requested user id, got %q present=%t", got, ok)
	}
	if got, ok := snap.Step.Get(); !ok || got != DefaultStep {
		t.Fatalf("expected default step %d, got %d present=%t", DefaultStep, got, ok)
	}
	if snap.Email.IsSome() || snap.TherapyForWhom.IsSome() || snap.TherapistGender.IsSome() {
		t.Fatalf("expected answer fields to be absent: %+v", snap)
	}
}
