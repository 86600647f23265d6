package tib

import "testing"

func TestSetupCallInstallsGSBase(t *testing.T) {
	if err := SetupCall(); err != nil {
		t.Fatalf("SetupCall: %v", err)
	}
}

func TestOsThreadKeyStableAcrossCalls(t *testing.T) {
	// osThreadKey must be stable across repeated calls on the same
	// goroutine; it backs CurrentThreadID's map key.
	if osThreadKey() != osThreadKey() {
		t.Errorf("osThreadKey() not stable across calls on the same thread")
	}
}
