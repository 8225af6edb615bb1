package model

import "testing"

func TestLoadStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   LoadStatus
		expected bool
	}{
		{LoadStatusIdle, false},
		{LoadStatusLoading, true},
		{LoadStatusReady, false},
		{LoadStatusEmpty, false},
		{LoadStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("LoadStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLoadStatus_String(t *testing.T) {
	status := LoadStatusLoading
	expected := "Loading"
	result := status.String()

	if result != expected {
		t.Errorf("LoadStatus.String() = %s, expected %s", result, expected)
	}
}

func TestStatusForItems(t *testing.T) {
	if got := StatusForItems(0); got != LoadStatusEmpty {
		t.Errorf("StatusForItems(0) = %s, expected %s", got, LoadStatusEmpty)
	}
	if got := StatusForItems(3); got != LoadStatusReady {
		t.Errorf("StatusForItems(3) = %s, expected %s", got, LoadStatusReady)
	}
}
