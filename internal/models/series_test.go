package models

import (
	"encoding/json"
	"testing"
)

func TestPublicationStatusJSON(t *testing.T) {
	testCases := []struct {
		status   PublicationStatus
		expected string
	}{
		{StatusUnknown, `"unknown"`},
		{StatusOngoing, `"ongoing"`},
		{StatusPublicationComplete, `"publication_complete"`},
		{StatusCancelled, `"cancelled"`},
		{StatusHiatus, `"hiatus"`},
		{StatusCompleted, `"completed"`},
	}

	for _, tc := range testCases {
		data, err := json.Marshal(tc.status)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", tc.status, err)
		}
		if string(data) != tc.expected {
			t.Errorf("Expected %s, got %s", tc.expected, data)
		}

		var decoded PublicationStatus
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if decoded != tc.status {
			t.Errorf("Expected round-trip of %v, got %v", tc.status, decoded)
		}
	}
}

func TestPublicationStatusUnmarshalUnknownName(t *testing.T) {
	var status PublicationStatus
	if err := json.Unmarshal([]byte(`"finished"`), &status); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if status != StatusUnknown {
		t.Errorf("Expected StatusUnknown for an unrecognized name, got %v", status)
	}
}

func TestDefaultSeriesMetadata(t *testing.T) {
	record := DefaultSeriesMetadata()

	if record.Status != StatusUnknown {
		t.Errorf("Expected StatusUnknown, got %v", record.Status)
	}
	if record.Genres == nil || len(record.Genres) != 0 {
		t.Errorf("Expected an empty genre list, got %v", record.Genres)
	}
	if record.LastChapter != nil || record.Rating != nil || record.MissingChapters != nil {
		t.Error("Expected optional numeric fields to start unset")
	}
}
