package storage

import (
	"errors"
	"testing"

	"gaharness/internal/model"
)

func TestSummaryCodecRoundTrip(t *testing.T) {
	input := testSummary("b1", "figeys3.dat", 10, 20, 30)
	data, err := EncodeSummary(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeSummary(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if output.ID != input.ID || len(output.RunBest) != 3 || output.RunBest[2] != 30 {
		t.Fatalf("unexpected decoded summary: %+v", output)
	}
}

func TestSummaryCodecRejectsVersionMismatch(t *testing.T) {
	input := testSummary("b1", "figeys3.dat", 10)
	input.VersionedRecord = model.VersionedRecord{SchemaVersion: 99, CodecVersion: CurrentCodecVersion}
	data, err := EncodeSummary(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeSummary(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got %v", err)
	}
}
