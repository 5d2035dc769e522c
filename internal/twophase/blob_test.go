package twophase

import (
	"bytes"
	"testing"
)

func TestWriteReadTableRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full table blob round trip in -short mode")
	}
	dt := NewDataTable()

	var buf bytes.Buffer
	if err := WriteTable(&buf, dt); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	got, err := ReadTable(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}

	if len(got.Move.CO) != len(dt.Move.CO) || got.Move.CO[100] != dt.Move.CO[100] {
		t.Error("CO move table did not round trip")
	}
	if got.Pruning.COECombo[0][0] != dt.Pruning.COECombo[0][0] {
		t.Error("pruning table did not round trip")
	}
}

func TestReadTableRejectsTrailingBytes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full table blob round trip in -short mode")
	}
	dt := NewDataTable()

	var buf bytes.Buffer
	if err := WriteTable(&buf, dt); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	buf.WriteByte(0xFF)

	if _, err := ReadTable(bytes.NewReader(buf.Bytes())); err == nil {
		t.Error("expected an error for trailing bytes")
	}
}

func TestReadTableFileMissing(t *testing.T) {
	if _, err := ReadTableFile("/nonexistent/path/table.bin"); err == nil {
		t.Error("expected an error for a missing table file")
	}
}
