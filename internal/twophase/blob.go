package twophase

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cube-solver/kociemba/internal/cubeerr"
)

// The table blob is a flat sequence of unsigned varints: first every
// phase-1 move-table row (18 values each) for CO, then EO, then E-combo;
// then every phase-2 move-table row (10 values each) for CP, UD-EP, E-EP;
// then the four pruning tables, row-major, one byte's worth of
// information per varint (but still encoded as a varint, so table sizes
// can grow without a format change). The reader consumes exactly the
// bytes the table sizes imply and treats anything left over as
// corruption, matching the original implementation's strict decode.
func WriteTable(w io.Writer, dt *DataTable) error {
	buf := make([]byte, 0, 1<<20)
	buf = appendPhase1Table(buf, dt.Move.CO)
	buf = appendPhase1Table(buf, dt.Move.EO)
	buf = appendPhase1Table(buf, dt.Move.ECombo)
	buf = appendPhase2Table(buf, dt.Move.CP)
	buf = appendPhase2Table(buf, dt.Move.UDEP)
	buf = appendPhase2Table(buf, dt.Move.EEP)
	buf = appendPruning(buf, dt.Pruning.COECombo)
	buf = appendPruning(buf, dt.Pruning.EOECombo)
	buf = appendPruning(buf, dt.Pruning.CPEEP)
	buf = appendPruning(buf, dt.Pruning.UDEPEEP)
	_, err := w.Write(buf)
	return err
}

// WriteTableFile writes the blob to path, truncating any existing file.
func WriteTableFile(path string, dt *DataTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating table file: %w", err)
	}
	defer f.Close()
	return WriteTable(f, dt)
}

func appendPhase1Table(buf []byte, table [][18]uint16) []byte {
	for _, row := range table {
		for _, v := range row {
			buf = binary.AppendUvarint(buf, uint64(v))
		}
	}
	return buf
}

func appendPhase2Table(buf []byte, table [][10]uint16) []byte {
	for _, row := range table {
		for _, v := range row {
			buf = binary.AppendUvarint(buf, uint64(v))
		}
	}
	return buf
}

func appendPruning(buf []byte, table [][]uint8) []byte {
	for _, row := range table {
		for _, v := range row {
			buf = binary.AppendUvarint(buf, uint64(v))
		}
	}
	return buf
}

// ReadTable reconstructs a DataTable from a blob written by WriteTable.
// The table shapes (coordinate counts) are fixed by this package's
// constants, so only the values need to be read back; reading fewer or
// more varints than expected, or finding trailing bytes after the last
// one, is reported as ErrTableCorrupt.
func ReadTable(r io.Reader) (*DataTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	br := bytes.NewReader(data)

	mt := &MoveTable{}
	var readErr error
	mt.CO, readErr = readPhase1Table(br, coTableLen())
	if readErr != nil {
		return nil, readErr
	}
	mt.EO, readErr = readPhase1Table(br, eoTableLen())
	if readErr != nil {
		return nil, readErr
	}
	mt.ECombo, readErr = readPhase1Table(br, eComboTableLen())
	if readErr != nil {
		return nil, readErr
	}
	mt.CP, readErr = readPhase2Table(br, cpTableLen())
	if readErr != nil {
		return nil, readErr
	}
	mt.UDEP, readErr = readPhase2Table(br, udepTableLen())
	if readErr != nil {
		return nil, readErr
	}
	mt.EEP, readErr = readPhase2Table(br, eepTableLen())
	if readErr != nil {
		return nil, readErr
	}

	pt := &PruningTable{}
	pt.COECombo, readErr = readPruning(br, coTableLen(), eComboTableLen())
	if readErr != nil {
		return nil, readErr
	}
	pt.EOECombo, readErr = readPruning(br, eoTableLen(), eComboTableLen())
	if readErr != nil {
		return nil, readErr
	}
	pt.CPEEP, readErr = readPruning(br, cpTableLen(), eepTableLen())
	if readErr != nil {
		return nil, readErr
	}
	pt.UDEPEEP, readErr = readPruning(br, udepTableLen(), eepTableLen())
	if readErr != nil {
		return nil, readErr
	}

	if br.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after table data: %w", br.Len(), cubeerr.ErrTableCorrupt)
	}

	return &DataTable{Move: mt, Pruning: pt}, nil
}

// ReadTableFile reads the blob at path.
func ReadTableFile(path string) (*DataTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, cubeerr.ErrTableNotFound)
		}
		return nil, fmt.Errorf("opening table file: %w", err)
	}
	defer f.Close()
	return ReadTable(f)
}

func readUvarint16(r *bytes.Reader) (uint16, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return 0, fmt.Errorf("reading table value: %w: %w", err, cubeerr.ErrTableCorrupt)
	}
	return uint16(v), nil
}

func readUvarint8(r *bytes.Reader) (uint8, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return 0, fmt.Errorf("reading table value: %w: %w", err, cubeerr.ErrTableCorrupt)
	}
	return uint8(v), nil
}

func readPhase1Table(r *bytes.Reader, count int) ([][18]uint16, error) {
	table := make([][18]uint16, count)
	for i := range table {
		for j := 0; j < 18; j++ {
			v, err := readUvarint16(r)
			if err != nil {
				return nil, err
			}
			table[i][j] = v
		}
	}
	return table, nil
}

func readPhase2Table(r *bytes.Reader, count int) ([][10]uint16, error) {
	table := make([][10]uint16, count)
	for i := range table {
		for j := 0; j < 10; j++ {
			v, err := readUvarint16(r)
			if err != nil {
				return nil, err
			}
			table[i][j] = v
		}
	}
	return table, nil
}

func readPruning(r *bytes.Reader, len1, len2 int) ([][]uint8, error) {
	table := make([][]uint8, len1)
	for i := range table {
		table[i] = make([]uint8, len2)
		for j := range table[i] {
			v, err := readUvarint8(r)
			if err != nil {
				return nil, err
			}
			table[i][j] = v
		}
	}
	return table, nil
}
