package loader

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

func TestLoadCSV(t *testing.T) {
	in := "# id,burst,arrival,priority\n1,5,0,2\n2, 3, 1\n3,1,2,4\n"

	processes, err := LoadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []scheduler.Process{
		{ID: "1", BurstDuration: 5, ArrivalTime: 0, Priority: 2},
		{ID: "2", BurstDuration: 3, ArrivalTime: 1},
		{ID: "3", BurstDuration: 1, ArrivalTime: 2, Priority: 4},
	}, processes)
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		field   string
	}{
		{name: "empty", in: "", wantErr: scheduler.ErrInvalidProcessCount},
		{name: "short row", in: "1,5\n", wantErr: scheduler.ErrInvalidFieldValue, field: "row"},
		{name: "bad burst", in: "1,five,0\n", wantErr: scheduler.ErrInvalidFieldValue, field: "burst time"},
		{name: "bad arrival", in: "1,5,0.5\n", wantErr: scheduler.ErrInvalidFieldValue, field: "arrival time"},
		{name: "bad priority", in: "1,5,0,high\n", wantErr: scheduler.ErrInvalidFieldValue, field: "priority"},
		{name: "zero burst", in: "1,0,0\n", wantErr: scheduler.ErrInvalidFieldValue, field: "burst time"},
		{name: "negative arrival", in: "1,2,-3\n", wantErr: scheduler.ErrInvalidFieldValue, field: "arrival time"},
		{name: "duplicate id", in: "1,2,0\n1,2,1\n", wantErr: scheduler.ErrInvalidFieldValue, field: "id"},
		{name: "unbalanced quote", in: "\"1,2,0\n", wantErr: ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.wantErr)
			if tt.field != "" {
				var fe *scheduler.FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.field, fe.Field)
			}
		})
	}
}

func TestLoadJSON(t *testing.T) {
	in := `{"count": 3, "processes": [
		{"id": "A", "arrival": 0, "burst": 5, "priority": 1},
		{"arrival_time": 1, "burst_time": 3},
		{"id": "C", "arrival": 2, "burst": 1, "priority": -2}
	]}`

	processes, err := LoadJSON([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, []scheduler.Process{
		{ID: "A", ArrivalTime: 0, BurstDuration: 5, Priority: 1},
		{ID: "P2", ArrivalTime: 1, BurstDuration: 3},
		{ID: "C", ArrivalTime: 2, BurstDuration: 1, Priority: -2},
	}, processes)
}

func TestLoadJSON_BareArray(t *testing.T) {
	processes, err := LoadJSON([]byte(`[{"arrival":0,"burst":2}]`))
	require.NoError(t, err)
	require.Len(t, processes, 1)
	assert.Equal(t, "P1", processes[0].ID)
}

func TestLoadJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		field   string
	}{
		{name: "invalid json", in: `{"processes": [`, wantErr: ErrMalformed},
		{name: "no array", in: `{"jobs": []}`, wantErr: ErrMalformed},
		{name: "empty list", in: `{"processes": []}`, wantErr: scheduler.ErrInvalidProcessCount},
		{name: "count mismatch", in: `{"count": 2, "processes": [{"arrival":0,"burst":1}]}`, wantErr: scheduler.ErrInvalidProcessCount},
		{name: "string burst", in: `[{"arrival":0,"burst":"5"}]`, wantErr: scheduler.ErrInvalidFieldValue, field: "burst time"},
		{name: "fractional arrival", in: `[{"arrival":1.5,"burst":5}]`, wantErr: scheduler.ErrInvalidFieldValue, field: "arrival time"},
		{name: "missing burst", in: `[{"arrival":0}]`, wantErr: scheduler.ErrInvalidFieldValue, field: "burst time"},
		{name: "not an object", in: `[3]`, wantErr: scheduler.ErrInvalidFieldValue, field: "process"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON([]byte(tt.in))
			require.ErrorIs(t, err, tt.wantErr)
			if tt.field != "" {
				var fe *scheduler.FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.field, fe.Field)
			}
		})
	}
}

func TestLoad_PicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "procs.csv")
	jsonPath := filepath.Join(dir, "procs.JSON")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,5,0\n2,3,1\n"), 0644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"id":"x","arrival":0,"burst":4}]`), 0644))

	fromCSV, err := Load(csvPath)
	require.NoError(t, err)
	assert.Len(t, fromCSV, 2)

	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "x", fromJSON[0].ID)

	_, err = Load(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrompt(t *testing.T) {
	in := "3\n0 5 1\n\n1 3\n2 1 4\n"
	var out bytes.Buffer

	processes, err := Prompt(strings.NewReader(in), &out)
	require.NoError(t, err)

	assert.Equal(t, []scheduler.Process{
		{ID: "P1", ArrivalTime: 0, BurstDuration: 5, Priority: 1},
		{ID: "P2", ArrivalTime: 1, BurstDuration: 3},
		{ID: "P3", ArrivalTime: 2, BurstDuration: 1, Priority: 4},
	}, processes)
	assert.Contains(t, out.String(), "Enter the number of processes")
	assert.Contains(t, out.String(), "Process P3")
}

func TestPrompt_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{name: "no input", in: "", wantErr: scheduler.ErrInvalidProcessCount},
		{name: "zero count", in: "0\n", wantErr: scheduler.ErrInvalidProcessCount},
		{name: "negative count", in: "-2\n", wantErr: scheduler.ErrInvalidProcessCount},
		{name: "word count", in: "three\n", wantErr: scheduler.ErrInvalidProcessCount},
		{name: "bad field", in: "1\n0 x 1\n", wantErr: scheduler.ErrInvalidFieldValue},
		{name: "too few fields", in: "1\n0\n", wantErr: scheduler.ErrInvalidFieldValue},
		{name: "zero burst", in: "1\n0 0\n", wantErr: scheduler.ErrInvalidFieldValue},
		{name: "truncated", in: "2\n0 1\n", wantErr: io.ErrUnexpectedEOF},
		{name: "huge count", in: "4611686018427387904\n0 1 1\n", wantErr: io.ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Prompt(strings.NewReader(tt.in), io.Discard)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_TestdataFormatsAgree(t *testing.T) {
	fromCSV, err := Load(filepath.Join("testdata", "processes.csv"))
	require.NoError(t, err)
	fromJSON, err := Load(filepath.Join("testdata", "processes.json"))
	require.NoError(t, err)

	assert.Equal(t, fromCSV, fromJSON)
	require.Len(t, fromCSV, 4)
	assert.Equal(t, scheduler.Process{ID: "P4", ArrivalTime: 9, BurstDuration: 4, Priority: 1}, fromCSV[3])
}
