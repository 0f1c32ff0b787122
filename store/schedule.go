package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"customshall/backend/model"
)

// No CSV library appears anywhere in the retrieval pack (every sibling repo
// either has no tabular export path at all, or, like the teacher, writes
// CSV by hand with fmt.Fprintf); encoding/csv is the standard library's own
// answer to exactly this and is used here for reading; WriteReportCSV writes
// its fixed-format rows with fmt.Fprintf.

// ReadScheduleCSV parses a server-schedule CSV: one row per lane with
// columns id, subsection, max, "0", "1", ..., "23".
func ReadScheduleCSV(path string) (model.Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("schedule: read header: %w", err)
	}
	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[h] = i
	}
	for _, required := range []string{"subsection", "max"} {
		if _, ok := colIndex[required]; !ok {
			return nil, fmt.Errorf("schedule: missing column %q", required)
		}
	}
	var hourCol [24]int
	for h := 0; h < 24; h++ {
		col := strconv.Itoa(h)
		idx, ok := colIndex[col]
		if !ok {
			return nil, fmt.Errorf("schedule: missing hour column %q", col)
		}
		hourCol[h] = idx
	}

	out := make(model.Schedule)
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("schedule: read row: %w", err)
		}
		if len(rec) == 0 {
			break
		}
		lane := rec[colIndex["subsection"]]
		maxVal, err := strconv.Atoi(rec[colIndex["max"]])
		if err != nil {
			return nil, fmt.Errorf("schedule: lane %s: non-integer max %q: %w", lane, rec[colIndex["max"]], err)
		}
		ls := &model.LaneSchedule{Max: maxVal}
		for h := 0; h < 24; h++ {
			v, err := strconv.Atoi(rec[hourCol[h]])
			if err != nil {
				return nil, fmt.Errorf("schedule: lane %s hour %d: non-integer column %q: %w", lane, h, rec[hourCol[h]], err)
			}
			ls.Hours[h] = v
		}
		out[lane] = ls
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("schedule: %s has no lane rows", path)
	}
	return out, nil
}
