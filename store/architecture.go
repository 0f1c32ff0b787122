package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"customshall/backend/model"
)

// LoadArchitecture reads customs_architecture.csv — one row per physical
// booth, columns id and subsection — and returns the installed booth
// count per lane. It validates that every lane the schedule names has
// rows here and that no lane's installed count falls short of that lane's
// max column in the schedule.
func LoadArchitecture(path string, schedule model.Schedule) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("architecture: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("architecture: read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}
	if _, ok := col["subsection"]; !ok {
		return nil, fmt.Errorf("architecture: missing column %q", "subsection")
	}

	counts := make(map[string]int)
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("architecture: read row: %w", err)
		}
		lane := rec[col["subsection"]]
		counts[lane]++
	}

	for lane, ls := range schedule {
		installed, ok := counts[lane]
		if !ok {
			return nil, fmt.Errorf("architecture: schedule names lane %q with no matching architecture rows", lane)
		}
		if installed < ls.Max {
			return nil, fmt.Errorf("architecture: lane %s has %d booths installed but schedule asks for up to %d", lane, installed, ls.Max)
		}
	}
	return counts, nil
}
