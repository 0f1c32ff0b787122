package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ReportRow is one hour-and-lane line of the end-of-day report: passenger
// wait stats alongside the server utilization and staffing level that
// produced them.
type ReportRow struct {
	Hour                 int
	Type                 string
	Count                int
	AveWait              float64
	MaxWait              float64
	AveServerUtilization float64
	NumServers           int
}

// WriteReportCSV writes rows to reportPath, suffixing a timestamp before
// the extension if reportPath names a file, or writing a timestamped file
// inside reportPath if it names a directory.
func WriteReportCSV(reportPath string, rows []ReportRow) (string, error) {
	if reportPath == "" {
		return "", nil
	}
	ts := time.Now().Format("20060102-150405")
	outPath := reportPath
	if fi, err := os.Stat(outPath); err == nil && fi.IsDir() {
		outPath = filepath.Join(outPath, fmt.Sprintf("report-%s.csv", ts))
	} else {
		ext := filepath.Ext(outPath)
		base := outPath[:len(outPath)-len(ext)]
		outPath = fmt.Sprintf("%s-%s%s", base, ts, ext)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("store: create report %s: %w", outPath, err)
	}
	defer f.Close()

	fmt.Fprintln(f, "hour,type,count,ave_wait,max_wait,ave_server_utilization,num_servers")
	for _, r := range rows {
		// ave_wait/max_wait are already truncated to whole minutes by
		// GenerateReport; %.0f renders them without a decimal tail.
		fmt.Fprintf(f, "%d,%s,%d,%.0f,%.0f,%.4f,%d\n",
			r.Hour, r.Type, r.Count, r.AveWait, r.MaxWait, r.AveServerUtilization, r.NumServers)
	}
	return outPath, nil
}
