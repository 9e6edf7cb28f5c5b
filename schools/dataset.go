package schools

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"go-measlesmonitor/types"
)

// MinEnrollment is the dataset floor: schools reporting fewer than 20
// kindergarten students are excluded from the published coverage data.
const MinEnrollment = 20

// Expected column headers of the coverage CSV.
const (
	colSchoolName = "SCHOOL NAME"
	colCounty     = "COUNTY"
	colEnrolled   = "ENROLLED"
	colImmuneMMR  = "IMMUNE_MMR"
)

// hashID hashes a school name to its stable document ID.
func hashID(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// FetchDataset downloads the per-school MMR coverage CSV and parses it
// into School records. Malformed rows are skipped with a log line, not
// fatal: the published dataset has the occasional suppressed or empty
// cell.
func FetchDataset(ctx context.Context, url string) ([]types.School, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building dataset request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset fetch returned status %s", resp.Status)
	}

	return parseDataset(csv.NewReader(resp.Body))
}

func parseDataset(r *csv.Reader) ([]types.School, error) {
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // suppressed cells leave ragged rows

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colSchoolName, colEnrolled, colImmuneMMR} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("dataset missing required column %q", required)
		}
	}

	var list []types.School
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping dataset row %d: %v", line, err)
			continue
		}

		if idx[colSchoolName] >= len(row) || idx[colEnrolled] >= len(row) || idx[colImmuneMMR] >= len(row) {
			log.Printf("Skipping dataset row %d: too few columns", line)
			continue
		}

		name := strings.TrimSpace(row[idx[colSchoolName]])
		if name == "" {
			continue
		}

		enrolled, err := strconv.Atoi(strings.TrimSpace(row[idx[colEnrolled]]))
		if err != nil {
			log.Printf("Skipping dataset row %d (%s): bad enrollment %q", line, name, row[idx[colEnrolled]])
			continue
		}
		if enrolled < MinEnrollment {
			continue
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(row[idx[colImmuneMMR]]), 64)
		if err != nil {
			log.Printf("Skipping dataset row %d (%s): bad immunization rate %q", line, name, row[idx[colImmuneMMR]])
			continue
		}
		// Some vintages of the dataset report percentages instead of
		// fractions.
		if rate > 1 && rate <= 100 {
			rate /= 100
		}
		if rate < 0 || rate > 1 {
			log.Printf("Skipping dataset row %d (%s): immunization rate %g out of range", line, name, rate)
			continue
		}

		sch := types.School{
			ID:               hashID(name),
			Name:             name,
			Enrollment:       enrolled,
			ImmunizationRate: rate,
		}
		if ci, ok := idx[colCounty]; ok && ci < len(row) {
			sch.County = strings.TrimSpace(row[ci])
		}
		list = append(list, sch)
	}

	return list, nil
}
