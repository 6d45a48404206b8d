package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type exportRecord struct {
	Metadata RunMetadata `json:"metadata"`
	Points   []pointJSON `json:"points"`
}

type pointJSON struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ExportJSON writes a run's metadata and points as one JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	points, times, err := s.LoadPoints(runID)
	if err != nil {
		return err
	}

	rec := exportRecord{
		Metadata: *meta,
		Points:   make([]pointJSON, len(points)),
	}
	for i, p := range points {
		rec.Points[i] = pointJSON{T: times[i], X: p.X, Y: p.Y, Z: p.Z}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// ExportCSV streams the stored points for a run.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	points, times, err := s.LoadPoints(runID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"t", "x", "y", "z"}); err != nil {
		return err
	}
	for i, p := range points {
		err := cw.Write([]string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
