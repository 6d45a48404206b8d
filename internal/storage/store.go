package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/chaoscope/internal/chaos"
)

// Store keeps generated trajectory runs under a base directory, one
// subdirectory per run with metadata.json and points.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID              string      `json:"id"`
	Timestamp       time.Time   `json:"timestamp"`
	Sigma           float64     `json:"sigma"`
	Rho             float64     `json:"rho"`
	Beta            float64     `json:"beta"`
	Dt              float64     `json:"dt"`
	NumPoints       int         `json:"num_points"`
	Start           chaos.Point `json:"start"`
	FinalDerivative chaos.Point `json:"final_derivative"`
}

// Save writes the run to disk and returns its generated id.
func (s *Store) Save(start chaos.Point, prm chaos.Params, points []chaos.Point, finalDeriv chaos.Point) (string, error) {
	runID := fmt.Sprintf("lorenz_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Timestamp:       time.Now(),
		Sigma:           prm.Sigma,
		Rho:             prm.Rho,
		Beta:            prm.Beta,
		Dt:              prm.Dt,
		NumPoints:       prm.NumPoints,
		Start:           start,
		FinalDerivative: finalDeriv,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"t", "x", "y", "z"}); err != nil {
		return "", err
	}
	for i, p := range points {
		row := []string{
			strconv.FormatFloat(float64(i+1)*prm.Dt, 'f', 6, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPoints reads the stored trajectory back along with the per-point times.
func (s *Store) LoadPoints(runID string) ([]chaos.Point, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []chaos.Point{}, []float64{}, nil
	}

	points := make([]chaos.Point, 0, len(records)-1)
	times := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		x, errX := strconv.ParseFloat(record[1], 64)
		y, errY := strconv.ParseFloat(record[2], 64)
		z, errZ := strconv.ParseFloat(record[3], 64)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		times = append(times, t)
		points = append(points, chaos.Point{X: x, Y: y, Z: z})
	}

	return points, times, nil
}
