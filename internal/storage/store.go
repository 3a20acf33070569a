package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/nbody2d/internal/body"
	"github.com/san-kum/nbody2d/internal/engine"
	"github.com/san-kum/nbody2d/internal/metrics"
)

// Store archives completed runs to baseDir, one directory per run holding
// metadata.json and states.csv, following the teacher's
// internal/storage/store.go layout adapted from generic state vectors to
// per-body position/velocity snapshots.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Frame is one recorded instant of a run: every body's position and
// velocity at time t.
type Frame struct {
	Time      float64
	Positions []body.Vec2
	Velocities []body.Vec2
}

// RunMetadata is the JSON side-car saved alongside each run's states.csv.
type RunMetadata struct {
	ID         string         `json:"id"`
	Scene      string         `json:"scene"`
	Timestamp  time.Time      `json:"timestamp"`
	Seed       int64          `json:"seed"`
	Dt         float64        `json:"dt"`
	Duration   float64        `json:"duration"`
	Integrator string         `json:"integrator"`
	BodyCount  int            `json:"body_count"`
	FinalStats engine.Stats   `json:"final_stats"`
	Energy     metrics.Energy `json:"energy"`
}

// Save writes frames and metadata under a fresh run directory and returns
// the run's ID.
func (s *Store) Save(scene string, dt, duration float64, seed int64, integrator string, frames []Frame, finalStats engine.Stats, energy metrics.Energy) (string, error) {
	runID := fmt.Sprintf("%s_%d", scene, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	bodyCount := 0
	if len(frames) > 0 {
		bodyCount = len(frames[0].Positions)
	}

	meta := RunMetadata{
		ID:         runID,
		Scene:      scene,
		Timestamp:  time.Now(),
		Seed:       seed,
		Dt:         dt,
		Duration:   duration,
		Integrator: integrator,
		BodyCount:  bodyCount,
		FinalStats: finalStats,
		Energy:     energy,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "states.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := writeFrames(w, frames); err != nil {
		return "", err
	}

	return runID, nil
}

func writeFrames(w *csv.Writer, frames []Frame) error {
	if len(frames) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := range frames[0].Positions {
		header = append(header,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i), fmt.Sprintf("vy%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, f := range frames {
		row := []string{strconv.FormatFloat(f.Time, 'f', 6, 64)}
		for i := range f.Positions {
			row = append(row,
				strconv.FormatFloat(f.Positions[i].X, 'f', 6, 64),
				strconv.FormatFloat(f.Positions[i].Y, 'f', 6, 64),
				strconv.FormatFloat(f.Velocities[i].X, 'f', 6, 64),
				strconv.FormatFloat(f.Velocities[i].Y, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns metadata for every saved run.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

// Load reads a single run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrames reads back the per-body position/velocity history of a run.
func (s *Store) LoadFrames(runID string) ([]Frame, error) {
	csvPath := filepath.Join(s.baseDir, runID, "states.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Frame{}, nil
	}

	numBodies := (len(records[0]) - 1) / 4
	frames := make([]Frame, 0, len(records)-1)

	for _, record := range records[1:] {
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		f := Frame{
			Time:       t,
			Positions:  make([]body.Vec2, numBodies),
			Velocities: make([]body.Vec2, numBodies),
		}
		for i := 0; i < numBodies; i++ {
			base := 1 + i*4
			if base+3 >= len(record) {
				break
			}
			f.Positions[i].X, _ = strconv.ParseFloat(record[base], 64)
			f.Positions[i].Y, _ = strconv.ParseFloat(record[base+1], 64)
			f.Velocities[i].X, _ = strconv.ParseFloat(record[base+2], 64)
			f.Velocities[i].Y, _ = strconv.ParseFloat(record[base+3], 64)
		}
		frames = append(frames, f)
	}
	return frames, nil
}
