// Package storage persists completed runs: one directory per run holding
// JSON metadata and the CSV atom trajectory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/engine"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata summarizes a saved run.
type RunMetadata struct {
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	AtomCount int                `json:"atom_count"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes the run under a fresh directory and returns its run ID.
func (s *Store) Save(sceneName string, dt, duration float64, result *engine.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", sceneName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	atomCount := 0
	if len(result.Frames) > 0 {
		atomCount = len(result.Frames[0])
	}

	meta := RunMetadata{
		ID:        runID,
		Scene:     sceneName,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		AtomCount: atomCount,
		Steps:     result.StepsTaken,
		Metrics:   result.Metrics,
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

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for i := 0; i < atomCount; i++ {
		header = append(header,
			fmt.Sprintf("atom%d_x", i),
			fmt.Sprintf("atom%d_y", i),
			fmt.Sprintf("atom%d_z", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, frame := range result.Frames {
		row := []string{strconv.FormatFloat(result.Times[i], 'g', 17, 64)}
		for _, pos := range frame {
			row = append(row,
				strconv.FormatFloat(pos.X, 'g', 17, 64),
				strconv.FormatFloat(pos.Y, 'g', 17, 64),
				strconv.FormatFloat(pos.Z, 'g', 17, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// Load reads the metadata for a run ID.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse run %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// LoadTrajectory reads the saved atom positions and times for a run ID.
func (s *Store) LoadTrajectory(runID string) (frames [][]r3.Vec, times []float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read run %s trajectory: %w", runID, err)
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("run %s trajectory is empty", runID)
	}

	atomCount := (len(records[0]) - 1) / 3
	for _, rec := range records[1:] {
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("run %s: bad time value %q", runID, rec[0])
		}
		frame := make([]r3.Vec, atomCount)
		for i := 0; i < atomCount; i++ {
			x, errX := strconv.ParseFloat(rec[1+i*3], 64)
			y, errY := strconv.ParseFloat(rec[2+i*3], 64)
			z, errZ := strconv.ParseFloat(rec[3+i*3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, nil, fmt.Errorf("run %s: bad position for atom %d", runID, i)
			}
			frame[i] = r3.Vec{X: x, Y: y, Z: z}
		}
		times = append(times, t)
		frames = append(frames, frame)
	}
	return frames, times, nil
}

// List returns metadata for every saved run, newest first.
func (s *Store) List() ([]*RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []*RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
