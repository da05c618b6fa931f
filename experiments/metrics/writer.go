package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Writer persists one simulation run's configuration and outcomes as CSV
// files under a timestamped directory.
type Writer struct {
	RunID   string
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		RunID:   uuid.NewString(),
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteProfiles(profiles []ProfileConfig) error {
	path := filepath.Join(w.baseDir, "profiles.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profiles file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"run", "name", "buy_street", "buy_railroad", "buy_utility",
		"roll_double_in_jail", "use_jail_free_card", "min_cash", "min_cash_to_unmortgage"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write profiles header: %w", err)
	}

	for _, profile := range profiles {
		row := []string{
			w.RunID,
			profile.Name,
			strconv.FormatFloat(profile.BuyStreet, 'f', -1, 64),
			strconv.FormatFloat(profile.BuyRailroad, 'f', -1, 64),
			strconv.FormatFloat(profile.BuyUtility, 'f', -1, 64),
			strconv.FormatFloat(profile.RollDoubleInJail, 'f', -1, 64),
			strconv.FormatFloat(profile.UseJailFreeCard, 'f', -1, 64),
			strconv.Itoa(profile.MinCash),
			strconv.Itoa(profile.MinCashToUnmortgage),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write profile row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"run", "id", "seed", "winner", "turns", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			w.RunID,
			strconv.Itoa(record.ID),
			strconv.FormatInt(record.Seed, 10),
			record.Winner,
			strconv.Itoa(record.Turns),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}
