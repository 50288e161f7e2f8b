package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes the simulator settings of an autoplay agent.
type AgentConfig struct {
	ID                   int
	Goroutines           int
	MaxSimulations       int
	SimulationPercentage float64
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	Run   string
	GameMetric
}

type DecisionRecord struct {
	Game int // GameRecord.ID
	DecisionMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Goroutines),
			strconv.Itoa(config.MaxSimulations),
			strconv.FormatFloat(config.SimulationPercentage, 'f', -1, 64),
		})
	}
	header := []string{"id", "goroutines", "max_simulations", "simulation_percentage"}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			record.Run,
			record.GameMetric.ID,
			strconv.FormatInt(record.Seed, 10),
			strconv.Itoa(record.Level),
			strconv.FormatBool(record.Won),
			strconv.FormatInt(record.Score, 10),
			strconv.FormatInt(record.Target, 10),
			strconv.Itoa(record.HandsPlayed),
			strconv.Itoa(record.DiscardsUsed),
			record.WinningHand,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	header := []string{
		"id", "agent", "run", "game", "seed", "level", "won", "score", "target",
		"hands_played", "discards_used", "winning_hand", "start_time", "end_time", "duration", "total_moves",
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteDecisionRecords(records []DecisionRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.FormatBool(record.Play),
			record.Cards,
			record.HandType,
			strconv.FormatInt(record.Score, 10),
			record.Reason,
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Exhaustive),
			strconv.Itoa(record.Simulations),
		})
	}
	header := []string{
		"game", "step", "play", "cards", "hand_type", "score", "reason",
		"goroutines", "duration", "candidates", "exhaustive", "simulations",
	}
	return w.write("decision_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
