package rolllog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config holds configuration for the file-backed roll log
type Config struct {
	// Dir is the directory roll CSVs are written to
	Dir string
}

// fileRepository appends one CSV line per roll, one file per
// arena+diceCount combination
type fileRepository struct {
	dir string

	// serializes appends so concurrent turns cannot interleave lines
	mu sync.Mutex
}

// NewFile creates a new file-backed roll log
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dir == "" {
		return nil, errors.New("dir cannot be empty")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create roll log dir: %w", err)
	}

	return &fileRepository{
		dir: cfg.Dir,
	}, nil
}

// AppendRoll records one completed turn as "d1,...,dN,timestamp,name"
func (r *fileRepository) AppendRoll(ctx context.Context, input *AppendRollInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.Arena == "" {
		return errors.New("record arena cannot be empty")
	}

	fields := make([]string, 0, len(record.Dice)+2)
	for _, die := range record.Dice {
		fields = append(fields, strconv.Itoa(die))
	}
	fields = append(fields, record.RolledAt.UTC().Format(time.RFC3339))
	fields = append(fields, record.PlayerName)
	line := strings.Join(fields, ",") + "\n"

	path := filepath.Join(r.dir, fmt.Sprintf("%s_%dd100.csv", record.Arena, record.DiceCount))

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open roll log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append roll: %w", err)
	}

	return nil
}
