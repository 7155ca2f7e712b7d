// Package movelog keeps an append-only JSONL journal of completed file
// moves. Each organizer run appends entries tagged with a run id so a move
// can be traced, audited, or manually reversed later.
package movelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry is one journaled move. Fields are flat so the journal stays
// greppable with standard tools.
type Entry struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Action    string    `json:"action"`
}

// Journal appends move records to a JSONL file. It is not safe for
// concurrent use by multiple processes; the library store lock already
// serializes runs.
type Journal struct {
	path  string
	runID string
}

// Open prepares a journal at path with a fresh run id. The file is created
// lazily on first record.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, fmt.Errorf("move journal path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}
	return &Journal{path: path, runID: uuid.NewString()}, nil
}

// RunID returns the identifier tagged onto every entry this journal writes.
func (j *Journal) RunID() string {
	return j.runID
}

// Record appends one move to the journal. The write is flushed before
// returning so a crash mid-run loses at most the in-flight entry.
func (j *Journal) Record(from, to, action string) error {
	entry := Entry{
		RunID:     j.runID,
		Timestamp: time.Now().UTC(),
		From:      from,
		To:        to,
		Action:    action,
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}

	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return f.Sync()
}

// Entries reads the full journal. A missing file is an empty journal, not
// an error; unparsable lines are skipped so a torn tail write cannot make
// history unreadable.
func Entries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return entries, nil
}
