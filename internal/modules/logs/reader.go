package logs

import (
	"bufio"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Entry is one JSON log line.
type Entry struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	RunID     string `json:"run_id"`
	Subject   string `json:"subject,omitempty"`
	Observer  string `json:"observer,omitempty"`
	Attribute *int   `json:"attribute,omitempty"`
}

// ReadEntries decodes the JSON lines written by a json-format logger. Blank
// lines are skipped.
func ReadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		var e Entry
		if err := jsoniter.Unmarshal(b, &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Messages returns the message of every entry, in order.
func Messages(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}
