// Package inbox reads exported SMS inboxes into model.Messages.
package inbox

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cleared-dev/banksms/internal/model"
)

// Header is the CSV header for inbox files.
const Header = "sender,body,timestamp"

const (
	numFields    = 3
	colSender    = 0
	colBody      = 1
	colTimestamp = 2
)

// Load reads an inbox file, choosing the format from its extension
// (.json or .csv).
func Load(path string) ([]model.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening inbox: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ReadJSON(f)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported inbox format %q", ext)
	}
}

// ReadCSV reads messages from a CSV with a sender,body,timestamp header.
// An empty timestamp column means the time is unknown.
func ReadCSV(r io.Reader) ([]model.Message, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading inbox CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var msgs []model.Message
	for i, rec := range records[1:] {
		msg, err := UnmarshalMessage(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// UnmarshalMessage converts a CSV row to a Message.
func UnmarshalMessage(record []string) (model.Message, error) {
	if len(record) != numFields {
		return model.Message{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var ts int64
	if s := strings.TrimSpace(record[colTimestamp]); s != "" {
		var err error
		ts, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return model.Message{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
		}
	}

	msg := model.Message{
		Sender:          strings.TrimSpace(record[colSender]),
		Body:            record[colBody],
		TimestampMillis: ts,
	}
	if err := validate(msg); err != nil {
		return model.Message{}, err
	}
	return msg, nil
}

// ReadJSON reads a JSON array of {"sender","body","timestamp"} objects.
func ReadJSON(r io.Reader) ([]model.Message, error) {
	var msgs []model.Message
	if err := json.NewDecoder(r).Decode(&msgs); err != nil {
		return nil, fmt.Errorf("reading inbox JSON: %w", err)
	}
	for i, msg := range msgs {
		if err := validate(msg); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}
	return msgs, nil
}

func validate(msg model.Message) error {
	if msg.Sender == "" {
		return fmt.Errorf("empty sender")
	}
	if strings.TrimSpace(msg.Body) == "" {
		return fmt.Errorf("empty body")
	}
	return nil
}
