package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"voiceorder/internal/model"
)

// LoadFAQFromCSV reads question/answer pairs from a CSV file with a header row
func LoadFAQFromCSV(path string) ([]model.FAQEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open faq corpus: %w", err)
	}
	defer f.Close()

	return ReadFAQCSV(f)
}

// ReadFAQCSV parses a corpus. The header must name a question column
// ("question") and an answer column ("answer" or "response"), in any case.
func ReadFAQCSV(r io.Reader) ([]model.FAQEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read faq header: %w", err)
	}

	qCol, aCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "question", "query":
			qCol = i
		case "answer", "response":
			aCol = i
		}
	}
	if qCol < 0 || aCol < 0 {
		return nil, ErrMissingColumns
	}

	var entries []model.FAQEntry
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read faq line %d: %w", line, err)
		}
		if qCol >= len(record) || aCol >= len(record) {
			continue
		}
		question, answer := strings.TrimSpace(record[qCol]), strings.TrimSpace(record[aCol])
		if question == "" || answer == "" {
			continue
		}
		entries = append(entries, model.FAQEntry{Question: question, Answer: answer})
	}
	return entries, nil
}
