package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"financebook/internal/logger"
)

// Parse reads an export. The first line is skipped as the header. Lines
// with fewer than seven fields, or whose amount or date do not parse, are
// logged and skipped; skipped counts them.
func Parse(r io.Reader) (rows []Row, skipped int, err error) {
	log := logger.Named("csvio")

	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, 0, nil
		}
		var perr *csv.ParseError
		if !errors.As(err, &perr) {
			return nil, 0, fmt.Errorf("reading csv header: %w", err)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				log.Warnw("Skipping unreadable line", "line", perr.Line, "error", err)
				skipped++
				continue
			}
			return nil, skipped, fmt.Errorf("reading csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) < columnCount {
			log.Warnw("Skipping short line", "line", line, "fields", len(record))
			skipped++
			continue
		}

		row, err := parseRecord(record)
		if err != nil {
			log.Warnw("Skipping invalid line", "line", line, "error", err)
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func parseRecord(record []string) (Row, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(record[ColAmount]))
	if err != nil {
		return Row{}, fmt.Errorf("amount %q: %w", record[ColAmount], err)
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(record[ColDate]))
	if err != nil {
		return Row{}, fmt.Errorf("date %q: %w", record[ColDate], err)
	}
	return Row{
		Amount:           amount,
		Date:             date,
		Description:      record[ColDescription],
		RecipientName:    record[ColRecipientName],
		RecipientAddress: record[ColRecipientAddress],
		CategoryName:     record[ColCategoryName],
		Periodic:         parsePeriodic(record[ColPeriodic]),
	}, nil
}
