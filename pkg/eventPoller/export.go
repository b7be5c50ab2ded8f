package eventPoller

import (
	"encoding/json"
	"io"

	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// EventRow is the flat CSV shape of an event record. Event specific fields are kept as JSON.
type EventRow struct {
	Event           string `csv:"event"`
	Network         string `csv:"network"`
	BlockNumber     string `csv:"blockNumber"`
	TransactionHash string `csv:"transactionHash"`
	LogIndex        string `csv:"logIndex"`
	Data            string `csv:"data"`
}

var commonFields = map[string]bool{
	"event":           true,
	"network":         true,
	"blockNumber":     true,
	"transactionHash": true,
	"logIndex":        true,
}

func toRow(r *records.Record) (*EventRow, error) {
	data := records.New()
	for _, k := range r.Keys() {
		if commonFields[k] {
			continue
		}
		v, _ := r.Get(k)
		data.Set(k, v)
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	field := func(k string) string {
		v, _ := r.Get(k)
		switch t := v.(type) {
		case string:
			return t
		case json.Number:
			return t.String()
		}
		return ""
	}
	return &EventRow{
		Event:           field("event"),
		Network:         field("network"),
		BlockNumber:     field("blockNumber"),
		TransactionHash: field("transactionHash"),
		LogIndex:        field("logIndex"),
		Data:            string(encoded),
	}, nil
}

func toRows(recs []*records.Record) ([]*EventRow, error) {
	rows := make([]*EventRow, 0, len(recs))
	for _, r := range recs {
		row, err := toRow(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode event data")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes one row per record with a header line.
func WriteCSV(w io.Writer, recs []*records.Record) error {
	rows, err := toRows(recs)
	if err != nil {
		return err
	}
	return gocsv.Marshal(rows, w)
}

// CSVStream writes the header once and then appends rows on every Write.
type CSVStream struct {
	w           io.Writer
	wroteHeader bool
}

func NewCSVStream(w io.Writer) *CSVStream {
	return &CSVStream{w: w}
}

func (s *CSVStream) Write(recs []*records.Record) error {
	if len(recs) == 0 {
		return nil
	}
	rows, err := toRows(recs)
	if err != nil {
		return err
	}
	if !s.wroteHeader {
		s.wroteHeader = true
		return gocsv.Marshal(rows, s.w)
	}
	return gocsv.MarshalWithoutHeaders(rows, s.w)
}
