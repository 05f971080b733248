package results

import (
	"context"
	"errors"
	"os"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/exports"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/akhildatla/beaver/pkg/enum"
)

// Summary-specific errors
var (
	ErrEmptySummary = errors.New("no machines summarized")
)

// SizeSummary aggregates one (states, symbols) pass.
type SizeSummary struct {
	States     int
	Symbols    int
	Machines   uint64
	Halting    uint64
	NonHalting uint64
	MaxSteps   int // largest observed halting step count, 0 if none halted
}

// HaltingProbability returns this size's halting percentage.
func (s SizeSummary) HaltingProbability() float64 {
	if s.Machines == 0 {
		return 0
	}
	return 100 * float64(s.Halting) / float64(s.Machines)
}

// Summary observes records on their way to another sink and keeps one
// aggregate per machine size, in first-seen order. It implements
// enum.Sink.
type Summary struct {
	next  enum.Sink
	sizes []SizeSummary
}

// NewSummary wraps next, aggregating every record written through it.
func NewSummary(next enum.Sink) *Summary {
	return &Summary{next: next}
}

// WriteRecord folds the record into its size's aggregate and forwards
// it to the wrapped sink.
func (s *Summary) WriteRecord(r enum.Record) error {
	agg := s.size(r.States, r.Symbols)
	agg.Machines++
	if r.Steps > 0 {
		agg.Halting++
		if r.Steps > agg.MaxSteps {
			agg.MaxSteps = r.Steps
		}
	} else {
		agg.NonHalting++
	}
	return s.next.WriteRecord(r)
}

// Sizes returns the per-size aggregates in first-seen order.
func (s *Summary) Sizes() []SizeSummary {
	return s.sizes
}

func (s *Summary) size(states, symbols int) *SizeSummary {
	for i := range s.sizes {
		if s.sizes[i].States == states && s.sizes[i].Symbols == symbols {
			return &s.sizes[i]
		}
	}
	s.sizes = append(s.sizes, SizeSummary{States: states, Symbols: symbols})
	return &s.sizes[len(s.sizes)-1]
}

// Frame materializes the summary as a DataFrame, one row per size.
func (s *Summary) Frame() (*dataframe.DataFrame, error) {
	if len(s.sizes) == 0 {
		return nil, ErrEmptySummary
	}
	n := len(s.sizes)
	states := make([]interface{}, n)
	symbols := make([]interface{}, n)
	machines := make([]interface{}, n)
	halting := make([]interface{}, n)
	nonHalting := make([]interface{}, n)
	maxSteps := make([]interface{}, n)
	probability := make([]interface{}, n)
	for i, sz := range s.sizes {
		states[i] = int64(sz.States)
		symbols[i] = int64(sz.Symbols)
		machines[i] = int64(sz.Machines)
		halting[i] = int64(sz.Halting)
		nonHalting[i] = int64(sz.NonHalting)
		maxSteps[i] = int64(sz.MaxSteps)
		probability[i] = sz.HaltingProbability()
	}
	return dataframe.NewDataFrame(
		dataframe.NewSeriesInt64("state_count", nil, states...),
		dataframe.NewSeriesInt64("symbol_count", nil, symbols...),
		dataframe.NewSeriesInt64("machines", nil, machines...),
		dataframe.NewSeriesInt64("halting", nil, halting...),
		dataframe.NewSeriesInt64("non_halting", nil, nonHalting...),
		dataframe.NewSeriesInt64("max_steps", nil, maxSteps...),
		dataframe.NewSeriesFloat64("halting_probability", nil, probability...),
	), nil
}

// ExportCSV writes the summary frame as CSV using dataframe-go.
func (s *Summary) ExportCSV(ctx context.Context, path string) error {
	df, err := s.Frame()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exports.ExportToCSV(ctx, f, df); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parquetSummaryRow is the parquet schema for one summary row.
type parquetSummaryRow struct {
	StateCount         int64   `parquet:"name=state_count, type=INT64"`
	SymbolCount        int64   `parquet:"name=symbol_count, type=INT64"`
	Machines           int64   `parquet:"name=machines, type=INT64"`
	Halting            int64   `parquet:"name=halting, type=INT64"`
	NonHalting         int64   `parquet:"name=non_halting, type=INT64"`
	MaxSteps           int64   `parquet:"name=max_steps, type=INT64"`
	HaltingProbability float64 `parquet:"name=halting_probability, type=DOUBLE"`
}

// ExportParquet writes the summary as a parquet file using the
// parquet-go local file backend.
func (s *Summary) ExportParquet(path string) error {
	if len(s.sizes) == 0 {
		return ErrEmptySummary
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(parquetSummaryRow), 1)
	if err != nil {
		fw.Close()
		return err
	}
	for _, sz := range s.sizes {
		row := parquetSummaryRow{
			StateCount:         int64(sz.States),
			SymbolCount:        int64(sz.Symbols),
			Machines:           int64(sz.Machines),
			Halting:            int64(sz.Halting),
			NonHalting:         int64(sz.NonHalting),
			MaxSteps:           int64(sz.MaxSteps),
			HaltingProbability: sz.HaltingProbability(),
		}
		if err := pw.Write(row); err != nil {
			fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}
