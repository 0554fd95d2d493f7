package runreport

import (
	"errors"
	"fmt"

	"gaharness/internal/runtable"
)

var ErrShortTable = errors.New("run table too short")

// SelectRuns returns the final row of each run 1..opts.Runs in run order.
func SelectRuns(table *runtable.Table, opts Options) ([]runtable.Row, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch resolveSelection(table, opts.Selection) {
	case SelectRunColumn:
		return selectByRunColumn(table, opts)
	default:
		return selectByPosition(table, opts)
	}
}

func resolveSelection(table *runtable.Table, mode Selection) Selection {
	if mode == SelectAuto || mode == "" {
		if table.InHeader(runtable.ColRun) {
			return SelectRunColumn
		}
		return SelectPosition
	}
	return mode
}

func selectByPosition(table *runtable.Table, opts Options) ([]runtable.Row, error) {
	need := opts.Generations * opts.Runs
	if table.Len() < need {
		return nil, fmt.Errorf("%w: %d rows, need %d (%d runs x %d generations)",
			ErrShortTable, table.Len(), need, opts.Runs, opts.Generations)
	}
	rows := make([]runtable.Row, 0, opts.Runs)
	for i := 1; i <= opts.Runs; i++ {
		rows = append(rows, table.Rows[opts.Generations*i-1])
	}
	return rows, nil
}

func selectByRunColumn(table *runtable.Table, opts Options) ([]runtable.Row, error) {
	if !table.InHeader(runtable.ColRun) {
		return nil, fmt.Errorf("%w: %s", runtable.ErrMissingColumn, runtable.ColRun)
	}
	last := make(map[int]int, opts.Runs)
	count := make(map[int]int, opts.Runs)
	for _, row := range table.Rows {
		run, err := row.Int(runtable.ColRun)
		if err != nil {
			return nil, err
		}
		last[run] = row.Index
		count[run]++
	}

	rows := make([]runtable.Row, 0, opts.Runs)
	for i := 1; i <= opts.Runs; i++ {
		idx, ok := last[i]
		if !ok {
			return nil, fmt.Errorf("%w: run %d not found", ErrShortTable, i)
		}
		if opts.Generations > 0 && count[i] < opts.Generations {
			return nil, fmt.Errorf("%w: run %d has %d rows, need %d", ErrShortTable, i, count[i], opts.Generations)
		}
		rows = append(rows, table.Rows[idx])
	}
	return rows, nil
}
