package capability

import (
	"fmt"

	"devapi/internal/domain"
)

// recordsProvider reshapes the sample sequence into id/value rows, the
// tabular counterpart to the numeric transform.
type recordsProvider struct{}

func NewRecords() Provider {
	return recordsProvider{}
}

func (recordsProvider) Name() string {
	return "records"
}

func (recordsProvider) Version() string {
	return "builtin"
}

func (recordsProvider) Check() error {
	return nil
}

func (recordsProvider) Transform(seq []int) (interface{}, string, error) {
	if len(seq) == 0 {
		return nil, "", fmt.Errorf("empty sample sequence")
	}

	rows := make([]domain.Record, len(seq))
	for i, v := range seq {
		rows[i] = domain.Record{ID: i + 1, Value: v}
	}
	return rows, fmt.Sprintf("reshaped %d samples into records", len(rows)), nil
}
