package capability

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

const scaleFactor = 10

// numericProvider scales the sample sequence tenfold and summarizes it with
// the stats library. It plays the role the optional numeric library played
// in earlier revisions of this service.
type numericProvider struct{}

func NewNumeric() Provider {
	return numericProvider{}
}

func (numericProvider) Name() string {
	return "numeric"
}

func (numericProvider) Version() string {
	return moduleVersion("github.com/montanaflynn/stats")
}

// Check exercises the library on a known input so a broken install is
// visible at startup rather than on the first /test call.
func (numericProvider) Check() error {
	data := stats.LoadRawData([]int{1, 2, 3, 4, 5})
	mean, err := stats.Mean(data)
	if err != nil {
		return fmt.Errorf("numeric self-check: %w", err)
	}
	if mean != 3 {
		return fmt.Errorf("numeric self-check: mean(1..5) = %v, want 3", mean)
	}
	return nil
}

func (numericProvider) Transform(seq []int) (interface{}, string, error) {
	if len(seq) == 0 {
		return nil, "", fmt.Errorf("empty sample sequence")
	}

	scaled := make([]int, len(seq))
	floats := make([]float64, len(seq))
	for i, v := range seq {
		scaled[i] = v * scaleFactor
		floats[i] = float64(scaled[i])
	}

	mean, err := stats.Mean(floats)
	if err != nil {
		return nil, "", fmt.Errorf("numeric transform: %w", err)
	}
	max, err := stats.Max(floats)
	if err != nil {
		return nil, "", fmt.Errorf("numeric transform: %w", err)
	}

	msg := fmt.Sprintf("scaled %d samples by %d (mean %.1f, max %.0f)", len(seq), scaleFactor, mean, max)
	return scaled, msg, nil
}
