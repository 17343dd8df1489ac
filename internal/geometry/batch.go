package geometry

import (
	"errors"
	"fmt"

	"Conecyl/internal/ccs"
)

var ErrNoItems = errors.New("geometry: no names given")

type BatchInput struct {
	Names []string `json:"names"`
}

type BatchItem struct {
	Name   string `json:"name"`
	Result Result `json:"result"`
}

type BatchResult struct {
	Results []BatchItem `json:"results"`
}

// CalculateBatch computes every named specimen and fails on the first
// unknown or incomplete entry.
func CalculateBatch(c *ccs.Catalog, in BatchInput) (BatchResult, error) {
	if len(in.Names) == 0 {
		return BatchResult{}, ErrNoItems
	}
	out := BatchResult{Results: make([]BatchItem, 0, len(in.Names))}
	for _, name := range in.Names {
		s, err := c.Get(name)
		if err != nil {
			return BatchResult{}, err
		}
		res, err := Calculate(s)
		if err != nil {
			return BatchResult{}, fmt.Errorf("%s: %w", name, err)
		}
		out.Results = append(out.Results, BatchItem{Name: name, Result: res})
	}
	return out, nil
}
