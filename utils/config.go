package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseArchitecture parses an architecture string of whitespace-
// separated layer sizes, e.g. "2 4 2 1", input layer first.
func ParseArchitecture(archStr string) ([]int, error) {
	archParts := strings.Fields(archStr)
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		arch[i] = n
	}
	return arch, nil
}

// ValidateShape checks the builder preconditions the engine itself
// leaves to the caller: malformed shapes are undefined behavior inside
// nn.NewNetwork, so anything driving it goes through here first.
func ValidateShape(shape []int, inputIDs []string) error {
	if len(shape) < 2 {
		return fmt.Errorf("architecture must have at least 2 layers (input and output)")
	}

	for i, size := range shape {
		if size <= 0 {
			return fmt.Errorf("layer %d must have a positive size, got %d", i, size)
		}
	}

	if last := shape[len(shape)-1]; last != 1 {
		return fmt.Errorf("output layer must have exactly 1 node, got %d", last)
	}

	if len(inputIDs) != shape[0] {
		return fmt.Errorf("got %d input ids for %d input nodes", len(inputIDs), shape[0])
	}

	return nil
}
