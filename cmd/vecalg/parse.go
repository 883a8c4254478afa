package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yurimorini/vectors"
)

// parseVector parses "1,2,3", "(1, 2, 3)" or "Vector(1, 2, 3)".
func parseVector(s string) (vectors.Vector, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "Vector")
	body = strings.TrimSuffix(strings.TrimPrefix(body, "("), ")")

	if strings.TrimSpace(body) == "" {
		return vectors.New()
	}

	fields := strings.Split(body, ",")
	coords := make([]float64, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return vectors.Vector{}, fmt.Errorf("coordinate %d of %q: %w", i, s, err)
		}
		coords[i] = c
	}

	return vectors.New(coords...)
}

func parseVectors(args []string) ([]vectors.Vector, error) {
	vs := make([]vectors.Vector, len(args))
	for i, arg := range args {
		v, err := parseVector(arg)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}

	return vs, nil
}
