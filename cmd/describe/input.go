package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

func readSampleFrom(path string, stdin io.Reader) ([]float64, error) {
	if path == "" || path == "-" {
		return readSample(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSample(f)
}

// readSample parses whitespace separated numbers.
func readSample(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	sample := make([]float64, 0)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", len(sample)+1, err)
		}
		sample = append(sample, v)
	}
	return sample, scanner.Err()
}
