//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package avalanche measures the avalanche property of hash
// functions: flipping a single input bit should flip about half of the
// output bits.
package avalanche

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/markkurossi/tabulate"
)

// Func defines a hash function under analysis.
type Func func(data []byte) []byte

// Stats contains the avalanche statistics of a measurement.
type Stats struct {
	Samples    int
	InputLen   int
	OutputBits int
	Min        int
	Max        int
	Total      int
}

// Mean returns the mean number of flipped output bits per sample.
func (stats *Stats) Mean() float64 {
	if stats.Samples == 0 {
		return 0
	}
	return float64(stats.Total) / float64(stats.Samples)
}

// Fraction returns the mean fraction of flipped output bits.
func (stats *Stats) Fraction() float64 {
	if stats.OutputBits == 0 {
		return 0
	}
	return stats.Mean() / float64(stats.OutputBits)
}

// Measure computes avalanche statistics for the hash function h. For
// each sample it reads an inputLen byte input from rand, flips one
// input bit selected by rand, and counts the differing output bits.
func Measure(h Func, rand io.Reader, samples, inputLen int) (*Stats, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("invalid sample count %d", samples)
	}
	if inputLen <= 0 {
		return nil, fmt.Errorf("invalid input length %d", inputLen)
	}

	stats := &Stats{
		Samples:  samples,
		InputLen: inputLen,
	}
	input := make([]byte, inputLen)
	flipped := make([]byte, inputLen)
	var idx [4]byte

	for i := 0; i < samples; i++ {
		if _, err := io.ReadFull(rand, input); err != nil {
			return nil, err
		}
		if _, err := io.ReadFull(rand, idx[:]); err != nil {
			return nil, err
		}
		bit := binary.BigEndian.Uint32(idx[:]) % uint32(inputLen*8)

		copy(flipped, input)
		flipped[bit/8] ^= 1 << (bit % 8)

		d0 := h(input)
		d1 := h(flipped)
		if len(d0) != len(d1) || len(d0) == 0 {
			return nil, errors.New("hash output length mismatch")
		}
		stats.OutputBits = len(d0) * 8

		var count int
		for j := range d0 {
			count += bits.OnesCount8(d0[j] ^ d1[j])
		}
		if i == 0 || count < stats.Min {
			stats.Min = count
		}
		if count > stats.Max {
			stats.Max = count
		}
		stats.Total += count
	}
	return stats, nil
}

// Print prints the statistics table to w under the label.
func (stats *Stats) Print(w io.Writer, label string) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Hash").SetAlign(tabulate.ML)
	tab.Header("Samples").SetAlign(tabulate.MR)
	tab.Header("Input").SetAlign(tabulate.MR)
	tab.Header("Min").SetAlign(tabulate.MR)
	tab.Header("Mean").SetAlign(tabulate.MR)
	tab.Header("Max").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	row := tab.Row()
	row.Column(label)
	row.Column(fmt.Sprintf("%d", stats.Samples))
	row.Column(fmt.Sprintf("%d B", stats.InputLen))
	row.Column(fmt.Sprintf("%d", stats.Min))
	row.Column(fmt.Sprintf("%.2f", stats.Mean()))
	row.Column(fmt.Sprintf("%d", stats.Max))
	row.Column(fmt.Sprintf("%.2f%%", stats.Fraction()*100)).
		SetFormat(tabulate.FmtBold)

	tab.Print(w)
}
