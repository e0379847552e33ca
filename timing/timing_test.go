//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package timing

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFileSize(t *testing.T) {
	tests := []struct {
		size FileSize
		str  string
	}{
		{0, "0B"},
		{1000, "1000B"},
		{1001, "1kB"},
		{2500000, "2MB"},
		{3000000001, "3GB"},
		{4000000000001, "4TB"},
	}
	for _, test := range tests {
		if s := test.size.String(); s != test.str {
			t.Errorf("FileSize(%d)=%s, expected %s", uint64(test.size), s, test.str)
		}
	}
}

func TestThroughput(t *testing.T) {
	if r := Throughput(2000000, time.Second); r != "2MB/s" {
		t.Errorf("Throughput=%s", r)
	}
	if r := Throughput(100, 0); r != "-" {
		t.Errorf("Throughput(0)=%s", r)
	}
}

func TestTiming(t *testing.T) {
	timing := NewTiming()

	var buf bytes.Buffer
	timing.Print(&buf)
	if buf.Len() != 0 {
		t.Fatalf("empty timing printed: %s", buf.String())
	}

	sample := timing.Sample("Hash", 1024)
	sample.SubSample("Blocks", sample.End)
	sample.AbsSubSample("Final", time.Millisecond)
	timing.Sample("Encode", 64)

	d, size := timing.Total()
	if size != 1088 {
		t.Fatalf("Total size=%d", size)
	}
	if d < 0 {
		t.Fatalf("Total duration=%v", d)
	}
	if len(sample.Samples) != 2 {
		t.Fatalf("sub-samples=%d", len(sample.Samples))
	}

	timing.Print(&buf)
	out := buf.String()
	for _, label := range []string{"Hash", "Blocks", "Final", "Encode", "Total"} {
		if !strings.Contains(out, label) {
			t.Errorf("report missing %s:\n%s", label, out)
		}
	}
}
