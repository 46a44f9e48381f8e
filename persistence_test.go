package sparse

import (
	"bytes"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCSCMarshalRoundTrip(t *testing.T) {
	want := NewCSC(3, 4, []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 2}, []float64{1, 2, 3, 6})

	buf, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var got CSC
	if err := got.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !mat.Equal(&got, want) {
		t.Errorf("round trip mismatch: got=%v want=%v", mat.Formatted(&got), mat.Formatted(want))
	}
}

func TestCSCMarshalToFromRoundTrip(t *testing.T) {
	want := NewCSC(3, 4, []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 2}, []float64{1, 2, 3, 6})

	buf := new(bytes.Buffer)
	n, err := want.MarshalBinaryTo(buf)
	if err != nil {
		t.Fatalf("MarshalBinaryTo: %v", err)
	}

	var got CSC
	read, err := got.UnmarshalBinaryFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("UnmarshalBinaryFrom: %v", err)
	}
	if read != n {
		t.Errorf("bytes read = %d, want %d", read, n)
	}
	if !mat.Equal(&got, want) {
		t.Errorf("round trip mismatch: got=%v want=%v", mat.Formatted(&got), mat.Formatted(want))
	}
}

func TestCOOMarshalRoundTrip(t *testing.T) {
	want := NewCOO(3, 4, []int{0, 1, 2, 2}, []int{0, 1, 2, 3}, []float64{1, 2, 3, 6})

	buf, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var got COO
	if err := got.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !mat.Equal(&got, want) {
		t.Errorf("round trip mismatch: got=%v want=%v", mat.Formatted(&got), mat.Formatted(want))
	}
}

func TestCOOMarshalToFromRoundTrip(t *testing.T) {
	want := NewCOO(3, 4, []int{0, 1, 2, 2}, []int{0, 1, 2, 3}, []float64{1, 2, 3, 6})

	buf := new(bytes.Buffer)
	n, err := want.MarshalBinaryTo(buf)
	if err != nil {
		t.Fatalf("MarshalBinaryTo: %v", err)
	}

	var got COO
	read, err := got.UnmarshalBinaryFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("UnmarshalBinaryFrom: %v", err)
	}
	if read != n {
		t.Errorf("bytes read = %d, want %d", read, n)
	}
	if !mat.Equal(&got, want) {
		t.Errorf("round trip mismatch: got=%v want=%v", mat.Formatted(&got), mat.Formatted(want))
	}
}
