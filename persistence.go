package sparse

import (
	"encoding"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

const (
	// maxLen is the biggest slice/array len one can create on a 32/64b platform.
	maxLen = int64(int(^uint(0) >> 1))
)

var (
	sizeInt64   = binary.Size(int64(0))
	sizeFloat64 = binary.Size(float64(0))

	_ encoding.BinaryMarshaler   = (*COO)(nil)
	_ encoding.BinaryUnmarshaler = (*COO)(nil)
	_ encoding.BinaryMarshaler   = (*CSC)(nil)
	_ encoding.BinaryUnmarshaler = (*CSC)(nil)
)

// MarshalBinary binary serialises the receiver into a []byte and returns the result.
//
// CSC is little-endian encoded as follows:
//   0 -  7  number of columns (int64)
//   8 - 15  number of rows    (int64)
//  16 - 23  number of indptr  (int64)
//  24 - 31  number of ind     (int64)
//  32 - 39  number of non zero elements (int64)
//  40 - ..  indptr and ind elements (int64), then data elements (float64)
func (c *CSC) MarshalBinary() ([]byte, error) {
	bufLen := 5*int64(sizeInt64) + // row and column count plus lengths of the slices
		int64(len(c.indptr))*int64(sizeInt64) + // indptr slice
		int64(len(c.ind))*int64(sizeInt64) + // ind slice
		int64(len(c.data))*int64(sizeFloat64) // data slice
	if bufLen <= 0 {
		// bufLen is too big and has wrapped around.
		return nil, errors.New("sparse: buffer for data is too big")
	}

	p := 0
	buf := make([]byte, bufLen)
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(c.i))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(c.j))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(len(c.indptr)))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(len(c.ind)))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(len(c.data)))
	p += sizeInt64

	for _, x := range c.indptr {
		binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(x))
		p += sizeInt64
	}

	for _, x := range c.ind {
		binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(x))
		p += sizeInt64
	}

	for _, x := range c.data {
		binary.LittleEndian.PutUint64(buf[p:p+sizeFloat64], math.Float64bits(x))
		p += sizeFloat64
	}

	return buf, nil
}

// MarshalBinaryTo binary serialises the receiver and writes it into w.
// MarshalBinaryTo returns the number of bytes written into w and an error, if any.
//
// See MarshalBinary for the serialised layout.
func (c *CSC) MarshalBinaryTo(w io.Writer) (int, error) {
	var n int
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(c.i))
	nn, err := w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(c.j))
	nn, err = w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(c.indptr)))
	nn, err = w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(c.ind)))
	nn, err = w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(c.data)))
	nn, err = w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}

	for _, x := range c.indptr {
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		nn, err = w.Write(buf[:])
		n += nn
		if err != nil {
			return n, err
		}
	}

	for _, x := range c.ind {
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		nn, err = w.Write(buf[:])
		n += nn
		if err != nil {
			return n, err
		}
	}

	for _, x := range c.data {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		nn, err = w.Write(buf[:])
		n += nn
		if err != nil {
			return n, err
		}
	}

	return n, nil
}

// UnmarshalBinary binary deserialises the []byte into the receiver.
//
// See MarshalBinary for the on-disk layout.
//
// Limited checks on the validity of the binary input are performed:
//  - an error is returned if the resulting compressed sprase matrix is too
//  big for the current architecture (e.g. a 16GB matrix written by a
//  64b application and read back from a 32b application.)
// UnmarshalBinary does not limit the size of the unmarshaled matrix, and so
// it should not be used on untrusted data.
func (c *CSC) UnmarshalBinary(data []byte) error {
	if len(data) < 5*sizeInt64 {
		return errors.New("sparse: data is missing required attributes")
	}

	p := 0
	c.i = int(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	c.j = int(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	pn := int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	pi := int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	pd := int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64

	if int(pn) < 0 || pn > maxLen || int(pi) < 0 || pi > maxLen || int(pd) < 0 || pd > maxLen {
		return errors.New("sparse: data is too big")
	}

	c.indptr = make([]int, pn)
	for i := 0; i < len(c.indptr); i++ {
		c.indptr[i] = int(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
		p += sizeInt64
	}

	c.ind = make([]int, pi)
	for i := 0; i < len(c.ind); i++ {
		c.ind[i] = int(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
		p += sizeInt64
	}

	c.data = make([]float64, pd)
	for i := 0; i < len(c.data); i++ {
		c.data[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[p : p+sizeFloat64]))
		p += sizeFloat64
	}

	return nil
}

// UnmarshalBinaryFrom binary deserialises the []byte into the receiver and returns
// the number of bytes read and an error if any.
//
// See MarshalBinary for the on-disk layout.
//
// Limited checks on the validity of the binary input are performed:
//  - an error is returned if the resulting compressed sparse matrix is too
//  big for the current architecture (e.g. a 16GB matrix written by a
//  64b application and read back from a 32b application.)
// UnmarshalBinary does not limit the size of the unmarshaled matrix, and so
// it should not be used on untrusted data.
func (c *CSC) UnmarshalBinaryFrom(r io.Reader) (int, error) {
	var n int
	var buf [8]byte

	nn, err := readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	i := int64(binary.LittleEndian.Uint64(buf[:]))

	nn, err = readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	j := int64(binary.LittleEndian.Uint64(buf[:]))

	nn, err = readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	indptrn := int64(binary.LittleEndian.Uint64(buf[:]))

	nn, err = readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	indn := int64(binary.LittleEndian.Uint64(buf[:]))

	nn, err = readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	datan := int64(binary.LittleEndian.Uint64(buf[:]))

	if int(indptrn) < 0 || indptrn > maxLen {
		return n, errors.New("sparse: data is too big")
	}
	if int(indn) < 0 || indn > maxLen {
		return n, errors.New("sparse: data is too big")
	}
	if int(datan) < 0 || datan > maxLen {
		return n, errors.New("sparse: data is too big")
	}
	if i < 0 || j < 0 {
		return n, errors.New("sparse: dimensions/data size mismatch")
	}

	c.i = int(i)
	c.j = int(j)
	c.indptr = make([]int, indptrn)
	c.ind = make([]int, indn)
	c.data = make([]float64, datan)

	for i := range c.indptr {
		nn, err = readUntilFull(r, buf[:])
		n += nn
		if err != nil {
			return n, err
		}
		c.indptr[i] = int(binary.LittleEndian.Uint64(buf[:]))
	}

	for i := range c.ind {
		nn, err = readUntilFull(r, buf[:])
		n += nn
		if err != nil {
			return n, err
		}
		c.ind[i] = int(binary.LittleEndian.Uint64(buf[:]))
	}

	for i := range c.data {
		nn, err = readUntilFull(r, buf[:])
		n += nn
		if err != nil {
			return n, err
		}
		c.data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))
	}

	return n, nil
}

// MarshalBinary binary serialises the receiver into a []byte and returns the result.
//
// COO is little-endian encoded as follows:
//   0 -  7  number of rows    (int64)
//   8 - 15  number of columns (int64)
//  16 - 23  number of row indices    (int64)
//  24 - 31  number of column indices (int64)
//  32 - 39  number of non zero elements (int64)
//  40 - ..  row and column index elements (int64), then data elements (float64)
func (c *COO) MarshalBinary() ([]byte, error) {
	bufLen := 5*int64(sizeInt64) + // row and column count plus lengths of the slices
		int64(len(c.rows))*int64(sizeInt64) + // rows slice
		int64(len(c.cols))*int64(sizeInt64) + // cols slice
		int64(len(c.data))*int64(sizeFloat64) // data slice
	if bufLen <= 0 {
		// bufLen is too big and has wrapped around.
		return nil, errors.New("sparse: buffer for data is too big")
	}
	p := 0
	buf := make([]byte, bufLen)
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(c.r))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(c.c))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(len(c.rows)))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(len(c.cols)))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(len(c.data)))
	p += sizeInt64

	for _, x := range c.rows {
		binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(x))
		p += sizeInt64
	}

	for _, x := range c.cols {
		binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(x))
		p += sizeInt64
	}

	for _, x := range c.data {
		binary.LittleEndian.PutUint64(buf[p:p+sizeFloat64], math.Float64bits(x))
		p += sizeFloat64
	}

	return buf, nil
}

// MarshalBinaryTo binary serialises the receiver and writes it into w.
// MarshalBinaryTo returns the number of bytes written into w and an error, if any.
//
// See MarshalBinary for the serialised layout.
func (c *COO) MarshalBinaryTo(w io.Writer) (int, error) {
	var n int
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(c.r))
	nn, err := w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(c.c))
	nn, err = w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}

	binary.LittleEndian.PutUint64(buf[:], uint64(len(c.rows)))
	nn, err = w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(c.cols)))
	nn, err = w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(c.data)))
	nn, err = w.Write(buf[:])
	n += nn
	if err != nil {
		return n, err
	}

	for _, x := range c.rows {
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		nn, err = w.Write(buf[:])
		n += nn
		if err != nil {
			return n, err
		}
	}

	for _, x := range c.cols {
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		nn, err = w.Write(buf[:])
		n += nn
		if err != nil {
			return n, err
		}
	}

	for _, x := range c.data {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		nn, err = w.Write(buf[:])
		n += nn
		if err != nil {
			return n, err
		}
	}

	return n, nil
}

// UnmarshalBinary binary deserialises the []byte into the receiver.
//
// See MarshalBinary for the on-disk layout.
//
// Limited checks on the validity of the binary input are performed:
//  - an error is returned if the resulting compressed sprase matrix is too
//  big for the current architecture (e.g. a 16GB matrix written by a
//  64b application and read back from a 32b application.)
// UnmarshalBinary does not limit the size of the unmarshaled matrix, and so
// it should not be used on untrusted data.
func (c *COO) UnmarshalBinary(data []byte) error {
	if len(data) < 5*sizeInt64+2 {
		return errors.New("sparse: data is missing required attributes")
	}

	p := 0
	c.r = int(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	c.c = int(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	pr := int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	pc := int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	pd := int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64

	if int(pr) < 0 || pr > maxLen || int(pc) < 0 || pc > maxLen || int(pd) < 0 || pd > maxLen {
		return errors.New("sparse: data is too big")
	}

	c.rows = make([]int, pr)
	for i := 0; i < len(c.rows); i++ {
		c.rows[i] = int(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
		p += sizeInt64
	}

	c.cols = make([]int, pc)
	for i := 0; i < len(c.cols); i++ {
		c.cols[i] = int(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
		p += sizeInt64
	}

	c.data = make([]float64, pd)
	for i := 0; i < len(c.data); i++ {
		c.data[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[p : p+sizeFloat64]))
		p += sizeFloat64
	}

	return nil
}

// UnmarshalBinaryFrom binary deserialises the []byte into the receiver and returns
// the number of bytes read and an error if any.
//
// See MarshalBinary for the on-disk layout.
//
// Limited checks on the validity of the binary input are performed:
//  - an error is returned if the resulting compressed sparse matrix is too
//  big for the current architecture (e.g. a 16GB matrix written by a
//  64b application and read back from a 32b application.)
// UnmarshalBinary does not limit the size of the unmarshaled matrix, and so
// it should not be used on untrusted data.
func (c *COO) UnmarshalBinaryFrom(r io.Reader) (int, error) {
	var n int
	var buf [8]byte

	nn, err := readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	i := int64(binary.LittleEndian.Uint64(buf[:]))

	nn, err = readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	j := int64(binary.LittleEndian.Uint64(buf[:]))

	nn, err = readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	rcnt := int64(binary.LittleEndian.Uint64(buf[:]))

	nn, err = readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	ccnt := int64(binary.LittleEndian.Uint64(buf[:]))

	nn, err = readUntilFull(r, buf[:])
	n += nn
	if err != nil {
		return n, err
	}
	datan := int64(binary.LittleEndian.Uint64(buf[:]))

	if int(rcnt) < 0 || rcnt > maxLen {
		return n, errors.New("sparse: data is too big")
	}
	if int(ccnt) < 0 || ccnt > maxLen {
		return n, errors.New("sparse: data is too big")
	}
	if int(datan) < 0 || datan > maxLen {
		return n, errors.New("sparse: data is too big")
	}
	if i < 0 || j < 0 {
		return n, errors.New("sparse: dimensions/data size mismatch")
	}

	c.r = int(i)
	c.c = int(j)
	c.rows = make([]int, rcnt)
	c.cols = make([]int, ccnt)
	c.data = make([]float64, datan)

	for i := range c.rows {
		nn, err = readUntilFull(r, buf[:])
		n += nn
		if err != nil {
			return n, err
		}
		c.rows[i] = int(binary.LittleEndian.Uint64(buf[:]))
	}

	for i := range c.cols {
		nn, err = readUntilFull(r, buf[:])
		n += nn
		if err != nil {
			return n, err
		}
		c.cols[i] = int(binary.LittleEndian.Uint64(buf[:]))
	}

	for i := range c.data {
		nn, err = readUntilFull(r, buf[:])
		n += nn
		if err != nil {
			return n, err
		}
		c.data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))
	}

	return n, nil
}

// readUntilFull reads from r into buf until it has read len(buf).
// It returns the number of bytes copied and an error if fewer bytes were read.
// If an EOF happens after reading fewer than len(buf) bytes, io.ErrUnexpectedEOF is returned.
func readUntilFull(r io.Reader, buf []byte) (int, error) {
	var n int
	var err error
	for n < len(buf) && err == nil {
		var nn int
		nn, err = r.Read(buf[n:])
		n += nn
	}
	if n == len(buf) {
		return n, nil
	}
	if err == io.EOF {
		return n, io.ErrUnexpectedEOF
	}
	return n, err
}
