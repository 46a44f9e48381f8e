// Command sparsechol reads a Matrix Market coordinate file describing a
// symmetric sparse matrix, runs symbolic analysis and numeric LDLᵀ
// factorization over it, and prints the statistics that drove the
// simplicial-vs-supernodal choice.
package main // import "github.com/sparsela/sparsechol/cmd/sparsechol"

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sparsela/sparsechol"
	"github.com/sparsela/sparsechol/cholesky"
	"github.com/sparsela/sparsechol/stack"
)

func main() {
	log.SetPrefix("sparsechol: ")
	log.SetFlags(0)

	path := flag.String("mtx", "", "path to a Matrix Market coordinate symmetric real file")
	threshold := flag.Float64("threshold", 0, "supernodal flop ratio threshold (0 = package default)")
	verbose := flag.Bool("v", false, "log each symbolic analysis stage")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sparsechol -mtx path/to/matrix.mtx [options]

Reads a symmetric sparse matrix in Matrix Market coordinate format,
factorizes it as A = P*L*D*Lᵀ*Pᵀ, and reports the pattern statistics and
kernel choice.

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *path == "" {
		flag.Usage()
		log.Fatalf("missing -mtx")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("open %s: %v", *path, err)
	}
	defer f.Close()

	a, err := readMatrixMarketSymmetric(f)
	if err != nil {
		log.Fatalf("read %s: %v", *path, err)
	}

	var logger *log.Logger
	if *verbose {
		logger = log.New(os.Stderr, "sparsechol: ", 0)
	}

	symA := sparse.SymbolicCSCOf(a)
	sym, err := cholesky.FactorizeSymbolic(symA, sparse.Upper, cholesky.SymbolicParams{
		SupernodalFlopRatioThreshold: *threshold,
		Logger:                       logger,
	})
	if err != nil {
		log.Fatalf("factorize symbolic: %v", err)
	}

	req, err := sym.FactorizeNumericLDLTReq(sparse.Upper, 1)
	if err != nil {
		log.Fatalf("numeric req: %v", err)
	}
	st := stack.New(req)

	lValues := make([]float64, sym.LenValues())
	num, err := sym.FactorizeNumericLDLT(lValues, a, sparse.Upper, 1, cholesky.NumericParams{CheckPositiveDefinite: true}, st)
	if err != nil {
		log.Fatalf("factorize numeric: %v", err)
	}

	kernel := "simplicial"
	if sym.Supernodal {
		kernel = "supernodal"
	}

	fmt.Printf("n              = %d\n", sym.N)
	fmt.Printf("A nnz (upper)  = %d\n", sym.ANNZ)
	fmt.Printf("kernel         = %s\n", kernel)
	fmt.Printf("log det        = %g\n", num.LogDet())
}

// readMatrixMarketSymmetric parses the subset of the Matrix Market
// coordinate format this command needs: a %%MatrixMarket header line, a
// "rows cols nnz" dimension line, and nnz "row col value" triples (1
// indexed, as the format specifies). Only the symmetric object type is
// accepted - each stored triple supplies both (row, col) and (col, row).
func readMatrixMarketSymmetric(f *os.File) (*sparse.CSC, error) {
	sc := bufio.NewScanner(f)

	var header string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		header = line
		break
	}
	if !strings.HasPrefix(header, "%%MatrixMarket") {
		return nil, fmt.Errorf("missing %%%%MatrixMarket header")
	}
	if !strings.Contains(strings.ToLower(header), "symmetric") {
		return nil, fmt.Errorf("only the symmetric object type is supported")
	}

	var n int
	var rows, cols []int
	var vals []float64
	haveDims := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if !haveDims {
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed dimension line %q", line)
			}
			r, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, err
			}
			c, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, err
			}
			if r != c {
				return nil, fmt.Errorf("matrix must be square, got %d x %d", r, c)
			}
			n = r
			haveDims = true
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("malformed entry line %q", line)
		}
		r, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, err
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, err
		}
		// Matrix Market is 1-indexed; fold into the upper triangle
		// (row <= col) this package's CSC convention expects.
		ri, ci := r-1, c-1
		if ri > ci {
			ri, ci = ci, ri
		}
		rows = append(rows, ri)
		cols = append(cols, ci)
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !haveDims {
		return nil, fmt.Errorf("missing dimension line")
	}

	coo := sparse.NewCOO(n, n, rows, cols, vals)
	return coo.ToCSC(), nil
}
