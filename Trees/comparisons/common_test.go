package comparisons

import "math/rand"

// rg is shared by the oracle tests and the benchmark keys.
var rg = *rand.New(rand.NewSource(0))

const (
	oracleOps        = 20000
	oracleValRange   = 3000
	benchmarkItemCnt = 1 << 14
)

var benchKeys = rg.Perm(benchmarkItemCnt)
