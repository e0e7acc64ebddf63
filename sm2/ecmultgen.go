package sm2

import (
	"sync"
)

// ecmultGenWindows is the number of 4-bit digit positions spanning a
// 256-bit scalar (matches booth4Windows in ecmult.go).
const ecmultGenWindows = 64

// ecmultGenTable holds, for every one of the 64 base-4-bit window
// positions, the eight affine odd multiples of (16^windowIndex)*G needed by
// the same Booth-windowed recoding ScalarMult uses. Building the full table
// costs 64*8 = 512 point operations; spec.md §4.4/§5/§9 calls for doing
// this once, off the hot path, optionally spread across a small worker
// pool so that process startup doesn't pay for it serially on a single
// core — grounded on the teacher's group.go precomputed-table-plus-
// sync.Once pattern.
type ecmultGenTable struct {
	windows [ecmultGenWindows]ecmultTable
}

var (
	genTableOnce sync.Once
	genTable     ecmultGenTable
)

// ecmultGenWorkers bounds the concurrent table-build worker pool.
const ecmultGenWorkers = 6

// getGenTable returns the process-wide base-point precomputed table,
// building it on first use. Building is attempted with a bounded worker
// pool; if any worker panics (e.g. resource exhaustion) the whole table is
// rebuilt single-threaded as a fallback, per spec.md §9's robustness note.
func getGenTable() *ecmultGenTable {
	genTableOnce.Do(func() {
		if !buildGenTableConcurrent(&genTable) {
			buildGenTableSerial(&genTable)
		}
	})
	return &genTable
}

func buildGenTableSerial(tbl *ecmultGenTable) {
	base := Generator
	for w := 0; w < ecmultGenWindows; w++ {
		tbl.windows[w] = buildEcmultTable(base)
		base = scaleByBase4(base)
	}
}

// buildGenTableConcurrent builds each window's table on a small worker
// pool. Each window's base point (16^w * G) is cheap to derive
// independently via repeated doubling, so workers need no shared state
// besides the output slots they each own exclusively. Returns false (and
// leaves tbl possibly partially built) if a worker fails, signaling the
// caller to fall back to the serial path.
func buildGenTableConcurrent(tbl *ecmultGenTable) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	type job struct {
		idx  int
		base AffinePoint
	}
	jobs := make(chan job, ecmultGenWindows)
	base := Generator
	for w := 0; w < ecmultGenWindows; w++ {
		jobs <- job{idx: w, base: base}
		base = scaleByBase4(base)
	}
	close(jobs)

	var wg sync.WaitGroup
	var failed bool
	var mu sync.Mutex

	for i := 0; i < ecmultGenWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if recover() != nil {
					mu.Lock()
					failed = true
					mu.Unlock()
				}
			}()
			for j := range jobs {
				tbl.windows[j.idx] = buildEcmultTable(j.base)
			}
		}()
	}
	wg.Wait()

	return !failed
}

// scaleByBase4 returns 16*p (four doublings), used to step the window base
// point from 16^w*G to 16^(w+1)*G.
func scaleByBase4(p AffinePoint) AffinePoint {
	j := JacobianFromAffine(p)
	for i := 0; i < 4; i++ {
		j = j.Double()
	}
	return j.ToAffine()
}

// ScalarBaseMult computes k*G using the process-wide precomputed table,
// avoiding the repeated doublings ScalarMult needs for an arbitrary point:
// each window's table is already scaled to 16^w*G, so the windows are
// summed directly with no doubling step. Every window runs the identical
// selectBoothTerm scan and add regardless of the digit's value — see
// selectBoothTerm's doc comment — so a signer's private key never shows up
// as a branch taken or a table slot touched.
func ScalarBaseMult(k ScalarField) AffinePoint {
	tbl := getGenTable()
	kPlain := k.toPlain()
	digits := booth4Windows(kPlain)

	var acc JacobianPoint
	for w := ecmultGenWindows - 1; w >= 0; w-- {
		acc = acc.Add(selectBoothTerm(tbl.windows[w], digits[w]))
	}
	return acc.ToAffine()
}
