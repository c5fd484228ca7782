// Package parallel provides a batch processor that fans blocks out across
// CPUs.  Blocks are mutually independent: each builds its own state from
// the static key material and depends only on its own block index, so the
// workers share nothing mutable and writes land in disjoint 32-byte slots
// of the output.  The result is byte-identical to the serial processor.
package parallel

import (
	"runtime"
	"sync"

	"github.com/rosettascript/ruc/internal/api"
	"github.com/rosettascript/ruc/internal/block"
)

var Impl api.Impl = &parallelImpl{}

type parallelImpl struct{}

func (impl *parallelImpl) Name() string {
	return "parallel"
}

func (impl *parallelImpl) Process(dst, src []byte, startBlock uint64, p *api.Params) {
	numBlocks := len(src) / api.BlockSize
	workers := runtime.GOMAXPROCS(0)
	if workers > numBlocks {
		workers = numBlocks
	}
	if workers <= 1 {
		processRange(dst, src, startBlock, p, 0, numBlocks)
		return
	}

	chunk := (numBlocks + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < numBlocks; lo += chunk {
		hi := lo + chunk
		if hi > numBlocks {
			hi = numBlocks
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			processRange(dst, src, startBlock, p, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

func processRange(dst, src []byte, startBlock uint64, p *api.Params, lo, hi int) {
	for i := lo; i < hi; i++ {
		off := i * api.BlockSize
		block.Encrypt(dst[off:off+api.BlockSize], src[off:off+api.BlockSize], startBlock+uint64(i), p)
	}
}
