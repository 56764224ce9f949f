// Package wordlist loads word pools from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/verte-zerg/wordfall/internal/model"
)

// Length boundaries for the pools: common words feed low difficulty rolls,
// difficult and boss words the higher ones.
const (
	minCommonLen    = 3
	minDifficultLen = 7
	minBossLen      = 10
)

// LoadPools reads one word per line, lowercases it, drops anything that is
// not purely alphabetic, and partitions the rest by length. A list without a
// single common word is unusable and reported as an error.
func LoadPools(path string) (model.Pools, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Pools{}, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var pools model.Pools
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if !Typeable(word) {
			continue
		}
		switch {
		case len(word) >= minBossLen:
			pools.Boss = append(pools.Boss, word)
		case len(word) >= minDifficultLen:
			pools.Difficult = append(pools.Difficult, word)
		case len(word) >= minCommonLen:
			pools.Common = append(pools.Common, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return model.Pools{}, err
	}
	if len(pools.Common) == 0 {
		return model.Pools{}, fmt.Errorf("word list has no usable words (need lowercase words of %d+ letters)", minCommonLen)
	}
	return pools, nil
}
