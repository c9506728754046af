package services

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"gorm.io/gorm"
)

// codeAttempts caps the rejection-sampling loop before falling back to a
// clock-derived code. The fallback can collide; it is logged, never fatal.
const codeAttempts = 100

var (
	codeRand   = rand.New(rand.NewSource(time.Now().UnixNano()))
	codeRandMu sync.Mutex
)

func randomDigits(low, span int) string {
	codeRandMu.Lock()
	n := low + codeRand.Intn(span)
	codeRandMu.Unlock()
	return fmt.Sprintf("%d", n)
}

// codeQuerier is the slice of the order repository the generator needs.
type codeQuerier interface {
	CodeInUse(tx *gorm.DB, code string) (bool, error)
}

// generateOrderCode draws uniform 4-digit codes until one is free among
// non-completed orders. Runs inside the order-creating transaction so the
// collision check and the insert share one unit of work.
func generateOrderCode(tx *gorm.DB, q codeQuerier) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := randomDigits(1000, 9000)
		inUse, err := q.CodeInUse(tx, code)
		if err != nil {
			return "", err
		}
		if !inUse {
			return code, nil
		}
	}
	// Fallback: last 4 digits of the clock. Deterministic and possibly
	// colliding, kept for compatibility with stored data.
	fallback := fmt.Sprintf("%d", time.Now().UnixMilli())
	fallback = fallback[len(fallback)-4:]
	log.Printf("order code generator exhausted %d attempts, falling back to %s", codeAttempts, fallback)
	return fallback, nil
}

// generateCounterToken returns a 6-digit scratch-token code. Its value is
// only displayed; no collision check is needed.
func generateCounterToken() string {
	return randomDigits(100000, 900000)
}
