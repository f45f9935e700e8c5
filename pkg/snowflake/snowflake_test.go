package snowflake

import (
	"sync"
	"testing"
)

func TestGenID(t *testing.T) {
	id := GenID()
	if id == 0 {
		t.Fatalf("expected id > 0, got %d", id)
	}
}

func TestGenID_Unique(t *testing.T) {
	const n = 10000
	ids := make(map[uint64]struct{}, n)

	for i := 0; i < n; i++ {
		id := GenID()
		if _, exists := ids[id]; exists {
			t.Fatalf("duplicate id found: %d", id)
		}
		ids[id] = struct{}{}
	}
}

// 多 goroutine 并发生成
func TestGenID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 5000
		total      = goroutines * perRoutine
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[uint64]struct{}, total)
		dup uint64
	)

	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenID()

				mu.Lock()
				if _, exists := ids[id]; exists {
					dup = id
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	if dup != 0 {
		t.Fatalf("duplicate id found in concurrent test: %d", dup)
	}
}

func TestGenID_Order(t *testing.T) {
	prev := GenID()

	for i := 0; i < 1000; i++ {
		curr := GenID()
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}

func TestInit(t *testing.T) {
	if err := Init(2000); err == nil {
		t.Fatal("expected error for node id out of range")
	}
	if err := Init(7); err != nil {
		t.Fatalf("init node: %v", err)
	}
	if GenID() == 0 {
		t.Fatal("expected id after re-init")
	}
}
