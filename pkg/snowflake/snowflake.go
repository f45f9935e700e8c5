package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

func init() {
	node, _ = snowflake.NewNode(1)
}

// Init swaps the generator node; each api-server replica needs its own node id.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// GenID returns a new row id.
func GenID() uint64 {
	mu.RLock()
	defer mu.RUnlock()
	return uint64(node.Generate().Int64())
}
