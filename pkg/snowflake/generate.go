package snowflake

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once

	errInvalidMachineID    = errors.New("snowflake machine id must be in [0, 31]")
	errInvalidDataCenterID = errors.New("snowflake datacenter id must be in [0, 31]")
	errGeneratorUninitial  = errors.New("snowflake generator is not initialized")
)

// Init 初始化活动消息 ID 生成器。dataCenterID 和 machineID 各占 5 位，
// 拼成 10 位节点号，多实例部署时必须互不相同。
func Init(machineID, dataCenterID int64) error {
	var initErr error

	once.Do(func() {
		if machineID < 0 || machineID > 31 {
			initErr = errInvalidMachineID
			return
		}
		if dataCenterID < 0 || dataCenterID > 31 {
			initErr = errInvalidDataCenterID
			return
		}

		nodeID := (dataCenterID << 5) | machineID

		var err error
		node, err = snowflake.NewNode(nodeID)
		if err != nil {
			initErr = err
			return
		}
	})

	return initErr
}

// NextID 生成下一个消息 ID，未 Init 时返回错误。
func NextID() (int64, error) {
	if node == nil {
		return 0, errGeneratorUninitial
	}

	return node.Generate().Int64(), nil
}
