package storage

import (
	"github.com/skulk0156/EMS-backend/storage/database"
	"github.com/skulk0156/EMS-backend/storage/mq"
	"github.com/skulk0156/EMS-backend/storage/redis"
)

//统一 init storage 层

func Init() error {
	if err := database.Init(); err != nil {
		return err
	}

	if err := redis.Init(); err != nil {
		return err
	}

	if err := mq.Init(); err != nil {
		return err
	}

	return nil
}
