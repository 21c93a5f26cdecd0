package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// 全局 logger，main 初始化后各处通过 L() 取用
var global = zap.NewNop()

// Init 初始化全局 logger
func Init(debugMode bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debugMode {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	global = l
	return l, nil
}

// L 获取全局 logger
func L() *zap.Logger {
	return global
}

// Sync 退出前刷盘
func Sync() {
	_ = global.Sync()
}
