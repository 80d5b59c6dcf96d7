package store

import "github.com/rushteam/simkit/core"

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.Store 接口。
//
// 示例：
//   var s core.Store = NewMemoryStore()

// ErrNotFound 表示 key 不存在（复用 core 的统一错误）。
var ErrNotFound = core.ErrStoreNotFound
