package core

import "context"

// Store 是存储的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//   - 避免循环依赖：领域层不依赖基础设施层
//
// 使用场景：
//   - 评分数据接入：ingest.StoreSource 从存储读取评分序列
//   - 物品名称表：ingest.StoreNames 按 itemID 查展示名
//   - 相似度表落盘：similarity.StoreTableAdapter 持久化/加载冻结后的表
type Store interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// Get 读取单个 key 的值
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入单个 key-value
	Set(ctx context.Context, key string, value []byte, ttl ...int) error

	// Delete 删除单个 key
	Delete(ctx context.Context, key string) error

	// BatchGet 批量读取（减少网络往返）
	BatchGet(ctx context.Context, keys []string) (map[string][]byte, error)

	// BatchSet 批量写入
	BatchSet(ctx context.Context, kvs map[string][]byte, ttl ...int) error

	// Close 关闭连接/释放资源
	Close() error
}

// Store 错误定义（使用统一的 DomainError）
var (
	// ErrStoreNotFound 表示 key 不存在
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

	// ErrStoreNotSupported 表示操作不支持
	ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")
)

// IsStoreNotFound 检查错误是否为 key 不存在
func IsStoreNotFound(err error) bool {
	if err == nil {
		return false
	}
	domainErr := GetDomainError(err)
	if domainErr != nil && domainErr.Module == ModuleStore {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}
