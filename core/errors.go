package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED
//   - Ingest 错误：MALFORMED_INPUT
//   - 聚合错误：AGGREGATION_OVERFLOW
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "AGGREGATION_OVERFLOW"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "ingest", "cooccur"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误是否为 DomainError 类型
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*DomainError)
	return ok
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound       = "NOT_FOUND"            // 资源不存在
	ErrorCodeNotSupported   = "NOT_SUPPORTED"        // 操作不支持
	ErrorCodeMalformedInput = "MALFORMED_INPUT"      // 输入记录格式非法
	ErrorCodeOverflow       = "AGGREGATION_OVERFLOW" // 累加器溢出，整轮聚合作废
	ErrorCodeInvalidInput   = "INVALID_INPUT"        // 参数无效
)

// 模块名称常量
const (
	ModuleStore   = "store"   // 存储模块
	ModuleIngest  = "ingest"  // 数据接入模块
	ModuleCooccur = "cooccur" // 共现聚合模块
	ModuleQuery   = "query"   // 查询模块
)

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsMalformedInput 检查错误是否为 MALFORMED_INPUT
func IsMalformedInput(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeMalformedInput
	}
	return false
}

// IsAggregationOverflow 检查错误是否为 AGGREGATION_OVERFLOW
func IsAggregationOverflow(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeOverflow
	}
	return false
}
