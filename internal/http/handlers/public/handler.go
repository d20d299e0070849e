package public

import "github.com/telecom-portal/internal/provider"

// Handler 公开/客户侧接口处理器入口
// 说明：该处理器用于登录注册、找回密码与客户自助 API。
type Handler struct {
	*provider.Container
}

// New 创建公开处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
