package public

import "github.com/gin-gonic/gin"

// currentCustomerID 读取中间件注入的客户 ID
func currentCustomerID(c *gin.Context) (uint, bool) {
	value, ok := c.Get("customer_id")
	if !ok {
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
