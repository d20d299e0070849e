package queue

import (
	"encoding/json"

	"github.com/telecom-portal/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskPasswordResetEmail 密码重置邮件任务
	TaskPasswordResetEmail = constants.TaskPasswordResetEmail
)

// PasswordResetEmailPayload 密码重置邮件任务载荷
type PasswordResetEmailPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	ResetURL string `json:"reset_url"`
}

// NewPasswordResetEmailTask 创建密码重置邮件任务
func NewPasswordResetEmailTask(payload PasswordResetEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPasswordResetEmail, body), nil
}
