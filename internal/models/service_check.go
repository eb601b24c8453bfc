package models

import "time"

// ServiceCheck 服务巡检记录
type ServiceCheck struct {
	ID         uint      `gorm:"primarykey" json:"id"`                           // 主键
	Service    string    `gorm:"type:varchar(50);not null;index" json:"service"` // 巡检对象
	Status     string    `gorm:"type:varchar(20);not null;index" json:"status"`  // 状态（UP/DOWN/DEGRADED/ERROR）
	ResponseMS int64     `gorm:"not null;default:0" json:"response_ms"`          // 响应耗时（毫秒）
	Details    string    `gorm:"type:text" json:"details"`                       // 详情
	CheckedAt  time.Time `gorm:"not null;index" json:"checked_at"`               // 巡检时间
}

// TableName 指定表名
func (ServiceCheck) TableName() string {
	return "service_checks"
}
