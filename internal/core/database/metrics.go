package database

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// RegisterMetrics 导出连接池统计（go_sql_* 指标，db_name 标签）
func RegisterMetrics(db *gorm.DB, name string, reg prometheus.Registerer) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return reg.Register(collectors.NewDBStatsCollector(sqlDB, name))
}
