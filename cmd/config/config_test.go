package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/hub-fulfillment/cmd/config"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, 24*time.Hour, cfg.Fulfillment.CollectionOtpTTL)
	assert.Equal(t, 3, cfg.Fulfillment.MaxRetries)
	assert.Equal(t, constant.RestockPriorityHigh, cfg.Fulfillment.RestockPriority)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("FULFILLMENT_COLLECTION_OTP_TTL", "12h")
	t.Setenv("FULFILLMENT_RESTOCK_PRIORITY", "urgent")

	cfg := config.Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 12*time.Hour, cfg.Fulfillment.CollectionOtpTTL)
	assert.Equal(t, constant.RestockPriorityUrgent, cfg.Fulfillment.RestockPriority)
	assert.Contains(t, cfg.GetDSN(), "@tcp(db.internal:3307)/")
	assert.Contains(t, cfg.GetDSN(), "parseTime=true")
}
