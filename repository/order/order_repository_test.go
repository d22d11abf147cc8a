package order

import (
	"os"
	"regexp"
	"testing"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrderIDsQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    *model.OrderFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "first page",
			filter:    &model.OrderFilter{Status: constant.OrderStatusPending, Limit: 100},
			wantQuery: "SELECT id FROM `order` WHERE true AND status = ? ORDER BY id LIMIT ?",
			wantArgs:  []any{constant.OrderStatusPending, 100},
		},
		{
			name:      "resumes after the last id seen",
			filter:    &model.OrderFilter{Status: constant.OrderStatusPending, AfterID: 76, Limit: 2},
			wantQuery: "SELECT id FROM `order` WHERE true AND status = ? AND id > ? ORDER BY id LIMIT ?",
			wantArgs:  []any{constant.OrderStatusPending, uint64(76), 2},
		},
		{
			name:      "unfiltered",
			filter:    &model.OrderFilter{},
			wantQuery: "SELECT id FROM `order` WHERE true ORDER BY id",
			wantArgs:  []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := listOrderIDsQuery(tt.filter)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

// OTP expiry is compared to the microsecond, so the stored timestamps must not be rounded.
func TestSchema_OtpTimestampsKeepMicroseconds(t *testing.T) {
	schema, err := os.ReadFile("../../migrations/001_init.sql")
	require.NoError(t, err)

	for _, column := range []string{"delivery_otp_generated_at", "collection_otp_generated_at"} {
		def := regexp.MustCompile(`(?m)^\s*` + column + `\s+(\S+)`).FindSubmatch(schema)
		require.NotNil(t, def, column)
		assert.Equal(t, "DATETIME(6)", string(def[1]), column)
	}
}
