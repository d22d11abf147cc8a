package tx_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/repository/tx"
	cerr "github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want constant.ErrorType
		pass bool
	}{
		{name: "deadlock", in: &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}, want: constant.ErrConcurrentModification},
		{name: "lock wait timeout wrapped", in: fmt.Errorf("update: %w", &mysql.MySQLError{Number: 1205}), want: constant.ErrConcurrentModification},
		{name: "check constraint", in: &mysql.MySQLError{Number: 3819}, want: constant.ErrDataIntegrity},
		{name: "duplicate key passes through", in: &mysql.MySQLError{Number: 1062}, pass: true},
		{name: "plain error passes through", in: stderrors.New("boom"), pass: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tx.Translate(tt.in)
			if tt.pass {
				assert.Equal(t, tt.in, got)
				return
			}
			assert.True(t, cerr.IsType(got, tt.want), "got %v", got)
		})
	}
	assert.NoError(t, tx.Translate(nil))
}
