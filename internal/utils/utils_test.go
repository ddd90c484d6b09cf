package utils_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jose-wolf/task-api/internal/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationEnv(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{"5m", 5 * time.Minute},
		{"10", 10 * time.Second},
		{`"10s"`, 10 * time.Second},
		{"'30'", 30 * time.Second},
		{" 15 ", 15 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := utils.ParseDurationEnv(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "abc", "10x"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := utils.ParseDurationEnv(bad)
			assert.Error(t, err)
		})
	}
}

func TestIsPGUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	assert.True(t, utils.IsPGUniqueViolation(unique))
	assert.True(t, utils.IsPGUniqueViolation(fmt.Errorf("save user: %w", unique)))

	assert.False(t, utils.IsPGUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, utils.IsPGUniqueViolation(errors.New("plain error")))
	assert.False(t, utils.IsPGUniqueViolation(nil))
}
