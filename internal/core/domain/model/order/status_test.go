package order_test

import (
	"fmt"
	"testing"

	"orderagent/internal/core/domain/model/order"
	"orderagent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.New))
		assert.Equal(t, 2, int(order.SentToCourier))
		assert.Equal(t, 3, int(order.FailedToSend))
		assert.Equal(t, 4, int(order.Retrying))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.New,
			order.SentToCourier,
			order.FailedToSend,
			order.Retrying,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire encoding for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.New, "new"},
			{order.SentToCourier, "sent_to_courier"},
			{order.FailedToSend, "failed_to_send"},
			{order.Retrying, "retrying"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(5),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "unknown", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.New,
			order.SentToCourier,
			order.FailedToSend,
			order.Retrying,
		} {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "shipped", "NEW"} {
			_, err := order.StatusFromString(s)

			require.Error(t, err, "string %q must not parse", s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Send(t *testing.T) {
	t.Run("should transition from New", func(t *testing.T) {
		newStatus, err := order.New.Send()

		require.NoError(t, err)
		assert.Equal(t, order.SentToCourier, newStatus)
	})

	t.Run("should transition from Retrying", func(t *testing.T) {
		newStatus, err := order.Retrying.Send()

		require.NoError(t, err)
		assert.Equal(t, order.SentToCourier, newStatus)
	})

	t.Run("should reject non-dispatchable statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.SentToCourier, order.FailedToSend} {
			_, err := status.Send()

			require.Error(t, err, "status %s must not allow Send", status)
			assert.Contains(t, err.Error(), "not a valid status to mark as sent")
		}
	})
}

func TestStatus_Fail(t *testing.T) {
	t.Run("should transition from New", func(t *testing.T) {
		newStatus, err := order.New.Fail()

		require.NoError(t, err)
		assert.Equal(t, order.FailedToSend, newStatus)
	})

	t.Run("should transition from Retrying", func(t *testing.T) {
		newStatus, err := order.Retrying.Fail()

		require.NoError(t, err)
		assert.Equal(t, order.FailedToSend, newStatus)
	})

	t.Run("should reject non-dispatchable statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.SentToCourier, order.FailedToSend} {
			_, err := status.Fail()

			require.Error(t, err, "status %s must not allow Fail", status)
		}
	})
}

func TestStatus_Retry(t *testing.T) {
	t.Run("should transition from any valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.New,
			order.SentToCourier,
			order.FailedToSend,
			order.Retrying,
		} {
			newStatus, err := status.Retry()

			require.NoError(t, err, "status %s must allow Retry", status)
			assert.Equal(t, order.Retrying, newStatus)
		}
	})

	t.Run("should reject invalid statuses", func(t *testing.T) {
		_, err := order.Unknown.Retry()

		require.Error(t, err)
	})
}

func TestStatus_IsDispatchable(t *testing.T) {
	assert.True(t, order.New.IsDispatchable())
	assert.True(t, order.Retrying.IsDispatchable())
	assert.False(t, order.SentToCourier.IsDispatchable())
	assert.False(t, order.FailedToSend.IsDispatchable())
	assert.False(t, order.Unknown.IsDispatchable())
}
