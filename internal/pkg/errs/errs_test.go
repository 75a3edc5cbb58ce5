package errs_test

import (
	"errors"
	"testing"

	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown enum value")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: unknown enum value)", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("text", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("orderNumber")

	assert.Equal(t, "orderNumber", err.ParamName)
	assert.Equal(t, "value is required: orderNumber", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestUniquenessConflictError(t *testing.T) {
	t.Run("NewUniquenessConflictError", func(t *testing.T) {
		err := errs.NewUniquenessConflictError("orderNumber", "ORD-20250101120000-000042")

		assert.Equal(t, "orderNumber", err.ParamName)
		assert.Equal(t, "ORD-20250101120000-000042", err.Value)
		assert.Equal(t,
			"uniqueness conflict: orderNumber is ORD-20250101120000-000042",
			err.Error())
		assert.Equal(t, errs.ErrUniquenessConflict, err.Unwrap())
	})

	t.Run("NewUniquenessConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewUniquenessConflictErrorWithCause("orderNumber", "ORD-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "cause: duplicate key value")
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("orderNumber"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewUniquenessConflictError("orderNumber", "ORD-1"), errs.ErrUniquenessConflict)
}
