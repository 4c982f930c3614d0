package errs_test

import (
	"errors"
	"testing"

	"buildmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("projectId", "123")

		assert.Equal(t, "projectId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("projectId", "123", cause)

		assert.Equal(t, "projectId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: projectId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
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
		cause := errors.New("invalid transition")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid transition)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 6, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 6 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("title")

		assert.Equal(t, "title", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: title", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("title", cause)

		assert.Equal(t, "title", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: title (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestOperationIsForbiddenError(t *testing.T) {
	t.Run("NewOperationIsForbiddenError", func(t *testing.T) {
		err := errs.NewOperationIsForbiddenError("companyId")

		assert.Equal(t, "companyId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation is forbidden: companyId", err.Error())
		assert.Equal(t, errs.ErrOperationIsForbidden, err.Unwrap())
	})

	t.Run("NewOperationIsForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("not a party on the order")
		err := errs.NewOperationIsForbiddenErrorWithCause("companyId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "operation is forbidden: companyId (cause: not a party on the order)", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("quote", "123")

		assert.Equal(t, "quote", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, "object already exists: 123", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewObjectAlreadyExistsErrorWithCause("review", "456", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: review, ID is: 456 (cause: unique constraint violated)",
			err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "operation is forbidden", errs.ErrOperationIsForbidden.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 0, 1, 5), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("title"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewOperationIsForbiddenError("companyId"), errs.ErrOperationIsForbidden)
		require.ErrorIs(t, errs.NewObjectAlreadyExistsError("quote", "123"), errs.ErrObjectAlreadyExists)
	})
}
