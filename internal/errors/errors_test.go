package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "part"}
		assert.Equal(t, "part not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "part"}
		err2 := &NotFoundError{Entity: "part"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrPartNotFound, ErrAircraftNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading part: %w", ErrPartNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrPartNotFound))
		assert.False(t, IsNotFound(ErrPartExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "part already exists with this serial number", ErrPartExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAircraftExists))
		assert.False(t, IsAlreadyExists(ErrAircraftNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "serial_number", Message: "is required"}
		assert.Equal(t, "validation error: serial_number - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid input"}
		assert.Equal(t, "validation error: invalid input", err.Error())
	})

	t.Run("Multi-field message is sorted by field", func(t *testing.T) {
		err := &ValidationError{Fields: map[string][]string{
			"wing": {"wrong type", "wrong model"},
			"tail": {"not in stock"},
		}}
		assert.Equal(t, "validation error: tail - not in stock, wing - wrong type; wrong model", err.Error())
	})

	t.Run("FieldErrors folds single field", func(t *testing.T) {
		err := &ValidationError{Field: "wing", Message: "required"}
		assert.Equal(t, map[string][]string{"wing": {"required"}}, err.FieldErrors())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("wing", "invalid")))
		assert.False(t, IsValidation(ErrPartNotFound))
	})
}

func TestFieldErrorCollector(t *testing.T) {
	t.Run("Empty collector returns nil", func(t *testing.T) {
		var c FieldErrorCollector
		assert.NoError(t, c.Err())
		assert.False(t, c.Has("wing"))
	})

	t.Run("Collects every finding", func(t *testing.T) {
		var c FieldErrorCollector
		c.Add("wing", "a")
		c.Add("wing", "b")
		c.Add("tail", "c")

		err := c.Err()
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"a", "b"}, verr.Fields["wing"])
		assert.Equal(t, []string{"c"}, verr.Fields["tail"])
		assert.True(t, c.Has("tail"))
	})
}

func TestStateAndReferenceErrors(t *testing.T) {
	t.Run("InvalidState helper", func(t *testing.T) {
		assert.True(t, IsInvalidState(ErrPartInUse))
		assert.Equal(t, "part: part must be removed from aircraft first", ErrPartInUse.Error())
		assert.False(t, IsInvalidState(ErrPartInAircraft))
	})

	t.Run("Referenced helper and Is", func(t *testing.T) {
		assert.True(t, IsReferenced(ErrPartInAircraft))
		assert.True(t, errors.Is(&ReferencedError{Entity: "part", ReferencedBy: "an assembled aircraft"}, ErrPartInAircraft))
		assert.False(t, errors.Is(ErrPartTypeInUse, ErrPartInAircraft))
	})

	t.Run("Authorization and configuration helpers", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotProducingTeam))
		assert.True(t, IsConfiguration(ErrResponsibilityMismatch))
		assert.True(t, IsAuthentication(ErrMissingActor))
		assert.False(t, IsAuthorization(ErrResponsibilityMismatch))
	})
}
