package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness conflict
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this serial number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error. Field/Message carry a single
// finding; Fields carries every finding keyed by field when more than one input
// is checked at once.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s - %s", k, strings.Join(e.Fields[k], "; ")))
		}
		return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// FieldErrors returns every finding keyed by field, folding the single-field form in.
func (e *ValidationError) FieldErrors() map[string][]string {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	if e.Field != "" {
		return map[string][]string{e.Field: {e.Message}}
	}
	return nil
}

// FieldErrorCollector accumulates per-field findings without short-circuiting.
type FieldErrorCollector struct {
	fields map[string][]string
}

// Add records a finding for field.
func (c *FieldErrorCollector) Add(field, message string) {
	if c.fields == nil {
		c.fields = make(map[string][]string)
	}
	c.fields[field] = append(c.fields[field], message)
}

// Has reports whether field already has a finding.
func (c *FieldErrorCollector) Has(field string) bool {
	return len(c.fields[field]) > 0
}

// Err returns a ValidationError holding all findings, or nil when there are none.
func (c *FieldErrorCollector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError is returned when the actor may not perform the requested transition
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents an invalid team or catalog setup
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// InvalidStateError is returned when an operation is not valid from the entity's current state
type InvalidStateError struct {
	Entity  string
	Message string
}

func (e *InvalidStateError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Message)
	}
	return e.Message
}

// ReferencedError is returned when deleting or changing an entity that other records still reference
type ReferencedError struct {
	Entity       string
	ReferencedBy string
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("%s is referenced by %s", e.Entity, e.ReferencedBy)
}

// Is enables errors.Is() comparison for ReferencedError
func (e *ReferencedError) Is(target error) bool {
	t, ok := target.(*ReferencedError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.ReferencedBy == t.ReferencedBy
}

// Entity Not Found Errors
var (
	ErrPartTypeNotFound      = &NotFoundError{Entity: "part type"}
	ErrAircraftModelNotFound = &NotFoundError{Entity: "aircraft model"}
	ErrTeamNotFound          = &NotFoundError{Entity: "team"}
	ErrPartNotFound          = &NotFoundError{Entity: "part"}
	ErrAircraftNotFound      = &NotFoundError{Entity: "aircraft"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrProfileNotFound       = &NotFoundError{Entity: "profile"}
)

// Already Exists Errors
var (
	ErrPartTypeExists       = &AlreadyExistsError{Entity: "part type", Context: "with this code"}
	ErrAircraftModelExists  = &AlreadyExistsError{Entity: "aircraft model", Context: "with this code"}
	ErrTeamExists           = &AlreadyExistsError{Entity: "team", Context: "with this code"}
	ErrResponsibilityExists = &AlreadyExistsError{Entity: "team responsibility", Context: "for this part type"}
	ErrPartExists           = &AlreadyExistsError{Entity: "part", Context: "with this serial number"}
	ErrAircraftExists       = &AlreadyExistsError{Entity: "aircraft", Context: "with this tail number"}
	ErrUserExists           = &AlreadyExistsError{Entity: "user", Context: "with this username"}
)

// Referential Protection Errors
var (
	ErrPartInAircraft     = &ReferencedError{Entity: "part", ReferencedBy: "an assembled aircraft"}
	ErrPartTypeInUse      = &ReferencedError{Entity: "part type", ReferencedBy: "existing parts or teams"}
	ErrAircraftModelInUse = &ReferencedError{Entity: "aircraft model", ReferencedBy: "existing parts or aircraft"}
	ErrTeamInUse          = &ReferencedError{Entity: "team", ReferencedBy: "existing parts or aircraft"}
)

// State Errors
var (
	ErrPartNotInStock  = &InvalidStateError{Entity: "part", Message: "part is not in stock"}
	ErrPartNotInUse    = &InvalidStateError{Entity: "part", Message: "part is not installed in an aircraft"}
	ErrPartInUse       = &InvalidStateError{Entity: "part", Message: "part must be removed from aircraft first"}
	ErrPartStateChange = &InvalidStateError{Entity: "part", Message: "part status changed concurrently"}
)

// Authorization Errors
var (
	ErrMissingActor            = &AuthenticationError{Message: "authenticated identity not found in context"}
	ErrUserNotAssignedToTeam   = &AuthorizationError{Message: "user is not assigned to any team"}
	ErrNotProductionTeam       = &AuthorizationError{Message: "only a production team may produce parts"}
	ErrTeamCannotProduce       = &AuthorizationError{Message: "team is not responsible for this part type"}
	ErrNotProducingTeam        = &AuthorizationError{Message: "only the producing team may recycle this part"}
	ErrNotAssemblyTeam         = &AuthorizationError{Message: "only the assembly team may manage aircraft"}
	ErrAdminRequired           = &AuthorizationError{Message: "administrative privilege required"}
	ErrUnsupportedResourceKind = &AuthorizationError{Message: "unsupported resource kind"}
)

// Configuration Errors
var (
	ErrAssemblyTeamHasResponsibility = &ConfigurationError{Message: "assembly team cannot be responsible for a part type"}
	ErrProductionTeamNoPartType      = &ConfigurationError{Message: "production team must be responsible for a part type"}
	ErrResponsibilityMismatch        = &ConfigurationError{Message: "team responsibility must match the team code"}
	ErrUnknownTeamCode               = &ConfigurationError{Message: "unknown team code"}
)

// Business Logic Errors
var (
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidDateRange        = errors.New("invalid date range")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsReferenced checks if an error is a ReferencedError
func IsReferenced(err error) bool {
	var refErr *ReferencedError
	return errors.As(err, &refErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
