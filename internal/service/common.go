package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxPage         = 100000
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateStruct runs struct validation and converts failures into a per-field ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	var collector apperrors.FieldErrorCollector
	if err := collectStruct(v, req, &collector); err != nil {
		return err
	}
	return collector.Err()
}

// collectStruct adds struct validation findings to collector
func collectStruct(v *validator.Validate, req interface{}, collector *apperrors.FieldErrorCollector) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	for _, fe := range fieldErrs {
		collector.Add(fe.Field(), describeFieldError(fe))
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}

// paginate resolves page/pageSize into limit and offset; zero selects the default
func paginate(page, pageSize int) (limit, offset, resolvedPage, resolvedSize int, err error) {
	if page < 0 || page > maxPage || pageSize < 0 || pageSize > maxPageSize {
		return 0, 0, 0, 0, apperrors.ErrInvalidPaginationParams
	}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	return pageSize, (page - 1) * pageSize, page, pageSize, nil
}

// notFoundOr maps gorm's record-not-found to sentinel and wraps everything else
func notFoundOr(err error, sentinel error, action string) error {
	if repository.IsNotFound(err) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
