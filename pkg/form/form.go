// Package form validates the field set supplied when creating or editing a
// card. Validation failures are synchronous and never mutate engine state;
// the caller reports them to the user and retries.
package form

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"tableflip.dev/dayboard/pkg/task"
)

var (
	// ErrKindRequired indicates no activity kind was selected.
	ErrKindRequired = errors.New("form: select an activity kind")

	// ErrDateRequired indicates a dated kind was selected without a date.
	ErrDateRequired = errors.New("form: todos and reminders require a date")
)

// validate is the shared validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("kind", validateKind); err != nil {
		panic(fmt.Sprintf("failed to register kind validator: %v", err))
	}
}

// validateKind checks that a string names a known activity kind.
func validateKind(fl validator.FieldLevel) bool {
	_, ok := task.ParseKind(fl.Field().String())
	return ok
}

// Input is the field-value set a form collaborator submits. Kind doubles as
// the target-variant selection on edit: picking a different kind converts
// the card.
type Input struct {
	Kind        string `validate:"required,kind"`
	Title       string
	Description string
	Date        string
	Time        string
	Lists       []string
	Tags        []string
}

// Validate checks the input without touching any state. A kind selection is
// mandatory; todo and reminder targets additionally require a parseable
// date.
func (in *Input) Validate() error {
	if strings.TrimSpace(in.Kind) == "" {
		return ErrKindRequired
	}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: unknown kind %q", ErrKindRequired, in.Kind)
	}

	kind, _ := task.ParseKind(in.Kind)
	if kind == task.KindHabit {
		return nil
	}
	if strings.TrimSpace(in.Date) == "" {
		return ErrDateRequired
	}
	if _, err := task.ParseDate(in.Date); err != nil {
		return fmt.Errorf("form: invalid date %q: %w", in.Date, err)
	}
	return nil
}

// TargetKind returns the selected activity kind. Only meaningful after a
// successful Validate.
func (in *Input) TargetKind() task.Kind {
	kind, _ := task.ParseKind(in.Kind)
	return kind
}

// Core assembles the shared card fields from the input, sanitized. The id is
// left to the task constructors (or carried over by an edit).
func (in *Input) Core(id string) task.Core {
	return task.Core{
		ID:          id,
		Title:       Sanitize(in.Title),
		Description: Sanitize(in.Description),
		Time:        strings.TrimSpace(in.Time),
		Lists:       cloneNames(in.Lists),
		Tags:        cloneNames(in.Tags),
	}
}

// Sanitize trims whitespace and strips control characters from free-text
// input, keeping newlines and tabs.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}
	return sanitized.String()
}

func cloneNames(names []string) []string {
	var out []string
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
