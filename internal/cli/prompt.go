package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/validator"
)

// Prompter asks the user questions. Validators return an error whose message is shown
// before asking again.
type Prompter interface {
	Input(message, defaultValue string, validate func(string) error) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
	// Select returns the index of the chosen option
	Select(message string, options []string, defaultIndex int) (int, error)
}

type surveyPrompter struct{}

// NewSurveyPrompter prompts on the terminal
func NewSurveyPrompter() Prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Input(message, defaultValue string, validate func(string) error) (string, error) {
	var answer string
	opts := []survey.AskOpt{}
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	err := survey.AskOne(&survey.Input{
		Message: message,
		Default: defaultValue,
	}, &answer, opts...)
	return answer, promptError(err)
}

func (surveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	answer := defaultValue
	err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: defaultValue,
	}, &answer)
	return answer, promptError(err)
}

func (surveyPrompter) Select(message string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return -1, ierr.NewError("nothing to select").Mark(ierr.ErrValidation)
	}
	q := &survey.Select{
		Message: message,
		Options: options,
	}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		q.Default = options[defaultIndex]
	}
	var index int
	err := survey.AskOne(q, &index)
	return index, promptError(err)
}

func promptError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) {
		return ierr.WithError(err).
			WithHint("Cancelled").
			Mark(ierr.ErrCancelled)
	}
	return ierr.WithError(err).
		WithHint("Interactive prompts could not be rendered in the current environment.").
		Mark(ierr.ErrSystem)
}

func required(message string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}

func optionalEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if validator.ValidateVar(s, "email") != nil {
		return errors.New("Please enter a valid email address.")
	}
	return nil
}

// recordLabel is the select option for a saved record, e.g. "Acme (ID: comp_01H...)"
func recordLabel(name, id string) string {
	short := id
	if len(short) > 8 {
		short = short[:8] + "..."
	}
	return fmt.Sprintf("%s (ID: %s)", name, short)
}

func removeQuestion(name string) string {
	return fmt.Sprintf("Are you sure you want to remove %q? This action cannot be undone.", name)
}
